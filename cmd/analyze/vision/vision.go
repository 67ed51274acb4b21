// Package vision provides support to analyze images with a vision model
// and search previously analyzed snapshots by similarity.
package vision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/loyca-ai/avatar-tools/foundation/mongodb"
)

const logFile = "log.txt"

// ErrNoSnapshots is returned from a similarity search over an empty
// collection.
var ErrNoSnapshots = errors.New("no snapshots stored yet")

// Embedder declares the behavior to produce a vector embedding for an
// image and its extracted text.
type Embedder interface {
	CreateEmbedding(ctx context.Context, image []byte, text string) ([]float64, error)
}

// Vision provides support to analyze and store image snapshots.
type Vision struct {
	client *mongo.Client
	col    *mongo.Collection
	chat   llms.Model
	embed  Embedder
	debug  bool
}

// New constructs the vision api for use.
func New(client *mongo.Client, chat llms.Model, embed Embedder, debug bool) (*Vision, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// -------------------------------------------------------------------------
	// Create database and collection

	const dbName = "loyca"
	const collectionName = "snapshots"

	db := client.Database(dbName)

	col, err := mongodb.CreateCollection(ctx, db, collectionName)
	if err != nil {
		return nil, fmt.Errorf("createCollection: %w", err)
	}

	// -------------------------------------------------------------------------
	// Create indexes

	unique := true
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "snapshot_id", Value: 1}},
		Options: &options.IndexOptions{Unique: &unique},
	}
	col.Indexes().CreateOne(ctx, indexModel)

	const indexName = "vector_index"
	settings := mongodb.VectorIndexSettings{
		NumDimensions: 1024,
		Path:          "embedding",
		Similarity:    "cosine",
	}

	if err := mongodb.CreateVectorIndex(ctx, col, indexName, settings); err != nil {
		return nil, fmt.Errorf("createVectorIndex: %w", err)
	}

	// -------------------------------------------------------------------------
	// Return the api

	v := Vision{
		client: client,
		col:    col,
		chat:   chat,
		embed:  embed,
		debug:  debug,
	}

	return &v, nil
}

// Analyze asks the vision model to describe the specified image. The
// extracted text gives the model extra context when present.
func (v *Vision) Analyze(imageData []byte, extractedText string) (Analysis, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Second)
	defer cancel()

	prompt := promptAnalyze
	if extractedText != "" {
		prompt = fmt.Sprintf("%s\n\nText extracted from the image:\n%s", prompt, extractedText)
	}

	var analysis Analysis

	// The model sometimes drops the tags, so we may need to tell it
	// that it didn't listen and try again.
	attempts := 1
	for ; attempts <= 2; attempts++ {
		v.writeLog(prompt)
		v.writeLog("\n")

		content := []llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, promptSystem),
			{
				Role: llms.ChatMessageTypeHuman,
				Parts: []llms.ContentPart{
					llms.TextPart(prompt),
					llms.BinaryPart("image/png", imageData),
				},
			},
		}

		resp, err := v.chat.GenerateContent(ctx, content, llms.WithMaxTokens(5000), llms.WithTemperature(0.2))
		if err != nil {
			return Analysis{}, fmt.Errorf("generate content: %w", err)
		}

		if len(resp.Choices) == 0 {
			return Analysis{}, errors.New("no response choices")
		}

		response := resp.Choices[0].Content

		v.writeLog("Response:")
		v.writeLog(response)
		v.writeLog("\n")

		analysis, err = parseAnalysis(response)
		if err == nil {
			break
		}

		// Tell the model it didn't listen and try again.
		prompt = fmt.Sprintf(promptAnalyzeAgain, prompt, response)
	}

	if analysis.Description == "" {
		return Analysis{}, errors.New("model never produced a tagged response")
	}

	v.writeLogf("\nAttempts: %d", attempts)
	v.writeLog("------------------")

	analysis.Attempts = attempts

	return analysis, nil
}

// CalculateEmbedding produces a vector embedding for the image and the
// text the analysis produced.
func (v *Vision) CalculateEmbedding(imageData []byte, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	embedding, err := v.embed.CreateEmbedding(ctx, imageData, text)
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}

	return embedding, nil
}

// SaveSnapshot stores the analyzed snapshot and returns its id.
func (v *Vision) SaveSnapshot(dataURL string, analysis Analysis, extractedText string, embedding []float64) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snap := Snapshot{
		ID:          uuid.NewString(),
		CapturedAt:  time.Now().UTC(),
		DataURL:     dataURL,
		Description: analysis.Description,
		Keywords:    analysis.Keywords,
		Category:    analysis.Category,
		Text:        extractedText,
		Embedding:   embedding,
	}

	if _, err := v.col.InsertOne(ctx, snap); err != nil {
		return "", fmt.Errorf("insert: %w", err)
	}

	return snap.ID, nil
}

// FindSimilarSnapshot performs a vector search to find the stored
// snapshot closest to the specified embedding.
func (v *Vision) FindSimilarSnapshot(embedding []float64) (SimilarSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// We want the nearest neighbor of the snapshot embedding.
	pipeline := mongo.Pipeline{
		{{
			Key: "$vectorSearch",
			Value: bson.M{
				"index":       "vector_index",
				"exact":       true,
				"path":        "embedding",
				"queryVector": embedding,
				"limit":       1,
			}},
		},
		{{
			Key: "$project",
			Value: bson.M{
				"snapshot_id": 1,
				"captured_at": 1,
				"description": 1,
				"keywords":    1,
				"category":    1,
				"score": bson.M{
					"$meta": "vectorSearchScore",
				}},
		}},
	}

	cur, err := v.col.Aggregate(ctx, pipeline)
	if err != nil {
		return SimilarSnapshot{}, fmt.Errorf("aggregate: %w", err)
	}
	defer cur.Close(ctx)

	var snapshots []SimilarSnapshot
	if err := cur.All(ctx, &snapshots); err != nil {
		return SimilarSnapshot{}, fmt.Errorf("all: %w", err)
	}

	if len(snapshots) == 0 {
		return SimilarSnapshot{}, ErrNoSnapshots
	}

	return snapshots[0], nil
}
