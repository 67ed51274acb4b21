package vision

import "time"

// Analysis represents what the model observed in the image.
type Analysis struct {
	Description string
	Keywords    string
	Category    string
	Attempts    int
}

// Snapshot represents an analyzed image that is stored for similarity
// searches against future captures.
type Snapshot struct {
	ID          string    `bson:"snapshot_id"`
	CapturedAt  time.Time `bson:"captured_at"`
	DataURL     string    `bson:"data_url"`
	Description string    `bson:"description"`
	Keywords    string    `bson:"keywords"`
	Category    string    `bson:"category"`
	Text        string    `bson:"text"`
	Embedding   []float64 `bson:"embedding"`
}

// SimilarSnapshot represents a snapshot found in the similarity search.
type SimilarSnapshot struct {
	ID          string    `bson:"snapshot_id"`
	CapturedAt  time.Time `bson:"captured_at"`
	Description string    `bson:"description"`
	Keywords    string    `bson:"keywords"`
	Category    string    `bson:"category"`
	Score       float64   `bson:"score"`
}
