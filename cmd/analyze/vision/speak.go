package vision

import (
	"os"

	htgotts "github.com/hegedustibor/htgo-tts"
	handlers "github.com/hegedustibor/htgo-tts/handlers"
	voices "github.com/hegedustibor/htgo-tts/voices"
)

// Speak uses mplayer to read the specified message out loud.
func (v *Vision) Speak(msg string) {
	speech := htgotts.Speech{Folder: "audio", Language: voices.English, Handler: &handlers.MPlayer{}}

	os.Remove("audio/speech.mp3")

	fileName, err := speech.CreateSpeechFile(msg, "speech")
	if err != nil {
		v.writeLogf("create speech file: %s", err)
		return
	}

	defer os.Remove("audio/speech.mp3")

	if err := speech.PlaySpeechFile(fileName); err != nil {
		v.writeLogf("play speech file: %s", err)
	}
}
