package media

import (
	"path/filepath"
	"strings"

	id3v2 "github.com/bogem/id3v2/v2"
)

// TagMP3 embeds ID3v2 title/artist tags into an extracted audio file.
// Only .mp3 output is tagged; other containers are left untouched.
func TagMP3(path, title, artist string) error {
	if !strings.EqualFold(filepath.Ext(path), ".mp3") {
		return nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	if title != "" {
		tag.SetTitle(title)
	}
	if artist != "" {
		tag.SetArtist(artist)
	}

	return tag.Save()
}
