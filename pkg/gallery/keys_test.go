package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMediaKey(t *testing.T) {
	tests := []struct {
		name      string
		folder    string
		key       string
		wantAlbum string
		wantName  string
		wantOK    bool
	}{
		{name: "album file", folder: "galleries", key: "galleries/01-Trips/a.jpg", wantAlbum: "01-Trips", wantName: "a.jpg", wantOK: true},
		{name: "folder with slashes", folder: "/galleries/", key: "galleries/Misc/b.png", wantAlbum: "Misc", wantName: "b.png", wantOK: true},
		{name: "no gallery folder", folder: "", key: "Misc/b.png", wantAlbum: "Misc", wantName: "b.png", wantOK: true},
		{name: "file at the gallery root", folder: "galleries", key: "galleries/cover.jpg"},
		{name: "nested too deep", folder: "galleries", key: "galleries/Misc/sub/c.jpg"},
		{name: "outside the gallery", folder: "galleries", key: "thumbnails/Misc/a.jpg"},
		{name: "folder marker", folder: "galleries", key: "galleries/Misc/"},
		{name: "prefix lookalike", folder: "galleries", key: "galleries2/Misc/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			album, name, ok := SplitMediaKey(tt.folder, tt.key)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantAlbum, album)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestMediaKey(t *testing.T) {
	assert.Equal(t, "galleries/Misc/a.jpg", MediaKey("galleries", "Misc", "a.jpg"))
}

func TestThumbnailKey(t *testing.T) {
	assert.Equal(t, "thumbnails/Misc/a.jpg", ThumbnailKey("thumbnails", "Misc", "a.jpg"))
	assert.Equal(t, "thumbnails/Misc/a.JPEG", ThumbnailKey("thumbnails", "Misc", "a.JPEG"))
	assert.Equal(t, "thumbnails/Misc/a.png.jpg", ThumbnailKey("thumbnails", "Misc", "a.png"))
}
