package urls

import (
	"errors"
	"testing"

	"github.com/adampresley/simplegallery/pkg/gallery"
	"github.com/adampresley/simplegallery/pkg/models"
	"github.com/stretchr/testify/assert"
)

func newTestBuilder() URLBuilder {
	return NewURLBuilder(URLBuilderConfig{
		GalleryFolder:   "/galleries/",
		ThumbnailFolder: "thumbnails",
		Sign: func(key string) (string, error) {
			if key == "broken" {
				return "", errors.New("signing failed")
			}

			return "https://s3.example/" + key, nil
		},
	})
}

func TestHrefs(t *testing.T) {
	assert.Equal(t, "/album/3", AlbumHref(3))
	assert.Equal(t, "/album/3/media/0", MediaHref(3, 0))
	assert.Equal(t, "/album/3/media/7/download", DownloadHref(3, 7))
}

func TestURLBuilder_MediaThumbnail(t *testing.T) {
	b := newTestBuilder()

	assert.Equal(t,
		"https://s3.example/thumbnails/Misc/a.png.jpg",
		b.MediaThumbnail("Misc", models.Media{Name: "a.png", Key: "galleries/Misc/a.png", MediaType: "image"}),
	)

	assert.Equal(t,
		gallery.VideoPlaceholderURL,
		b.MediaThumbnail("Misc", models.Media{Name: "clip.mp4", Key: "galleries/Misc/clip.mp4", MediaType: "video"}),
	)

	assert.Equal(t,
		"https://s3.example/galleries/Misc/b.webp",
		b.MediaThumbnail("Misc", models.Media{Name: "b.webp", Key: "galleries/Misc/b.webp", MediaType: "image"}),
	)
}

func TestURLBuilder_AlbumThumbnail(t *testing.T) {
	b := newTestBuilder()

	t.Run("cover key", func(t *testing.T) {
		album := &models.Album{Name: "Misc", CoverKey: "covers/misc.jpg", FirstMediaName: "a.jpg", FirstMediaType: "image"}
		assert.Equal(t, "https://s3.example/covers/misc.jpg", b.AlbumThumbnail(album))
	})

	t.Run("cover url", func(t *testing.T) {
		album := &models.Album{Name: "Misc", CoverKey: "https://cdn.example/misc.jpg"}
		assert.Equal(t, "https://cdn.example/misc.jpg", b.AlbumThumbnail(album))
	})

	t.Run("first image", func(t *testing.T) {
		album := &models.Album{Name: "Misc", FirstMediaName: "a.jpg", FirstMediaType: "image"}
		assert.Equal(t, "https://s3.example/thumbnails/Misc/a.jpg", b.AlbumThumbnail(album))
	})

	t.Run("first video", func(t *testing.T) {
		album := &models.Album{Name: "Misc", FirstMediaName: "clip.mov", FirstMediaType: "video"}
		assert.Equal(t, gallery.VideoPlaceholderURL, b.AlbumThumbnail(album))
	})

	t.Run("empty album", func(t *testing.T) {
		assert.Equal(t, "", b.AlbumThumbnail(&models.Album{Name: "Misc"}))
	})
}

func TestURLBuilder_SigningFailure(t *testing.T) {
	b := newTestBuilder()
	assert.Equal(t, "", b.Original(models.Media{Key: "broken"}))

	unsigned := NewURLBuilder(URLBuilderConfig{})
	assert.Equal(t, "", unsigned.Original(models.Media{Key: "galleries/a.jpg"}))
}
