package urls

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/adampresley/simplegallery/pkg/gallery"
	"github.com/adampresley/simplegallery/pkg/models"
)

// SignFunc returns a browser-usable URL for an object key in the bucket.
type SignFunc func(key string) (string, error)

type URLBuilderConfig struct {
	GalleryFolder   string
	Sign            SignFunc
	ThumbnailFolder string
}

type URLBuilder struct {
	galleryFolder   string
	sign            SignFunc
	thumbnailFolder string
}

func NewURLBuilder(config URLBuilderConfig) URLBuilder {
	return URLBuilder{
		galleryFolder:   strings.Trim(config.GalleryFolder, "/"),
		sign:            config.Sign,
		thumbnailFolder: strings.Trim(config.ThumbnailFolder, "/"),
	}
}

func AlbumHref(albumID uint) string {
	return fmt.Sprintf("/album/%d", albumID)
}

func MediaHref(albumID uint, position int) string {
	return fmt.Sprintf("/album/%d/media/%d", albumID, position)
}

func DownloadHref(albumID uint, position int) string {
	return fmt.Sprintf("/album/%d/media/%d/download", albumID, position)
}

/*
AlbumThumbnail picks the image shown on an album card: the configured
cover, else the first media file's thumbnail. Empty means no preview.
*/
func (u URLBuilder) AlbumThumbnail(album *models.Album) string {
	if album.CoverKey != "" {
		if strings.HasPrefix(album.CoverKey, "http") {
			return album.CoverKey
		}

		return u.signed(album.CoverKey)
	}

	if album.FirstMediaName == "" {
		return ""
	}

	return u.MediaThumbnail(album.Name, models.Media{
		Name:      album.FirstMediaName,
		Key:       gallery.MediaKey(u.galleryFolder, album.Name, album.FirstMediaName),
		MediaType: album.FirstMediaType,
	})
}

func (u URLBuilder) MediaThumbnail(albumName string, media models.Media) string {
	if media.IsVideo() {
		return gallery.VideoPlaceholderURL
	}

	if gallery.CanThumbnail(media.Name) {
		return u.signed(gallery.ThumbnailKey(u.thumbnailFolder, albumName, media.Name))
	}

	return u.Original(media)
}

func (u URLBuilder) Original(media models.Media) string {
	return u.signed(media.Key)
}

func (u URLBuilder) signed(key string) string {
	if u.sign == nil {
		return ""
	}

	result, err := u.sign(key)
	if err != nil {
		slog.Error("error getting object URL", "key", key, "error", err)
		return ""
	}

	return result
}
