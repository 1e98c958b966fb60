// Package gallery holds the rules for turning a folder of media into
// albums: folder-name ordering, media types and labels.
package gallery

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/adampresley/adamgokit/slices"
)

type MediaType string

const (
	MediaTypeImage   MediaType = "image"
	MediaTypeVideo   MediaType = "video"
	MediaTypeUnknown MediaType = "unknown"
)

var (
	orderedAlbumName = regexp.MustCompile(`^(\d+)[-_.\s]+(.+)$`)

	VideoExtensions = []string{".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".mkv", ".m4v"}
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".tiff", ".svg"}

	// Extensions image.Decode can read once the decoders are registered.
	ThumbnailExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}
)

type AlbumName struct {
	Folder      string
	DisplayName string
	Order       int
	HasOrder    bool
}

/*
ParseAlbumName splits a leading sequence number off a folder name.
"01-Trips" orders as 1 and displays as "Trips"; folders without a number
display as-is and sort after the numbered ones.
*/
func ParseAlbumName(folder string) AlbumName {
	matches := orderedAlbumName.FindStringSubmatch(folder)

	if matches == nil {
		return AlbumName{Folder: folder, DisplayName: folder}
	}

	order, err := strconv.Atoi(matches[1])
	if err != nil {
		return AlbumName{Folder: folder, DisplayName: folder}
	}

	return AlbumName{
		Folder:      folder,
		DisplayName: matches[2],
		Order:       order,
		HasOrder:    true,
	}
}

/*
SortAlbumNames orders numbered albums first by number, then the rest by
display name.
*/
func SortAlbumNames(names []AlbumName) {
	sort.SliceStable(names, func(i, j int) bool {
		a, b := names[i], names[j]

		if a.HasOrder != b.HasOrder {
			return a.HasOrder
		}

		if a.Order != b.Order {
			return a.Order < b.Order
		}

		return a.DisplayName < b.DisplayName
	})
}

func MediaTypeOf(name string) MediaType {
	ext := strings.ToLower(filepath.Ext(name))

	switch {
	case slices.IsInSlice(ext, VideoExtensions):
		return MediaTypeVideo
	case slices.IsInSlice(ext, ImageExtensions):
		return MediaTypeImage
	default:
		return MediaTypeUnknown
	}
}

func IsMedia(name string) bool {
	return MediaTypeOf(name) != MediaTypeUnknown
}

func CanThumbnail(name string) bool {
	return slices.IsInSlice(strings.ToLower(filepath.Ext(name)), ThumbnailExtensions)
}

func VideoMimeType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".webm":
		return "video/webm"
	case ".ogg":
		return "video/ogg"
	case ".avi":
		return "video/x-msvideo"
	case ".mov":
		return "video/quicktime"
	default:
		return "video/mp4"
	}
}

func CountLabel(images, videos int) string {
	total := images + videos

	switch {
	case images > 0 && videos > 0:
		return fmt.Sprintf("%d 个文件", total)
	case videos > 0:
		return fmt.Sprintf("%d 个视频", total)
	default:
		return fmt.Sprintf("%d 张图片", total)
	}
}
