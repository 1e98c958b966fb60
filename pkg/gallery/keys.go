package gallery

import (
	"path"
	"strings"
)

/*
SplitMediaKey takes an object key under galleryFolder and returns the
album folder and file name. Only files directly inside an album folder
count; anything shallower or deeper reports false.
*/
func SplitMediaKey(galleryFolder, key string) (album, name string, ok bool) {
	prefix := strings.Trim(galleryFolder, "/")
	rest := strings.TrimPrefix(key, "/")

	if prefix != "" {
		if !strings.HasPrefix(rest, prefix+"/") {
			return "", "", false
		}

		rest = strings.TrimPrefix(rest, prefix+"/")
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	return parts[0], parts[1], true
}

func MediaKey(galleryFolder, album, name string) string {
	return path.Join(galleryFolder, album, name)
}

/*
ThumbnailKey is where the JPEG thumbnail for a media file is stored.
Non-JPEG sources get ".jpg" appended so "a.png" and "a.jpg" don't collide.
*/
func ThumbnailKey(thumbnailFolder, album, name string) string {
	ext := strings.ToLower(path.Ext(name))

	if ext != ".jpg" && ext != ".jpeg" {
		name += ".jpg"
	}

	return path.Join(thumbnailFolder, album, name)
}
