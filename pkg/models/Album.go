package models

import (
	"fmt"
)

var (
	ErrAlbumNotFound = fmt.Errorf("album not found")
	ErrMediaNotFound = fmt.Errorf("media not found")
)

/*
Album is one top-level folder under the gallery folder in the bucket.
Name is the folder name; DisplayName drops any leading sequence number.
*/
type Album struct {
	BaseModel

	Name        string `db:"name"`
	DisplayName string `db:"display_name"`
	SortOrder   int    `db:"sort_order"`
	HasOrder    bool   `db:"has_order"`
	CoverKey    string `db:"cover_key"`
	ImageCount  int    `db:"image_count"`
	VideoCount  int    `db:"video_count"`

	// The first media file doubles as the album thumbnail when no cover is set.
	FirstMediaName string `db:"first_media_name"`
	FirstMediaType string `db:"first_media_type"`

	Media []Media
}

func (a Album) MediaCount() int {
	return a.ImageCount + a.VideoCount
}
