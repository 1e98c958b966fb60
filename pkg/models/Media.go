package models

import "time"

type Media struct {
	ID         uint      `db:"id"`
	AlbumID    uint      `db:"album_id"`
	Position   int       `db:"position"`
	Name       string    `db:"name"`
	Key        string    `db:"object_key"`
	MediaType  string    `db:"media_type"`
	Size       int64     `db:"size"`
	ModifiedAt time.Time `db:"modified_at"`
}

func (m Media) IsVideo() bool {
	return m.MediaType == "video"
}
