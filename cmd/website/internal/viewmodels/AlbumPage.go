package viewmodels

type AlbumPage struct {
	BaseViewModel

	AlbumID     uint
	DisplayName string
	Media       []MediaCard
}

type MediaCard struct {
	Name         string
	Href         string
	ThumbnailURL string
	Date         string
}
