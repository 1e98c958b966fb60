package viewmodels

type HomePage struct {
	BaseViewModel
	Albums []AlbumCard
}

type AlbumCard struct {
	ID           uint
	DisplayName  string
	Href         string
	ThumbnailURL string
	CountLabel   string
}
