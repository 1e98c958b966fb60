package viewmodels

type MediaPage struct {
	BaseViewModel

	AlbumID          uint
	AlbumDisplayName string
	AlbumHref        string

	Name        string
	URL         string
	DownloadURL string
	IsVideo     bool
	MimeType    string
	Date        string
	Size        string
}
