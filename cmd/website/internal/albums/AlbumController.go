package albums

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/getoptions"
	"github.com/adampresley/simplegallery/cmd/website/internal/urls"
	"github.com/adampresley/simplegallery/cmd/website/internal/viewmodels"
	"github.com/adampresley/simplegallery/pkg/gallery"
	"github.com/adampresley/simplegallery/pkg/models"
	"github.com/adampresley/simplegallery/pkg/services"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
	"github.com/dustin/go-humanize"
)

type AlbumHandlers interface {
	AlbumPage(w http.ResponseWriter, r *http.Request)
	DownloadMedia(w http.ResponseWriter, r *http.Request)
	MediaPage(w http.ResponseWriter, r *http.Request)
}

type AlbumControllerConfig struct {
	AlbumService services.AlbumServicer
	Bucket       string
	Renderer     rendering.TemplateRenderer
	S3Client     s3.S3Client
	SiteConfig   *siteconfig.Store
	URLBuilder   urls.URLBuilder
}

type AlbumController struct {
	albumService services.AlbumServicer
	bucket       string
	renderer     rendering.TemplateRenderer
	s3Client     s3.S3Client
	siteConfig   *siteconfig.Store
	urlBuilder   urls.URLBuilder
}

func NewAlbumController(config AlbumControllerConfig) AlbumController {
	return AlbumController{
		albumService: config.AlbumService,
		bucket:       config.Bucket,
		renderer:     config.Renderer,
		s3Client:     config.S3Client,
		siteConfig:   config.SiteConfig,
		urlBuilder:   config.URLBuilder,
	}
}

/*
GET /album/{id}
*/
func (c AlbumController) AlbumPage(w http.ResponseWriter, r *http.Request) {
	var (
		err   error
		album *models.Album
	)

	pageName := "pages/album"

	viewData := viewmodels.AlbumPage{
		BaseViewModel: c.baseViewModel(r),
		AlbumID:       httphelpers.GetFromRequest[uint](r, "id"),
		Media:         []viewmodels.MediaCard{},
	}

	if album, err = c.albumService.GetAlbum(viewData.AlbumID); err != nil {
		c.describeLookupError(&viewData.BaseViewModel, err, "albumID", viewData.AlbumID)
		c.renderer.Render(pageName, viewData, w)
		return
	}

	viewData.DisplayName = album.DisplayName
	viewData.Site.Title = fmt.Sprintf("%s - %s", album.DisplayName, viewData.Site.Title)

	for _, media := range album.Media {
		viewData.Media = append(viewData.Media, viewmodels.MediaCard{
			Name:         media.Name,
			Href:         urls.MediaHref(album.ID, media.Position),
			ThumbnailURL: c.urlBuilder.MediaThumbnail(album.Name, media),
			Date:         media.ModifiedAt.Format("2006-01-02"),
		})
	}

	c.renderer.Render(pageName, viewData, w)
}

/*
GET /album/{id}/media/{index}
*/
func (c AlbumController) MediaPage(w http.ResponseWriter, r *http.Request) {
	var (
		err   error
		album *models.Album
		media *models.Media
	)

	pageName := "pages/media"

	viewData := viewmodels.MediaPage{
		BaseViewModel: c.baseViewModel(r),
		AlbumID:       httphelpers.GetFromRequest[uint](r, "id"),
	}

	index := httphelpers.GetFromRequest[int](r, "index")

	if album, err = c.albumService.GetAlbum(viewData.AlbumID); err != nil {
		c.describeLookupError(&viewData.BaseViewModel, err, "albumID", viewData.AlbumID)
		c.renderer.Render(pageName, viewData, w)
		return
	}

	if media, err = c.albumService.GetMedia(album.ID, index); err != nil {
		c.describeLookupError(&viewData.BaseViewModel, err, "albumID", album.ID, "index", index)
		c.renderer.Render(pageName, viewData, w)
		return
	}

	viewData.AlbumDisplayName = album.DisplayName
	viewData.AlbumHref = urls.AlbumHref(album.ID)
	viewData.Name = media.Name
	viewData.URL = c.urlBuilder.Original(*media)
	viewData.DownloadURL = urls.DownloadHref(album.ID, media.Position)
	viewData.IsVideo = media.IsVideo()
	viewData.Date = media.ModifiedAt.Format("2006-01-02 15:04")
	viewData.Size = humanize.Bytes(uint64(max(media.Size, 0)))
	viewData.Site.Title = fmt.Sprintf("%s - %s - %s", media.Name, album.DisplayName, viewData.Site.Title)

	if viewData.IsVideo {
		viewData.MimeType = gallery.VideoMimeType(media.Name)
	}

	c.renderer.Render(pageName, viewData, w)
}

/*
GET /album/{id}/media/{index}/download
*/
func (c AlbumController) DownloadMedia(w http.ResponseWriter, r *http.Request) {
	var (
		err    error
		media  *models.Media
		object s3.GetObjectResponse
	)

	albumID := httphelpers.GetFromRequest[uint](r, "id")
	index := httphelpers.GetFromRequest[int](r, "index")

	if media, err = c.albumService.GetMedia(albumID, index); err != nil {
		if errors.Is(err, models.ErrMediaNotFound) {
			httphelpers.WriteText(w, http.StatusNotFound, "media not found")
			return
		}

		slog.Error("error looking up media for download", "error", err, "albumID", albumID, "index", index)
		httphelpers.TextInternalServerError(w, "Failed to download media")
		return
	}

	object, err = c.s3Client.Get(
		c.bucket,
		media.Key,
		getoptions.WithContext(r.Context()),
		getoptions.WithTimeout(time.Minute*30),
	)

	if err != nil {
		slog.Error("error getting media object from S3", "error", err, "bucket", c.bucket, "key", media.Key)
		httphelpers.WriteText(w, http.StatusInternalServerError, "Failed to download media")
		return
	}

	defer object.Body.Close()

	w.Header().Set("Content-Type", object.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", media.Name))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", object.Size))

	if _, err = io.Copy(w, object.Body); err != nil {
		slog.Error("error streaming media", "error", err, "key", media.Key)
	}
}

func (c AlbumController) baseViewModel(r *http.Request) viewmodels.BaseViewModel {
	return viewmodels.BaseViewModel{
		IsHtmx:             httphelpers.IsHtmx(r),
		JavascriptIncludes: viewmodels.EnhancementScripts(),
		Site:               viewmodels.NewSite(c.siteConfig.Config(), time.Now()),
	}
}

func (c AlbumController) describeLookupError(base *viewmodels.BaseViewModel, err error, logArgs ...any) {
	if errors.Is(err, models.ErrAlbumNotFound) || errors.Is(err, models.ErrMediaNotFound) {
		base.IsWarning = true
		base.Message = "We couldn't find what you were looking for."
	} else {
		slog.Error("error looking up album", append([]any{"error", err}, logArgs...)...)
		base.IsError = true
		base.Message = "An unexpected error occurred. Please try again later."
	}
}
