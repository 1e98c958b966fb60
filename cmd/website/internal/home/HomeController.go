package home

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/simplegallery/cmd/website/internal/urls"
	"github.com/adampresley/simplegallery/cmd/website/internal/viewmodels"
	"github.com/adampresley/simplegallery/pkg/gallery"
	"github.com/adampresley/simplegallery/pkg/models"
	"github.com/adampresley/simplegallery/pkg/services"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	AlbumService services.AlbumServicer
	Renderer     rendering.TemplateRenderer
	SiteConfig   *siteconfig.Store
	URLBuilder   urls.URLBuilder
}

type HomeController struct {
	albumService services.AlbumServicer
	renderer     rendering.TemplateRenderer
	siteConfig   *siteconfig.Store
	urlBuilder   urls.URLBuilder
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		albumService: config.AlbumService,
		renderer:     config.Renderer,
		siteConfig:   config.SiteConfig,
		urlBuilder:   config.URLBuilder,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	var (
		err    error
		albums []*models.Album
	)

	pageName := "pages/home"

	viewData := viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			Message:            "",
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: viewmodels.EnhancementScripts(),
			Site:               viewmodels.NewSite(c.siteConfig.Config(), time.Now()),
		},
		Albums: []viewmodels.AlbumCard{},
	}

	if albums, err = c.albumService.GetAlbumList(); err != nil {
		slog.Error("error getting album list", "error", err)
		viewData.IsError = true
		viewData.Message = "There was a problem getting the albums for this page."

		c.renderer.Render(pageName, viewData, w)
		return
	}

	for _, album := range albums {
		if album.MediaCount() == 0 {
			continue
		}

		viewData.Albums = append(viewData.Albums, viewmodels.AlbumCard{
			ID:           album.ID,
			DisplayName:  album.DisplayName,
			Href:         urls.AlbumHref(album.ID),
			ThumbnailURL: c.urlBuilder.AlbumThumbnail(album),
			CountLabel:   gallery.CountLabel(album.ImageCount, album.VideoCount),
		})
	}

	c.renderer.Render(pageName, viewData, w)
}
