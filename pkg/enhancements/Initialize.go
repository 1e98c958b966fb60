package enhancements

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adampresley/simplegallery/pkg/dom"
	"github.com/adampresley/simplegallery/pkg/pagination"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
)

type InitializeConfig struct {
	Document     dom.Document
	Fetcher      siteconfig.Fetcher
	ConfigURL    string
	ItemsPerPage int
	Now          func() time.Time
}

/*
Initialize applies the site configuration and then sets up pagination.
Configuration is always finished before any album is shown. Nothing
escapes: an error or panic is logged and the page keeps whatever state
was reached. The controller is nil when the albums fit on one page.
*/
func Initialize(ctx context.Context, config InitializeConfig) (controller *pagination.Controller) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("error initializing enhancements", "error", fmt.Sprint(r))
			controller = nil
		}
	}()

	applier := NewConfigApplier(ConfigApplierConfig{
		Document:  config.Document,
		Fetcher:   config.Fetcher,
		ConfigURL: config.ConfigURL,
		Now:       config.Now,
	})

	applier.ApplyConfiguration(ctx)

	controller = pagination.NewController(pagination.ControllerConfig{
		Document:     config.Document,
		ItemsPerPage: config.ItemsPerPage,
	})

	if !controller.Init() {
		return nil
	}

	return controller
}
