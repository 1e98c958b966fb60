// Package enhancements is the theme's in-page behaviour: site fonts and
// footer from config.json, then pagination of the album grid.
package enhancements

import (
	"context"
	"log/slog"
	"time"

	"github.com/adampresley/simplegallery/pkg/dom"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
)

const (
	DefaultConfigURL = "./config.json"

	footerSelector          = ".footer"
	footerParagraphSelector = "p"
)

type ConfigApplierConfig struct {
	Document  dom.Document
	Fetcher   siteconfig.Fetcher
	ConfigURL string
	Now       func() time.Time
}

type ConfigApplier struct {
	doc       dom.Document
	fetcher   siteconfig.Fetcher
	configURL string
	now       func() time.Time
}

func NewConfigApplier(config ConfigApplierConfig) ConfigApplier {
	if config.ConfigURL == "" {
		config.ConfigURL = DefaultConfigURL
	}

	if config.Now == nil {
		config.Now = time.Now
	}

	if config.Fetcher == nil {
		config.Fetcher = siteconfig.NewHTTPFetcher(siteconfig.HTTPFetcherConfig{Now: config.Now})
	}

	return ConfigApplier{
		doc:       config.Document,
		fetcher:   config.Fetcher,
		configURL: config.ConfigURL,
		now:       config.Now,
	}
}

/*
ApplyConfiguration fetches config.json and writes the fonts and footer
into the page. A failed fetch is not fatal: it is logged and the defaults
are applied instead.
*/
func (a ConfigApplier) ApplyConfiguration(ctx context.Context) {
	config, err := a.fetcher.Fetch(ctx, a.configURL)

	if err != nil {
		slog.Warn("unable to read config.json, using the default configuration", "url", a.configURL, "error", err)
		config = siteconfig.Empty()
	}

	a.applyFonts(config)
	a.applyFooter(config)
}

func (a ConfigApplier) applyFonts(config siteconfig.SiteConfig) {
	root := a.doc.Root()

	for _, font := range siteconfig.ResolveFonts(config) {
		root.SetStyle(font.Property, font.Value)
	}
}

func (a ConfigApplier) applyFooter(config siteconfig.SiteConfig) {
	footer, ok := a.doc.Query(footerSelector)
	if !ok {
		return
	}

	paragraph, ok := footer.Query(footerParagraphSelector)
	if !ok {
		return
	}

	year := siteconfig.CopyrightYear(config, a.now())
	paragraph.SetInnerHTML(siteconfig.FooterMarkup(config, year))
}
