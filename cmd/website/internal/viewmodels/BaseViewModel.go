package viewmodels

import (
	"html/template"
	"time"

	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
)

type BaseViewModel struct {
	Message            string
	IsError            bool
	IsWarning          bool
	IsHtmx             bool
	JavascriptIncludes []rendering.JavascriptInclude
	Site               Site
}

/*
Site carries what every page shows around its content. The footer is
rendered here with the same markup the browser enhancements write, so
pages look right before the enhancements load.
*/
type Site struct {
	Title  string
	Footer template.HTML
}

func NewSite(config siteconfig.SiteConfig, now time.Time) Site {
	return Site{
		Title:  config.Title(),
		Footer: template.HTML(siteconfig.FooterMarkup(config, siteconfig.CopyrightYear(config, now))),
	}
}

/*
EnhancementScripts loads the Go runtime shim and the wasm module that
applies fonts, footer and pagination in the browser.
*/
func EnhancementScripts() []rendering.JavascriptInclude {
	return []rendering.JavascriptInclude{
		{Type: "text/javascript", Src: "/static/js/wasm_exec.js"},
		{Type: "module", Src: "/static/js/enhancements.js"},
	}
}
