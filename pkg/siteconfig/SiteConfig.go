// Package siteconfig reads the gallery's config.json: the theme's font and
// footer settings plus the site title, copyright start and album covers.
package siteconfig

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	KeyTitleFont  = "title-font"
	KeyFooterFont = "footer-font"
	KeyGlobalFont = "global-font"
	KeyFooter     = "footer"
	KeyFooterLink = "footer-link"
	KeyTitle      = "title"
	KeyStartYear  = "start-year"
	KeyStartDate  = "start-date"
	KeyGalleries  = "galleries"

	DefaultTitle = "Image Gallery"
)

var (
	ErrInvalidConfig  = errors.New("site configuration is not a JSON object")
	ErrConfigNotFound = errors.New("site configuration not found")
)

/*
SiteConfig is a read-only view over a configuration document. Every
accessor tolerates missing keys; the zero value is the empty configuration.
*/
type SiteConfig struct {
	root gjson.Result
}

func Empty() SiteConfig {
	return SiteConfig{}
}

func Parse(b []byte) (SiteConfig, error) {
	if !gjson.ValidBytes(b) {
		return Empty(), ErrInvalidConfig
	}

	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return Empty(), ErrInvalidConfig
	}

	return SiteConfig{root: root}, nil
}

/*
Value returns the configured value for key as a string. Numbers and
booleans are returned in their JSON text form; absent keys return "".
*/
func (c SiteConfig) Value(key string) string {
	var result string

	c.root.ForEach(func(k, v gjson.Result) bool {
		if k.String() != key {
			return true
		}

		result = v.String()
		return false
	})

	return result
}

/*
ValueOr returns the configured value, or fallback when the value is
absent or blank.
*/
func (c SiteConfig) ValueOr(key, fallback string) string {
	value := c.Value(key)

	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func (c SiteConfig) Title() string {
	return c.ValueOr(KeyTitle, DefaultTitle)
}

/*
Cover returns the configured cover for an album folder, as found under
"galleries.<folder>.cover". A leading "/" is stripped from non-URL paths.
*/
func (c SiteConfig) Cover(folder string) string {
	var cover string

	c.root.Get(KeyGalleries).ForEach(func(k, v gjson.Result) bool {
		if k.String() != folder {
			return true
		}

		cover = v.Get("cover").String()
		return false
	})

	if cover == "" || strings.HasPrefix(cover, "http") {
		return cover
	}

	return strings.TrimPrefix(cover, "/")
}

func (c SiteConfig) IsEmpty() bool {
	return !c.root.Exists() || len(c.root.Map()) == 0
}
