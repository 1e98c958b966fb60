package siteconfig

import (
	"fmt"
	"html"
)

const (
	DefaultFooterName = "GALLERY.GW124.TOP"
	DefaultFooterLink = "https://gw124.top"
	AttributionName   = "Wen"
	AttributionLink   = "https://gw124.top/"
)

func FooterName(config SiteConfig) string {
	return config.ValueOr(KeyFooter, DefaultFooterName)
}

func FooterLink(config SiteConfig) string {
	return config.ValueOr(KeyFooterLink, DefaultFooterLink)
}

/*
FooterMarkup builds the inner markup of the footer paragraph.
*/
func FooterMarkup(config SiteConfig, year string) string {
	return fmt.Sprintf(
		`© %s <a href="%s" target="_blank">%s</a> • Powered By <a href="%s" target="_blank">%s</a>`,
		html.EscapeString(year),
		html.EscapeString(FooterLink(config)),
		html.EscapeString(FooterName(config)),
		AttributionLink,
		AttributionName,
	)
}
