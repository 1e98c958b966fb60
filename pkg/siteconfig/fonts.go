package siteconfig

import "strings"

const (
	BrandSentinel    = "brand"
	DefaultFontStack = "-apple-system, BlinkMacSystemFont, sans-serif"
	BrandFontStack   = "'Brand', " + DefaultFontStack
)

type FontSlot struct {
	Key      string
	Property string
}

var FontSlots = []FontSlot{
	{Key: KeyTitleFont, Property: "--title-font"},
	{Key: KeyFooterFont, Property: "--footer-font"},
	{Key: KeyGlobalFont, Property: "--global-font"},
}

type ResolvedFont struct {
	Property string
	Value    string
}

/*
ResolveFont maps a configured font value to the CSS font stack to use.
A blank value gives the system stack and the sentinel "brand" gives the
bundled Brand font ahead of the system stack. Anything else is used
verbatim.
*/
func ResolveFont(value string) string {
	if strings.TrimSpace(value) == "" {
		return DefaultFontStack
	}

	if value == BrandSentinel {
		return BrandFontStack
	}

	return value
}

func ResolveFonts(config SiteConfig) []ResolvedFont {
	result := make([]ResolvedFont, 0, len(FontSlots))

	for _, slot := range FontSlots {
		result = append(result, ResolvedFont{
			Property: slot.Property,
			Value:    ResolveFont(config.Value(slot.Key)),
		})
	}

	return result
}
