package siteconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFooterMarkup_Defaults(t *testing.T) {
	got := FooterMarkup(Empty(), "2025")

	assert.Equal(t,
		`© 2025 <a href="https://gw124.top" target="_blank">GALLERY.GW124.TOP</a> • Powered By <a href="https://gw124.top/" target="_blank">Wen</a>`,
		got,
	)
}

func TestFooterMarkup_Configured(t *testing.T) {
	config, err := Parse([]byte(`{"footer": "ACME", "footer-link": "https://acme.example"}`))
	require.NoError(t, err)

	got := FooterMarkup(config, "2020-2025")

	assert.Contains(t, got, `© 2020-2025 <a href="https://acme.example" target="_blank">ACME</a>`)
	assert.Contains(t, got, `Powered By <a href="https://gw124.top/" target="_blank">Wen</a>`)
}

func TestFooterMarkup_BlankValuesUseDefaults(t *testing.T) {
	config, err := Parse([]byte(`{"footer": "", "footer-link": ""}`))
	require.NoError(t, err)

	assert.Equal(t, DefaultFooterName, FooterName(config))
	assert.Equal(t, DefaultFooterLink, FooterLink(config))
}

func TestFooterMarkup_EscapesValues(t *testing.T) {
	config, err := Parse([]byte(`{"footer": "<b>Me & You</b>", "footer-link": "https://x.example/?a=1&b=\"2\""}`))
	require.NoError(t, err)

	got := FooterMarkup(config, "2025")

	assert.Contains(t, got, "&lt;b&gt;Me &amp; You&lt;/b&gt;")
	assert.Contains(t, got, `href="https://x.example/?a=1&amp;b=&#34;2&#34;"`)
}
