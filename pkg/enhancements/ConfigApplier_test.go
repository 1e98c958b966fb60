package enhancements

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adampresley/simplegallery/pkg/dom/htmldoc"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	body string
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (siteconfig.SiteConfig, error) {
	f.urls = append(f.urls, url)

	if f.err != nil {
		return siteconfig.Empty(), f.err
	}

	return siteconfig.Parse([]byte(f.body))
}

const pageWithFooter = `<html><body>
	<div class="albums"></div>
	<div class="footer"><p>© 2000 <a href="#">placeholder</a></p></div>
</body></html>`

func fixedNow() time.Time {
	return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
}

func TestApplyConfiguration_FontsAndFooter(t *testing.T) {
	doc, err := htmldoc.Parse(pageWithFooter)
	require.NoError(t, err)

	fetcher := &fakeFetcher{body: `{
		"title-font": "brand",
		"footer-font": "Georgia, serif",
		"footer": "ACME",
		"footer-link": "https://acme.example",
		"start-year": 2021
	}`}

	applier := NewConfigApplier(ConfigApplierConfig{
		Document: doc,
		Fetcher:  fetcher,
		Now:      fixedNow,
	})

	applier.ApplyConfiguration(context.Background())

	assert.Equal(t, []string{DefaultConfigURL}, fetcher.urls)

	root := doc.Root()
	assert.Equal(t, siteconfig.BrandFontStack, root.Style("--title-font"))
	assert.Equal(t, "Georgia, serif", root.Style("--footer-font"))
	assert.Equal(t, siteconfig.DefaultFontStack, root.Style("--global-font"))

	p, ok := doc.Query(".footer p")
	require.True(t, ok)
	assert.Equal(t, "© 2021-2025 ACME • Powered By Wen", p.Text())

	link, ok := p.Query("a")
	require.True(t, ok)
	href, _ := link.Attribute("href")
	assert.Equal(t, "https://acme.example", href)
	target, _ := link.Attribute("target")
	assert.Equal(t, "_blank", target)
}

func TestApplyConfiguration_FetchFailureUsesDefaults(t *testing.T) {
	doc, err := htmldoc.Parse(pageWithFooter)
	require.NoError(t, err)

	applier := NewConfigApplier(ConfigApplierConfig{
		Document: doc,
		Fetcher:  &fakeFetcher{err: errors.New("network down")},
		Now:      fixedNow,
	})

	applier.ApplyConfiguration(context.Background())

	root := doc.Root()
	assert.Equal(t, siteconfig.DefaultFontStack, root.Style("--title-font"))
	assert.Equal(t, siteconfig.DefaultFontStack, root.Style("--footer-font"))
	assert.Equal(t, siteconfig.DefaultFontStack, root.Style("--global-font"))

	p, _ := doc.Query(".footer p")
	assert.Equal(t, "© 2025 GALLERY.GW124.TOP • Powered By Wen", p.Text())
}

func TestApplyConfiguration_NotFoundOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	doc, err := htmldoc.Parse(pageWithFooter)
	require.NoError(t, err)

	applier := NewConfigApplier(ConfigApplierConfig{
		Document:  doc,
		Fetcher:   siteconfig.NewHTTPFetcher(siteconfig.HTTPFetcherConfig{Client: server.Client()}),
		ConfigURL: server.URL + "/config.json",
		Now:       fixedNow,
	})

	applier.ApplyConfiguration(context.Background())

	p, _ := doc.Query(".footer p")
	assert.Contains(t, p.Text(), siteconfig.DefaultFooterName)
	assert.Equal(t, siteconfig.DefaultFontStack, doc.Root().Style("--title-font"))
}

func TestApplyConfiguration_NoFooter(t *testing.T) {
	doc, err := htmldoc.Parse(`<html><body><div class="albums"></div></body></html>`)
	require.NoError(t, err)

	applier := NewConfigApplier(ConfigApplierConfig{
		Document: doc,
		Fetcher:  &fakeFetcher{body: `{"global-font": "monospace"}`},
		Now:      fixedNow,
	})

	assert.NotPanics(t, func() {
		applier.ApplyConfiguration(context.Background())
	})

	assert.Equal(t, "monospace", doc.Root().Style("--global-font"))
}

func TestApplyConfiguration_FooterWithoutParagraph(t *testing.T) {
	doc, err := htmldoc.Parse(`<html><body><div class="footer"><span>keep me</span></div></body></html>`)
	require.NoError(t, err)

	applier := NewConfigApplier(ConfigApplierConfig{
		Document: doc,
		Fetcher:  &fakeFetcher{body: `{}`},
		Now:      fixedNow,
	})

	applier.ApplyConfiguration(context.Background())

	footer, _ := doc.Query(".footer")
	assert.Equal(t, "keep me", footer.Text())
}
