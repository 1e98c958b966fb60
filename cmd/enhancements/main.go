//go:build js && wasm

/*
enhancements is the gallery theme's browser module. Build it with

	GOOS=js GOARCH=wasm go build -o cmd/website/app/static/wasm/enhancements.wasm ./cmd/enhancements

and load it with wasm_exec.js from the Go distribution.
*/
package main

import (
	"context"
	"log/slog"
	"net/url"
	"syscall/js"

	"github.com/adampresley/simplegallery/pkg/dom/jsdom"
	"github.com/adampresley/simplegallery/pkg/enhancements"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
)

var (
	Version string = "development"
)

func main() {
	level := slog.LevelInfo

	if Version == "development" {
		level = slog.LevelDebug
	}

	slog.SetLogLoggerLevel(level)

	doc := jsdom.NewDocument()

	doc.Ready(func() {
		/*
		 * Event handlers call back into Go, so initialization must not
		 * block the JS event loop. net/http waits on a JS promise.
		 */
		go func() {
			enhancements.Initialize(context.Background(), enhancements.InitializeConfig{
				Document:  doc,
				Fetcher:   siteconfig.NewHTTPFetcher(siteconfig.HTTPFetcherConfig{}),
				ConfigURL: configURL(),
			})
		}()
	})

	select {}
}

/*
configURL resolves the config location against the page URL, since
net/http needs an absolute URL. Pages may override the default relative
path with a data-config-url attribute on <html>.
*/
func configURL() string {
	location := js.Global().Get("location").Get("href").String()
	path := enhancements.DefaultConfigURL

	if override := js.Global().Get("document").Get("documentElement").Call("getAttribute", "data-config-url"); !override.IsNull() {
		path = override.String()
	}

	base, err := url.Parse(location)
	if err != nil {
		slog.Warn("unable to parse page location, using relative config path", "location", location, "error", err)
		return path
	}

	ref, err := url.Parse(path)
	if err != nil {
		return path
	}

	return base.ResolveReference(ref).String()
}
