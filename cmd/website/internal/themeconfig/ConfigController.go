package themeconfig

import (
	"net/http"
	"strconv"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
)

type ConfigHandlers interface {
	ConfigJSON(w http.ResponseWriter, r *http.Request)
}

type ConfigControllerConfig struct {
	SiteConfig *siteconfig.Store
}

type ConfigController struct {
	siteConfig *siteconfig.Store
}

func NewConfigController(config ConfigControllerConfig) ConfigController {
	return ConfigController{
		siteConfig: config.SiteConfig,
	}
}

/*
GET /config.json

Serves the theme configuration file exactly as it is on disk. Browsers add
a cache-busting query; the response is also marked no-store. A missing
file is a 404, which the enhancements treat as "use the defaults".
*/
func (c ConfigController) ConfigJSON(w http.ResponseWriter, r *http.Request) {
	raw, exists := c.siteConfig.Raw()

	if !exists {
		httphelpers.WriteText(w, http.StatusNotFound, "config.json not found")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(raw)))
	w.WriteHeader(http.StatusOK)

	if r.Method != http.MethodHead {
		_, _ = w.Write(raw)
	}
}
