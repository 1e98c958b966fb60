package main

import (
	"context"
	"embed"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/simplegallery/cmd/website/internal/albums"
	"github.com/adampresley/simplegallery/cmd/website/internal/cache"
	"github.com/adampresley/simplegallery/cmd/website/internal/configuration"
	"github.com/adampresley/simplegallery/cmd/website/internal/home"
	"github.com/adampresley/simplegallery/cmd/website/internal/themeconfig"
	"github.com/adampresley/simplegallery/cmd/website/internal/urls"
	"github.com/adampresley/simplegallery/pkg/migrations"
	"github.com/adampresley/simplegallery/pkg/services"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
)

var (
	Version string = "development"
	appName string = "simplegallery"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	albumService        services.AlbumServicer
	cacheCreatorService cache.CacheCreator
	db                  *sqlz.DB
	renderer            rendering.TemplateRenderer
	siteConfig          *siteconfig.Store
	siteConfigWatcher   *siteconfig.Watcher

	/* Controllers */
	albumController  albums.AlbumHandlers
	configController themeconfig.ConfigHandlers
	homeController   home.HomeHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("awsEndpointUrl", config.AwsEndpointUrl),
		slog.String("awsRegion", config.AwsRegion),
		slog.String("siteConfigPath", config.SiteConfigPath),
	)

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())

	/*
	 * Setup services
	 */
	binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	if db, err = sqlz.Connect("sqlite", config.DSN); err != nil {
		panic(err)
	}

	if err = migrations.Migrate(db); err != nil {
		panic(err)
	}

	siteConfig = siteconfig.NewStore(config.SiteConfigPath)

	if err = siteConfig.Reload(); err != nil {
		if errors.Is(err, siteconfig.ErrConfigNotFound) {
			slog.Warn("no site configuration found, using defaults", "path", config.SiteConfigPath)
		} else {
			slog.Error("site configuration could not be loaded, using defaults", "error", err)
		}
	}

	if siteConfigWatcher, err = siteconfig.NewWatcher(siteConfig); err != nil {
		panic(err)
	}

	if err = siteConfigWatcher.Start(); err != nil {
		slog.Error("site configuration changes will not be picked up until restart", "error", err)
	}

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	s3Client, err := s3.NewClient(awsConfig)

	if err != nil {
		panic(err)
	}

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	albumService = services.NewAlbumService(services.AlbumServiceConfig{
		DB: db,
	})

	urlBuilder := urls.NewURLBuilder(urls.URLBuilderConfig{
		GalleryFolder:   config.GalleryFolder,
		ThumbnailFolder: config.ThumbnailFolder,
		Sign: func(key string) (string, error) {
			return s3Client.GetUrl(config.AwsBucket, key)
		},
	})

	cacheCreatorService = cache.NewCacheCreatorService(cache.CacheCreatorConfig{
		AlbumService:    albumService,
		AwsBucket:       config.AwsBucket,
		AwsRegion:       config.AwsRegion,
		GalleryFolder:   config.GalleryFolder,
		MaxCacheWorkers: config.MaxCacheWorkers,
		S3Client:        s3Client,
		ShutdownCtx:     shutdownCtx,
		SiteConfig:      siteConfig,
		ThumbnailFolder: config.ThumbnailFolder,
	})

	/*
	 * Setup controllers
	 */
	albumController = albums.NewAlbumController(albums.AlbumControllerConfig{
		AlbumService: albumService,
		Bucket:       config.AwsBucket,
		Renderer:     renderer,
		S3Client:     s3Client,
		SiteConfig:   siteConfig,
		URLBuilder:   urlBuilder,
	})

	configController = themeconfig.NewConfigController(themeconfig.ConfigControllerConfig{
		SiteConfig: siteConfig,
	})

	homeController = home.NewHomeController(home.HomeControllerConfig{
		AlbumService: albumService,
		Renderer:     renderer,
		SiteConfig:   siteConfig,
		URLBuilder:   urlBuilder,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /", HandlerFunc: homeController.HomePage},
		{Path: "GET /config.json", HandlerFunc: configController.ConfigJSON},
		{Path: "GET /album/{id}", HandlerFunc: albumController.AlbumPage},
		{Path: "GET /album/{id}/media/{index}", HandlerFunc: albumController.MediaPage},
		{Path: "GET /album/{id}/media/{index}/download", HandlerFunc: albumController.DownloadMedia},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Start the cache creator job
	 */
	setupCacheCreator(quit, time.Duration(max(config.CacheIntervalMinutes, 1))*time.Minute)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	cancel()
	mux.Shutdown(httpServer)

	if err = siteConfigWatcher.Stop(); err != nil {
		slog.Error("error stopping site configuration watcher", "error", err)
	}

	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func setupCacheCreator(quit chan os.Signal, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		running := true

		runner := func() {
			defer func() {
				running = false
			}()

			cacheCreatorService.CreateCache()
			slog.Info("cache creator finished.")
		}

		runner()

		for {
			select {
			case <-quit:
				return

			case <-ticker.C:
				if running {
					slog.Info("cache creator already running. skipping...")
					continue
				}

				running = true
				runner()
			}
		}
	}()
}
