package configuration

import "github.com/adampresley/configinator"

type Config struct {
	AwsEndpointUrl       string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion            string `flag:"awsregion" env:"AWS_REGION" default:"us-central-1" description:"AWS region"`
	AwsAccessKeyId       string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey   string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket            string `flag:"awsbucket" env:"AWS_BUCKET" default:"gallery" description:"S3 bucket holding the gallery"`
	CacheIntervalMinutes int    `flag:"cacheinterval" env:"CACHE_INTERVAL_MINUTES" default:"60" description:"Minutes between catalog and thumbnail refreshes"`
	DSN                  string `flag:"dsn" env:"DSN" default:"file:./data/gallery.db" description:"Data source name"`
	GalleryFolder        string `flag:"gf" env:"GALLERY_FOLDER" default:"galleries" description:"S3 folder containing one folder per album"`
	Host                 string `flag:"host" env:"HOST" default:"localhost:8081" description:"The address and port to bind the HTTP server to"`
	LogLevel             string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxCacheWorkers      int    `flag:"mcc" env:"MAX_CACHE_WORKERS" default:"8" description:"Maximum number of concurrent thumbnail workers"`
	SiteConfigPath       string `flag:"siteconfig" env:"SITE_CONFIG_PATH" default:"./config.json" description:"Path to the theme's config.json"`
	ThumbnailFolder      string `flag:"tf" env:"THUMBNAIL_FOLDER" default:"thumbnails" description:"S3 folder for generated thumbnails"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
