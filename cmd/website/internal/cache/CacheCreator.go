package cache

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"strings"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/createbucketoptions"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/adampresley/simplegallery/pkg/gallery"
	"github.com/adampresley/simplegallery/pkg/models"
	"github.com/adampresley/simplegallery/pkg/services"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
	"github.com/alitto/pond/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/nfnt/resize"
)

const (
	thumbnailMaxSize uint = 400
)

type CacheCreator interface {
	CreateCache()
}

type CacheCreatorConfig struct {
	AlbumService    services.AlbumServicer
	AwsBucket       string
	AwsRegion       string
	GalleryFolder   string
	MaxCacheWorkers int
	S3Client        s3.S3Client
	ShutdownCtx     context.Context
	SiteConfig      *siteconfig.Store
	ThumbnailFolder string
}

/*
CacheCreatorService mirrors the gallery folder of the bucket into the
catalog and keeps a thumbnail for every raster image.
*/
type CacheCreatorService struct {
	albumService    services.AlbumServicer
	awsBucket       string
	awsRegion       string
	galleryFolder   string
	maxCacheWorkers int
	s3Client        s3.S3Client
	shutdownCtx     context.Context
	siteConfig      *siteconfig.Store
	thumbnailFolder string
}

func NewCacheCreatorService(config CacheCreatorConfig) CacheCreatorService {
	if config.MaxCacheWorkers <= 0 {
		config.MaxCacheWorkers = 1
	}

	return CacheCreatorService{
		albumService:    config.AlbumService,
		awsBucket:       config.AwsBucket,
		awsRegion:       config.AwsRegion,
		galleryFolder:   strings.Trim(config.GalleryFolder, "/"),
		maxCacheWorkers: config.MaxCacheWorkers,
		s3Client:        config.S3Client,
		shutdownCtx:     config.ShutdownCtx,
		siteConfig:      config.SiteConfig,
		thumbnailFolder: strings.Trim(config.ThumbnailFolder, "/"),
	}
}

func (c CacheCreatorService) CreateCache() {
	var (
		err     error
		objects []GalleryObject
		removed int64
	)

	slog.Info("starting cache creation...")

	if err = c.ensureBucketExists(c.awsBucket); err != nil {
		slog.Error("error ensuring bucket exists. aborting", "bucket", c.awsBucket, "error", err)
		return
	}

	if objects, err = c.listGallery(); err != nil {
		slog.Error("error listing gallery folder", "bucket", c.awsBucket, "folder", c.galleryFolder, "error", err)
		return
	}

	albums := GroupAlbums(c.galleryFolder, objects, c.siteConfig.Config())
	slog.Info("updating album catalog...", "numAlbums", len(albums), "numObjects", len(objects))

	names := make([]string, 0, len(albums))

	for _, album := range albums {
		if err = c.albumService.SaveAlbum(album); err != nil {
			slog.Error("error saving album", "album", album.Name, "error", err)
			continue
		}

		names = append(names, album.Name)
	}

	if len(albums) > 0 && len(names) == 0 {
		slog.Error("no album could be saved, keeping the existing catalog")
		return
	}

	if removed, err = c.albumService.DeleteAlbumsExcept(names); err != nil {
		slog.Error("error removing stale albums", "error", err)
	} else if removed > 0 {
		slog.Info("removed albums no longer in the bucket", "removed", removed)
	}

	pool := pond.NewPool(c.maxCacheWorkers, pond.WithContext(c.shutdownCtx))

	for _, album := range albums {
		for _, media := range album.Media {
			if !gallery.CanThumbnail(media.Name) {
				continue
			}

			pool.Submit(func() {
				thumbnailKey := gallery.ThumbnailKey(c.thumbnailFolder, album.Name, media.Name)

				if c.doesThumbnailExist(thumbnailKey, media) {
					return
				}

				slog.Info("creating thumbnail...", "key", media.Key, "thumbnailKey", thumbnailKey)

				if err := c.createThumbnail(media.Key, thumbnailKey); err != nil {
					slog.Error("error creating thumbnail", "album", album.Name, "key", media.Key, "error", err)
				}
			})
		}
	}

	_ = pool.Stop().Wait()
}

func (c CacheCreatorService) ensureBucketExists(bucketName string) error {
	var (
		err    error
		exists bool
	)

	exists, err = c.s3Client.BucketExists(bucketName)

	if err != nil {
		return fmt.Errorf("error ensuring bucket '%s' exists: %w", bucketName, err)
	}

	if exists {
		return nil
	}

	slog.Info("creating bucket", "bucketName", bucketName)

	err = c.s3Client.CreateBucket(
		bucketName,
		createbucketoptions.WithRegion(c.awsRegion),
	)

	if err != nil {
		return fmt.Errorf("error creating bucket '%s': %w", bucketName, err)
	}

	return nil
}

/*
listGallery lists every media file under the gallery folder. Sizes are
only on the raw SDK objects, so they are collected in the filter.
*/
func (c CacheCreatorService) listGallery() ([]GalleryObject, error) {
	var (
		err      error
		response s3.ListResponse
	)

	sizes := map[string]int64{}

	response, err = c.s3Client.List(
		c.awsBucket,
		c.galleryFolder+"/",
		listoptions.WithGetAll(),
		listoptions.WithFilter(func(obj types.Object) bool {
			key := aws.ToString(obj.Key)

			if !gallery.IsMedia(key) {
				return false
			}

			sizes[key] = aws.ToInt64(obj.Size)
			return true
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("error listing gallery objects: %w", err)
	}

	result := make([]GalleryObject, 0, len(response.Objects))

	for _, obj := range response.Objects {
		result = append(result, GalleryObject{
			Key:          obj.Key,
			Size:         sizes[obj.Key],
			LastModified: obj.LastModified,
		})
	}

	return result, nil
}

func (c CacheCreatorService) doesThumbnailExist(thumbnailKey string, original models.Media) bool {
	var (
		err  error
		stat *s3.ObjectMetadata
	)

	if stat, err = c.s3Client.StatObject(c.awsBucket, thumbnailKey); err != nil {
		slog.Error("error retrieving metadata for thumbnail", "key", thumbnailKey, "error", err)
		return false
	}

	if stat == nil {
		return false
	}

	if stat.LastModified.Before(original.ModifiedAt) {
		return false
	}

	return true
}

func (c CacheCreatorService) createThumbnail(originalKey, thumbnailKey string) error {
	var (
		err      error
		img      image.Image
		original s3.GetObjectResponse
		buf      bytes.Buffer
	)

	original, err = c.s3Client.Get(
		c.awsBucket,
		originalKey,
	)

	if err != nil {
		return fmt.Errorf("error retrieving original image %s: %w", originalKey, err)
	}

	defer original.Body.Close()

	if img, err = resizeReader(original.Body, thumbnailMaxSize); err != nil {
		return fmt.Errorf("error resizing image: %w", err)
	}

	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("error encoding image for thumbnail: %w", err)
	}

	_, err = c.s3Client.Put(
		c.awsBucket,
		thumbnailKey,
		&buf,
	)

	if err != nil {
		return fmt.Errorf("error uploading thumbnail to S3: %w", err)
	}

	return nil
}

func resizeReader(r io.Reader, maxSize uint) (image.Image, error) {
	var (
		err error
		img image.Image
	)

	if img, _, err = image.Decode(r); err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	return fitWithin(img, maxSize), nil
}

/*
fitWithin scales img so its longest edge is maxSize. Images already
smaller are left alone.
*/
func fitWithin(img image.Image, maxSize uint) image.Image {
	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if width <= maxSize && height <= maxSize {
		return img
	}

	var newWidth, newHeight uint
	if width > height {
		// Landscape orientation
		newWidth = maxSize
		newHeight = uint(float64(height) * (float64(maxSize) / float64(width)))
	} else {
		// Portrait orientation or square
		newHeight = maxSize
		newWidth = uint(float64(width) * (float64(maxSize) / float64(height)))
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}
