package cache

import (
	"sort"
	"time"

	"github.com/adampresley/simplegallery/pkg/gallery"
	"github.com/adampresley/simplegallery/pkg/models"
	"github.com/adampresley/simplegallery/pkg/siteconfig"
)

type GalleryObject struct {
	Key          string
	Size         int64
	LastModified time.Time
}

/*
GroupAlbums turns a flat bucket listing into catalog albums. Files are
sorted by name within an album, albums with no media are dropped, and
albums come back in display order. Covers come from the site
configuration's "galleries" section.
*/
func GroupAlbums(galleryFolder string, objects []GalleryObject, config siteconfig.SiteConfig) []*models.Album {
	byFolder := map[string]*models.Album{}
	names := []gallery.AlbumName{}

	for _, obj := range objects {
		folder, name, ok := gallery.SplitMediaKey(galleryFolder, obj.Key)
		if !ok {
			continue
		}

		mediaType := gallery.MediaTypeOf(name)
		if mediaType == gallery.MediaTypeUnknown {
			continue
		}

		album, exists := byFolder[folder]
		if !exists {
			parsed := gallery.ParseAlbumName(folder)
			names = append(names, parsed)

			album = &models.Album{
				Name:        folder,
				DisplayName: parsed.DisplayName,
				SortOrder:   parsed.Order,
				HasOrder:    parsed.HasOrder,
				CoverKey:    config.Cover(folder),
				Media:       []models.Media{},
			}

			byFolder[folder] = album
		}

		album.Media = append(album.Media, models.Media{
			Name:       name,
			Key:        obj.Key,
			MediaType:  string(mediaType),
			Size:       obj.Size,
			ModifiedAt: obj.LastModified,
		})

		if mediaType == gallery.MediaTypeVideo {
			album.VideoCount++
		} else {
			album.ImageCount++
		}
	}

	gallery.SortAlbumNames(names)
	result := make([]*models.Album, 0, len(names))

	for _, n := range names {
		album := byFolder[n.Folder]

		sort.SliceStable(album.Media, func(i, j int) bool {
			return album.Media[i].Name < album.Media[j].Name
		})

		for i := range album.Media {
			album.Media[i].Position = i
		}

		if len(album.Media) > 0 {
			album.FirstMediaName = album.Media[0].Name
			album.FirstMediaType = album.Media[0].MediaType
		}

		result = append(result, album)
	}

	return result
}
