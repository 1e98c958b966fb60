package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/adampresley/simplegallery/pkg/models"
	"github.com/rfberaldo/sqlz"
)

type AlbumServicer interface {
	DeleteAlbumsExcept(names []string) (int64, error)
	GetAlbum(albumID uint) (*models.Album, error)
	GetAlbumList() ([]*models.Album, error)
	GetMedia(albumID uint, position int) (*models.Media, error)
	SaveAlbum(album *models.Album) error
}

// Seven parameters per row keeps a batch well under sqlite's variable limit.
const mediaInsertBatchSize = 100

type AlbumServiceConfig struct {
	DB *sqlz.DB
}

type AlbumService struct {
	db *sqlz.DB
}

func NewAlbumService(config AlbumServiceConfig) AlbumService {
	return AlbumService{
		db: config.DB,
	}
}

const albumColumns = `
   a.id
   , a.created_at
   , a.updated_at
   , a.name
   , a.display_name
   , a.sort_order
   , a.has_order
   , a.cover_key
   , (SELECT COUNT(*) FROM media AS m WHERE m.album_id=a.id AND m.media_type='image') AS image_count
   , (SELECT COUNT(*) FROM media AS m WHERE m.album_id=a.id AND m.media_type='video') AS video_count
   , COALESCE((SELECT m.name FROM media AS m WHERE m.album_id=a.id ORDER BY m.position LIMIT 1), '') AS first_media_name
   , COALESCE((SELECT m.media_type FROM media AS m WHERE m.album_id=a.id ORDER BY m.position LIMIT 1), '') AS first_media_type
`

func (s AlbumService) GetAlbumList() ([]*models.Album, error) {
	var (
		err error
	)

	result := []*models.Album{}

	sql := `
SELECT` + albumColumns + `
FROM albums AS a
ORDER BY a.has_order DESC, a.sort_order, a.display_name
   `

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.Query(ctx, &result, sql); err != nil {
		return result, fmt.Errorf("error querying for albums: %w", err)
	}

	return result, nil
}

/*
GetAlbum returns an album with its media in display order.
*/
func (s AlbumService) GetAlbum(albumID uint) (*models.Album, error) {
	var (
		err error
	)

	result := &models.Album{}

	sql := `
SELECT` + albumColumns + `
FROM albums AS a
WHERE 1=1
   AND a.id=?
   `

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.QueryRow(ctx, result, sql, albumID); err != nil {
		if sqlz.IsNotFound(err) {
			return result, fmt.Errorf("%w: %d", models.ErrAlbumNotFound, albumID)
		}

		return result, fmt.Errorf("error querying for album %d: %w", albumID, err)
	}

	sql = `
SELECT
	id
	, album_id
	, position
	, name
	, object_key
	, media_type
	, size
	, modified_at
FROM media
WHERE 1=1
	AND album_id=?
ORDER BY position
	`

	ctx, cancel = context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	result.Media = []models.Media{}

	if err = s.db.Query(ctx, &result.Media, sql, albumID); err != nil {
		return result, fmt.Errorf("error querying for media in album %d: %w", albumID, err)
	}

	return result, nil
}

func (s AlbumService) GetMedia(albumID uint, position int) (*models.Media, error) {
	var (
		err error
	)

	result := &models.Media{}

	sql := `
SELECT
	id
	, album_id
	, position
	, name
	, object_key
	, media_type
	, size
	, modified_at
FROM media
WHERE 1=1
	AND album_id=?
	AND position=?
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.QueryRow(ctx, result, sql, albumID, position); err != nil {
		if sqlz.IsNotFound(err) {
			return result, fmt.Errorf("%w: album %d, position %d", models.ErrMediaNotFound, albumID, position)
		}

		return result, fmt.Errorf("error querying for media %d in album %d: %w", position, albumID, err)
	}

	return result, nil
}

/*
SaveAlbum inserts or updates an album by folder name and replaces its
media with album.Media. Media positions are rewritten to match the slice
order. album.ID is set on success.
*/
func (s AlbumService) SaveAlbum(album *models.Album) error {
	var (
		err error
	)

	sql := `
INSERT INTO albums (
	name,
	display_name,
	sort_order,
	has_order,
	cover_key
) VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	display_name=excluded.display_name,
	sort_order=excluded.sort_order,
	has_order=excluded.has_order,
	cover_key=excluded.cover_key,
	updated_at=CURRENT_TIMESTAMP
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if _, err = s.db.Exec(ctx, sql, album.Name, album.DisplayName, album.SortOrder, album.HasOrder, album.CoverKey); err != nil {
		return fmt.Errorf("error saving album '%s': %w", album.Name, err)
	}

	saved := struct {
		ID uint `db:"id"`
	}{}

	if err = s.db.QueryRow(ctx, &saved, `SELECT id FROM albums WHERE name=?`, album.Name); err != nil {
		return fmt.Errorf("error reading id of album '%s': %w", album.Name, err)
	}

	album.ID = saved.ID

	if _, err = s.db.Exec(ctx, `DELETE FROM media WHERE album_id=?`, album.ID); err != nil {
		return fmt.Errorf("error clearing media for album '%s': %w", album.Name, err)
	}

	for index := range album.Media {
		album.Media[index].AlbumID = album.ID
		album.Media[index].Position = index
	}

	for start := 0; start < len(album.Media); start += mediaInsertBatchSize {
		batch := album.Media[start:min(start+mediaInsertBatchSize, len(album.Media))]
		sql, params := mediaInsert(batch)

		if _, err = s.db.Exec(ctx, sql, params...); err != nil {
			return fmt.Errorf("error saving media %d-%d in album '%s': %w", start, start+len(batch)-1, album.Name, err)
		}
	}

	return nil
}

/*
mediaInsert builds one multi-row INSERT for a batch of media, so a batch
is stored entirely or not at all.
*/
func mediaInsert(batch []models.Media) (string, []any) {
	rows := make([]string, 0, len(batch))
	params := make([]any, 0, len(batch)*7)

	for _, m := range batch {
		rows = append(rows, "(?, ?, ?, ?, ?, ?, ?)")
		params = append(params, m.AlbumID, m.Position, m.Name, m.Key, m.MediaType, m.Size, m.ModifiedAt)
	}

	sql := `
INSERT INTO media (
	album_id,
	position,
	name,
	object_key,
	media_type,
	size,
	modified_at
) VALUES ` + strings.Join(rows, ", ")

	return sql, params
}

/*
DeleteAlbumsExcept removes every album, and its media, whose folder name
is not in names. It returns the number of albums removed.
*/
func (s AlbumService) DeleteAlbumsExcept(names []string) (int64, error) {
	var (
		err     error
		removed int64
	)

	where := "1=1"
	params := []any{}

	if len(names) > 0 {
		where = "name NOT IN (" + strings.TrimSuffix(strings.Repeat("?,", len(names)), ",") + ")"

		for _, name := range names {
			params = append(params, name)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	result, err := s.db.Exec(ctx, `DELETE FROM albums WHERE `+where, params...)
	if err != nil {
		return 0, fmt.Errorf("error removing stale albums: %w", err)
	}

	// Orphaned media is unreachable without its album, and the next sync retries this.
	if _, err = s.db.Exec(ctx, `DELETE FROM media WHERE album_id NOT IN (SELECT id FROM albums)`); err != nil {
		return 0, fmt.Errorf("error removing media of stale albums: %w", err)
	}

	if removed, err = result.RowsAffected(); err != nil {
		return 0, fmt.Errorf("error counting removed albums: %w", err)
	}

	return removed, nil
}
