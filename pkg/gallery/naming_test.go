package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAlbumName(t *testing.T) {
	tests := []struct {
		folder string
		want   AlbumName
	}{
		{folder: "01-Trips", want: AlbumName{Folder: "01-Trips", DisplayName: "Trips", Order: 1, HasOrder: true}},
		{folder: "12_Family Reunion", want: AlbumName{Folder: "12_Family Reunion", DisplayName: "Family Reunion", Order: 12, HasOrder: true}},
		{folder: "3. Pets", want: AlbumName{Folder: "3. Pets", DisplayName: "Pets", Order: 3, HasOrder: true}},
		{folder: "Misc", want: AlbumName{Folder: "Misc", DisplayName: "Misc"}},
		{folder: "2024", want: AlbumName{Folder: "2024", DisplayName: "2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAlbumName(tt.folder))
		})
	}
}

func TestSortAlbumNames(t *testing.T) {
	names := []AlbumName{
		ParseAlbumName("Zoo"),
		ParseAlbumName("10-Later"),
		ParseAlbumName("Apples"),
		ParseAlbumName("2-Second"),
		ParseAlbumName("01-First"),
	}

	SortAlbumNames(names)

	got := []string{}
	for _, n := range names {
		got = append(got, n.Folder)
	}

	assert.Equal(t, []string{"01-First", "2-Second", "10-Later", "Apples", "Zoo"}, got)
}

func TestMediaTypeOf(t *testing.T) {
	assert.Equal(t, MediaTypeImage, MediaTypeOf("beach.JPG"))
	assert.Equal(t, MediaTypeImage, MediaTypeOf("logo.svg"))
	assert.Equal(t, MediaTypeVideo, MediaTypeOf("clip.MP4"))
	assert.Equal(t, MediaTypeVideo, MediaTypeOf("clip.webm"))
	assert.Equal(t, MediaTypeUnknown, MediaTypeOf("notes.txt"))
	assert.Equal(t, MediaTypeUnknown, MediaTypeOf("README"))

	assert.True(t, IsMedia("a.png"))
	assert.False(t, IsMedia("a.json"))
}

func TestCanThumbnail(t *testing.T) {
	assert.True(t, CanThumbnail("a.jpeg"))
	assert.True(t, CanThumbnail("a.PNG"))
	assert.True(t, CanThumbnail("a.gif"))
	assert.False(t, CanThumbnail("a.webp"))
	assert.False(t, CanThumbnail("a.mp4"))
}

func TestVideoMimeType(t *testing.T) {
	assert.Equal(t, "video/mp4", VideoMimeType("a.mp4"))
	assert.Equal(t, "video/webm", VideoMimeType("a.WEBM"))
	assert.Equal(t, "video/quicktime", VideoMimeType("a.mov"))
	assert.Equal(t, "video/x-msvideo", VideoMimeType("a.avi"))
	assert.Equal(t, "video/mp4", VideoMimeType("a.mkv"))
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "5 张图片", CountLabel(5, 0))
	assert.Equal(t, "2 个视频", CountLabel(0, 2))
	assert.Equal(t, "7 个文件", CountLabel(5, 2))
	assert.Equal(t, "0 张图片", CountLabel(0, 0))
}

func TestVideoPlaceholderURL(t *testing.T) {
	assert.Contains(t, VideoPlaceholderURL, "data:image/svg+xml;base64,")
}
