package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImages(t *testing.T) {
	raw := `[
		{"title": "Front", "image": "https://img.example/1.jpg"},
		{"title": "Inside", "image": "https://img.example/2.jpg"},
		{"title": "Broken", "image": ""},
		{"title": "Shelf", "image": "https://img.example/3.jpg"}
	]`

	images := ExtractImages(raw)

	require.NotNil(t, images.Avatar)
	require.NotNil(t, images.Cover)
	require.NotNil(t, images.Building)

	// Avatar and cover are both the first image.
	assert.Equal(t, "https://img.example/1.jpg", *images.Avatar)
	assert.Equal(t, "https://img.example/1.jpg", *images.Cover)
	assert.Equal(t, "https://img.example/2.jpg", *images.Building)

	// Gallery keeps scrape order and drops the empty URL.
	assert.Equal(t, []string{
		"https://img.example/1.jpg",
		"https://img.example/2.jpg",
		"https://img.example/3.jpg",
	}, images.Gallery)
}

func TestExtractImages_SingleImage(t *testing.T) {
	images := ExtractImages(`[{"image": "https://img.example/only.jpg"}]`)

	require.NotNil(t, images.Avatar)
	assert.Equal(t, "https://img.example/only.jpg", *images.Avatar)
	assert.Nil(t, images.Building)
	assert.Len(t, images.Gallery, 1)
}

func TestExtractImages_Malformed(t *testing.T) {
	for _, raw := range []string{"", "null", "{not json"} {
		images := ExtractImages(raw)

		assert.Nil(t, images.Avatar)
		assert.Nil(t, images.Cover)
		assert.Nil(t, images.Building)
		assert.NotNil(t, images.Gallery, "gallery must never be nil")
		assert.Empty(t, images.Gallery)
	}
}
