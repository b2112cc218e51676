package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosterPublicId(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{
			"https://res.cloudinary.com/demo/image/upload/v1712345678/movie_posters/arev.jpg",
			"movie_posters/arev",
		},
		{
			"https://res.cloudinary.com/demo/image/upload/movie_posters/arev.png",
			"movie_posters/arev",
		},
		{
			"https://res.cloudinary.com/demo/image/upload/v1712345678/arev.webp",
			"arev",
		},
		{"https://example.com/static/arev.jpg", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PosterPublicId(tt.url), "url %q", tt.url)
	}
}
