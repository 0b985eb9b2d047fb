package handlers

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gin's validator engine resolves rules from the binding tag.
type videoURLProbe struct {
	URL string `binding:"youtubeurl"`
}

func TestValidateYouTubeURL(t *testing.T) {
	RegisterValidations()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	valid := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=abc123",
		"http://youtu.be/abc123",
		"https://music.youtube.com/watch?v=abc123",
	}
	for _, u := range valid {
		assert.NoError(t, v.Struct(videoURLProbe{URL: u}), u)
	}

	invalid := []string{
		"https://vimeo.com/12345",
		"https://notyoutube.com/watch?v=x",
		"https://youtube.com.evil.example/watch?v=x",
		"ftp://youtube.com/watch?v=x",
		"not a url at all",
	}
	for _, u := range invalid {
		assert.Error(t, v.Struct(videoURLProbe{URL: u}), u)
	}
}
