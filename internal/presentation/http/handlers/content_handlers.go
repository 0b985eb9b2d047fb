package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sauntrix/sauntrix-go/internal/application/services"
	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
)

// ContentHandlers serves the catalog collections: discography and videos.
// Reads come straight from the cache; writes go through the mutation façade.
type ContentHandlers struct {
	contentService *services.ContentService
	logger         *logging.ChanneledLogger
}

// NewContentHandlers creates content handlers with injected dependencies
func NewContentHandlers(contentService *services.ContentService, logger *logging.ChanneledLogger) *ContentHandlers {
	return &ContentHandlers{contentService: contentService, logger: logger}
}

// GetDiscography handles GET /api/v1/discography
func (h *ContentHandlers) GetDiscography(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"discography": h.contentService.Discography()})
}

// GetVideos handles GET /api/v1/videos
func (h *ContentHandlers) GetVideos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"videos": h.contentService.Videos()})
}

type discographyRequest struct {
	Title          string                  `json:"title" binding:"required"`
	Description    string                  `json:"description"`
	Cover          string                  `json:"cover" binding:"omitempty,url"`
	ReleaseDate    string                  `json:"release_date" binding:"required"`
	StreamingLinks []content.StreamingLink `json:"streaming_links"`
}

// PostDiscography handles POST /api/v1/admin/discography
func (h *ContentHandlers) PostDiscography(c *gin.Context) {
	var req discographyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := content.DiscographyItem{
		Title:          req.Title,
		Description:    req.Description,
		Cover:          req.Cover,
		ReleaseDate:    req.ReleaseDate,
		StreamingLinks: req.StreamingLinks,
	}
	if err := h.contentService.AddDiscographyItem(c.Request.Context(), item); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// PutDiscography handles PUT /api/v1/admin/discography/:id
func (h *ContentHandlers) PutDiscography(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contentService.UpdateDiscographyItem(c.Request.Context(), c.Param("id"), patch); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteDiscography handles DELETE /api/v1/admin/discography/:id
func (h *ContentHandlers) DeleteDiscography(c *gin.Context) {
	if err := h.contentService.RemoveDiscographyItem(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type videoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required,youtubeurl"`
	Thumbnail   string `json:"thumbnail" binding:"omitempty,url"`
}

// PostVideo handles POST /api/v1/admin/videos
func (h *ContentHandlers) PostVideo(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid YouTube URL"})
		return
	}

	item := content.VideoItem{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Thumbnail:   req.Thumbnail,
	}
	if err := h.contentService.AddVideo(c.Request.Context(), item); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// PutVideo handles PUT /api/v1/admin/videos/:id
func (h *ContentHandlers) PutVideo(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contentService.UpdateVideo(c.Request.Context(), c.Param("id"), patch); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteVideo handles DELETE /api/v1/admin/videos/:id
func (h *ContentHandlers) DeleteVideo(c *gin.Context) {
	if err := h.contentService.RemoveVideo(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondMutationError maps façade errors onto HTTP status codes.
func respondMutationError(c *gin.Context, err error) {
	if errors.Is(err, remotestore.ErrStoreUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not available"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
