package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sauntrix/sauntrix-go/internal/application/services"
	"github.com/sauntrix/sauntrix-go/internal/domain/entities/content"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
)

// CommunityHandlers serves fan submissions and the moderation console.
// Public routes only ever expose approved rows; the full queue is admin-only.
type CommunityHandlers struct {
	communityService *services.CommunityService
	logger           *logging.ChanneledLogger
}

// NewCommunityHandlers creates community handlers with injected dependencies
func NewCommunityHandlers(communityService *services.CommunityService, logger *logging.ChanneledLogger) *CommunityHandlers {
	return &CommunityHandlers{communityService: communityService, logger: logger}
}

// GetCommunityPosts handles GET /api/v1/community/posts - approved only
func (h *CommunityHandlers) GetCommunityPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": h.communityService.ApprovedCommunityPosts()})
}

// GetFanart handles GET /api/v1/community/fanart - approved only
func (h *CommunityHandlers) GetFanart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fanart": h.communityService.ApprovedFanart()})
}

type communityPostRequest struct {
	UserName string `json:"user_name" binding:"required,max=50"`
	Message  string `json:"message" binding:"required,max=500"`
	Rank     string `json:"rank" binding:"omitempty,oneof=gold violet crimson"`
}

// PostCommunityPost handles POST /api/v1/community/posts - fan submission,
// always lands in the pending queue.
func (h *CommunityHandlers) PostCommunityPost(c *gin.Context) {
	var req communityPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := content.CommunityPost{
		UserName: req.UserName,
		Message:  req.Message,
		Rank:     content.Rank(req.Rank),
	}
	if err := h.communityService.SubmitCommunityPost(c.Request.Context(), post); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "status": string(content.StatusPending)})
}

type fanartRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	Artist   string `json:"artist" binding:"required,max=50"`
	ImageURL string `json:"image_url" binding:"required,url"`
}

// PostFanart handles POST /api/v1/community/fanart - fan submission,
// always lands in the pending queue.
func (h *CommunityHandlers) PostFanart(c *gin.Context) {
	var req fanartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := content.FanartItem{
		Title:    req.Title,
		Artist:   req.Artist,
		ImageURL: req.ImageURL,
	}
	if err := h.communityService.SubmitFanart(c.Request.Context(), item); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "status": string(content.StatusPending)})
}

// GetAllCommunityPosts handles GET /api/v1/admin/community/posts - the full
// moderation queue including pending and rejected rows.
func (h *CommunityHandlers) GetAllCommunityPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": h.communityService.AllCommunityPosts()})
}

// GetAllFanart handles GET /api/v1/admin/community/fanart
func (h *CommunityHandlers) GetAllFanart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fanart": h.communityService.AllFanart()})
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// PutCommunityPostStatus handles PUT /api/v1/admin/community/posts/:id/status
func (h *CommunityHandlers) PutCommunityPostStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.communityService.SetCommunityPostStatus(c.Request.Context(), c.Param("id"), content.Status(req.Status)); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PutFanartStatus handles PUT /api/v1/admin/community/fanart/:id/status
func (h *CommunityHandlers) PutFanartStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.communityService.SetFanartStatus(c.Request.Context(), c.Param("id"), content.Status(req.Status)); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteCommunityPost handles DELETE /api/v1/admin/community/posts/:id
func (h *CommunityHandlers) DeleteCommunityPost(c *gin.Context) {
	if err := h.communityService.RemoveCommunityPost(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteFanart handles DELETE /api/v1/admin/community/fanart/:id
func (h *CommunityHandlers) DeleteFanart(c *gin.Context) {
	if err := h.communityService.RemoveFanart(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
