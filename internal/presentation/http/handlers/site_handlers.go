package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sauntrix/sauntrix-go/internal/application/services"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
)

// SiteHandlers serves the keyed site surfaces: assets, page content, and the
// footer and settings singletons.
type SiteHandlers struct {
	siteService *services.SiteService
	logger      *logging.ChanneledLogger
}

// NewSiteHandlers creates site handlers with injected dependencies
func NewSiteHandlers(siteService *services.SiteService, logger *logging.ChanneledLogger) *SiteHandlers {
	return &SiteHandlers{siteService: siteService, logger: logger}
}

// GetSiteAssets handles GET /api/v1/site/assets
func (h *SiteHandlers) GetSiteAssets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assets": h.siteService.SiteAssets()})
}

// GetAsset handles GET /api/v1/site/assets/:key
func (h *SiteHandlers) GetAsset(c *gin.Context) {
	asset, ok := h.siteService.Asset(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// GetPageContent handles GET /api/v1/site/pages/:page
func (h *SiteHandlers) GetPageContent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": h.siteService.PageSections(c.Param("page"))})
}

// GetPageSection handles GET /api/v1/site/pages/:page/:section
func (h *SiteHandlers) GetPageSection(c *gin.Context) {
	section, ok := h.siteService.PageSection(c.Param("page"), c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": section})
}

// GetFooter handles GET /api/v1/site/footer
func (h *SiteHandlers) GetFooter(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"footer": h.siteService.Footer()})
}

// GetSettings handles GET /api/v1/site/settings
func (h *SiteHandlers) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.siteService.Settings()})
}

type assetRequest struct {
	AssetType string         `json:"asset_type" binding:"required"`
	URL       string         `json:"url" binding:"required,url"`
	AltText   string         `json:"alt_text"`
	Metadata  map[string]any `json:"metadata"`
}

// PutAsset handles PUT /api/v1/admin/site/assets/:key - create or replace
func (h *SiteHandlers) PutAsset(c *gin.Context) {
	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.siteService.UpdateAsset(c.Request.Context(), c.Param("key"), req.AssetType, req.URL, req.AltText, req.Metadata); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteAsset handles DELETE /api/v1/admin/site/assets/:key
func (h *SiteHandlers) DeleteAsset(c *gin.Context) {
	if err := h.siteService.RemoveAsset(c.Request.Context(), c.Param("key")); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type pageContentRequest struct {
	Content map[string]any `json:"content" binding:"required"`
}

// PutPageSection handles PUT /api/v1/admin/site/pages/:page/:section
func (h *SiteHandlers) PutPageSection(c *gin.Context) {
	var req pageContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.siteService.UpdatePageContent(c.Request.Context(), c.Param("page"), c.Param("section"), req.Content); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PutFooter handles PUT /api/v1/admin/site/footer - partial merge update
func (h *SiteHandlers) PutFooter(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.siteService.UpdateFooterContent(c.Request.Context(), patch); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PutSettings handles PUT /api/v1/admin/site/settings - partial merge update
func (h *SiteHandlers) PutSettings(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.siteService.UpdateSiteSettings(c.Request.Context(), patch); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
