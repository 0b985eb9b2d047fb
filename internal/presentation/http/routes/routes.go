// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sauntrix/sauntrix-go/internal/application/container"
	"github.com/sauntrix/sauntrix-go/internal/presentation/http/handlers"
	"github.com/sauntrix/sauntrix-go/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	handlers.RegisterValidations()

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger)
	contentHandlers := handlers.NewContentHandlers(container.ContentService, container.Logger)
	communityHandlers := handlers.NewCommunityHandlers(container.CommunityService, container.Logger)
	siteHandlers := handlers.NewSiteHandlers(container.SiteService, container.Logger)
	eventsHandlers := handlers.NewEventsHandlers(container.Broadcaster, container.Logger)
	healthHandlers := handlers.NewHealthHandlers(container.Store, container.ContentStore, container.Broadcaster)

	api := r.Group("/api/v1")
	{
		api.GET("/health", healthHandlers.GetHealth)
		api.GET("/events", eventsHandlers.GetEvents)

		// Authentication
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandlers.PostLogin)
			auth.POST("/logout", authHandlers.PostLogout)
			auth.GET("/status", authHandlers.GetAuthStatus)
		}

		// Public catalog reads
		api.GET("/discography", contentHandlers.GetDiscography)
		api.GET("/videos", contentHandlers.GetVideos)

		// Public community surface: approved rows plus open submissions
		community := api.Group("/community")
		{
			community.GET("/posts", communityHandlers.GetCommunityPosts)
			community.POST("/posts", communityHandlers.PostCommunityPost)
			community.GET("/fanart", communityHandlers.GetFanart)
			community.POST("/fanart", communityHandlers.PostFanart)
		}

		// Public site surfaces
		site := api.Group("/site")
		{
			site.GET("/assets", siteHandlers.GetSiteAssets)
			site.GET("/assets/:key", siteHandlers.GetAsset)
			site.GET("/pages/:page", siteHandlers.GetPageContent)
			site.GET("/pages/:page/:section", siteHandlers.GetPageSection)
			site.GET("/footer", siteHandlers.GetFooter)
			site.GET("/settings", siteHandlers.GetSettings)
		}

		// Admin console
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(container.AuthService))
		{
			admin.POST("/discography", contentHandlers.PostDiscography)
			admin.PUT("/discography/:id", contentHandlers.PutDiscography)
			admin.DELETE("/discography/:id", contentHandlers.DeleteDiscography)

			admin.POST("/videos", contentHandlers.PostVideo)
			admin.PUT("/videos/:id", contentHandlers.PutVideo)
			admin.DELETE("/videos/:id", contentHandlers.DeleteVideo)

			admin.GET("/community/posts", communityHandlers.GetAllCommunityPosts)
			admin.PUT("/community/posts/:id/status", communityHandlers.PutCommunityPostStatus)
			admin.DELETE("/community/posts/:id", communityHandlers.DeleteCommunityPost)

			admin.GET("/community/fanart", communityHandlers.GetAllFanart)
			admin.PUT("/community/fanart/:id/status", communityHandlers.PutFanartStatus)
			admin.DELETE("/community/fanart/:id", communityHandlers.DeleteFanart)

			admin.PUT("/site/assets/:key", siteHandlers.PutAsset)
			admin.DELETE("/site/assets/:key", siteHandlers.DeleteAsset)
			admin.PUT("/site/pages/:page/:section", siteHandlers.PutPageSection)
			admin.PUT("/site/footer", siteHandlers.PutFooter)
			admin.PUT("/site/settings", siteHandlers.PutSettings)
		}
	}

	return r
}
