// Package container provides dependency injection for all singleton services
package container

import (
	"log/slog"

	"github.com/sauntrix/sauntrix-go/internal/application/services"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/caching/stores"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/messaging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
	"github.com/sauntrix/sauntrix-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services (stateless singletons)
	LoaderService    *services.LoaderService
	SyncService      *services.SyncService
	ContentService   *services.ContentService
	CommunityService *services.CommunityService
	SiteService      *services.SiteService
	AuthService      *services.AuthService

	// Infrastructure
	Logger       *logging.ChanneledLogger
	Store        remotestore.Client
	ContentStore *stores.ContentStore
	Broadcaster  *messaging.SSEBroadcaster
	Notifier     *messaging.Notifier
}

// NewContainer creates and wires all singleton services
func NewContainer() *Container {
	loggerConfig := logging.DefaultLoggerConfig()
	if config.LogVerbose {
		loggerConfig.DefaultLevel = slog.LevelDebug
	}
	logger := logging.NewChanneledLogger(loggerConfig)

	store := remotestore.NewStoreClient(config.StoreURL, config.StoreAnonKey, config.StoreTimeout, logger)
	contentStore := stores.NewContentStore()
	broadcaster := messaging.NewSSEBroadcaster(logger)
	notifier := messaging.NewNotifier(broadcaster)

	return &Container{
		LoaderService:    services.NewLoaderService(store, contentStore, logger),
		SyncService:      services.NewSyncService(store, contentStore, broadcaster, logger),
		ContentService:   services.NewContentService(store, contentStore, notifier, logger),
		CommunityService: services.NewCommunityService(store, contentStore, notifier, logger),
		SiteService:      services.NewSiteService(store, contentStore, notifier, logger),
		AuthService:      services.NewAuthService(logger),

		Logger:       logger,
		Store:        store,
		ContentStore: contentStore,
		Broadcaster:  broadcaster,
		Notifier:     notifier,
	}
}
