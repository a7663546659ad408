// FILE: internal/bootstrap/container.go
package bootstrap

import (
	"context"
	"log"

	"ai-stylist-be/internal/config"
	"ai-stylist-be/internal/controller"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/internal/repository/unitofwork"
	"ai-stylist-be/internal/service"
	"ai-stylist-be/pkg/analyzer"
	"ai-stylist-be/pkg/catalog"

	pktNats "ai-stylist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const telemetryTopic = "styling.telemetry"

type Container struct {
	// Controllers
	StylingController  controller.IStylingController
	LibraryController  controller.ILibraryController
	ScanController     controller.IScanController
	WardrobeController controller.IWardrobeController
	PlanController     controller.IPlanController

	// Background Services (Exposed for main.go to run)
	ConsumerService IConsumerRunner

	// Shared infrastructure surfaced for graceful shutdown.
	Logger logger.ILogger
}

// IConsumerRunner is what main.go needs from the telemetry consumer.
type IConsumerRunner interface {
	Consume(ctx context.Context) error
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Content library, fallback-seeded until the remote fetch lands.
	source := catalog.NewSource(catalog.NewHTTPFetcher(cfg.Catalog.BaseURL), sysLogger)
	if cfg.Catalog.PrewarmOnBoot {
		source.Prewarm(context.Background())
	}

	analyzerProvider := analyzer.NewHTTPProvider(cfg.Analyzer.BaseURL, cfg.Analyzer.APIKey)

	// 3. Services
	telemetryLogger := logger.NewIsolatedLogger("logs/telemetry.log")
	telemetryService := service.NewTelemetryService(pubSub, telemetryTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, telemetryTopic, natsPub, telemetryLogger)

	creditService := service.NewCreditService(uowFactory, rdb, sysLogger)
	planService := service.NewPlanService(uowFactory, sysLogger)
	stylingService := service.NewStylingService(uowFactory, source, telemetryService, sysLogger)
	libraryService := service.NewLibraryService(source, telemetryService, sysLogger)
	scanService := service.NewScanService(creditService, planService, analyzerProvider, sysLogger)
	wardrobeService := service.NewWardrobeService(uowFactory, creditService, planService, sysLogger)

	// 4. Controllers
	return &Container{
		StylingController:  controller.NewStylingController(stylingService),
		LibraryController:  controller.NewLibraryController(libraryService),
		ScanController:     controller.NewScanController(scanService),
		WardrobeController: controller.NewWardrobeController(wardrobeService),
		PlanController:     controller.NewPlanController(planService),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}
