package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"literinth-be/internal/config"
	"literinth-be/internal/controller"
	"literinth-be/internal/handler"
	"literinth-be/internal/pkg/logger"
	"literinth-be/internal/pkg/mailer"
	"literinth-be/internal/repository/unitofwork"
	"literinth-be/internal/service"
	"literinth-be/internal/websocket"
	pktNats "literinth-be/pkg/nats"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	CategoryController  controller.ICategoryController
	SchematicController controller.ISchematicController
	TagController       controller.ITagController
	AdminController     controller.IAdminController

	// Background services (run from main)
	ConsumerService service.IConsumerService
	FeedService     service.IFeedService

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
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
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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
		rdb = nil
	}

	// WebSocket hub for the admin moderation feed
	feedLogger := logger.NewIsolatedLogger("logs/feed.log")
	wsHub := websocket.NewHub(rdb, feedLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.EngagementTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.EngagementTopic,
		uowFactory,
		natsPub,
	)

	authService := service.NewAuthService(cfg, uowFactory, emailService, publisherService)
	categoryService := service.NewCategoryService(uowFactory, rdb)
	schematicService := service.NewSchematicService(uowFactory, publisherService)
	tagService := service.NewTagService(uowFactory)
	adminService := service.NewAdminService(uowFactory, categoryService, sysLogger)

	feedService := service.NewFeedService(natsSub, wsHub, feedLogger)
	feedHandler := handler.NewFeedHandler(wsHub, feedLogger)

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		CategoryController:  controller.NewCategoryController(categoryService),
		SchematicController: controller.NewSchematicController(schematicService),
		TagController:       controller.NewTagController(tagService),
		AdminController:     controller.NewAdminController(adminService, feedHandler),

		ConsumerService: consumerService,
		FeedService:     feedService,

		WebSocketHub: wsHub,
		Logger:       sysLogger,
	}
}
