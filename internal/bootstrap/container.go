package bootstrap

import (
	"context"
	"fmt"
	"time"

	"minddock/internal/config"
	"minddock/internal/controller"
	"minddock/internal/metrics"
	"minddock/internal/pkg/logger"
	"minddock/internal/repository/unitofwork"
	"minddock/internal/service"
	internalWS "minddock/internal/websocket"

	pktNats "minddock/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController           controller.IHealthController
	CaptureController          controller.ICaptureController
	TaskController             controller.ITaskController
	NoteController             controller.INoteController
	DailyLogController         controller.IDailyLogController
	WhiteboardFolderController controller.IWhiteboardFolderController
	WhiteboardController       controller.IWhiteboardController
	ActivityController         controller.IActivityController

	// Services, exposed for cmd/seed and background work
	TaskService             service.ITaskService
	NoteService             service.INoteService
	DailyLogService         service.IDailyLogService
	WhiteboardFolderService service.IWhiteboardFolderService
	WhiteboardService       service.IWhiteboardService
	CaptureService          service.ICaptureService
	ConsumerService         service.IConsumerService

	Logger  logger.ILogger
	Metrics *metrics.Metrics // nil when disabled
	Hub     *internalWS.Hub  // started by the caller with Hub.Run

	pubSub  *gochannel.GoChannel
	natsPub *pktNats.Publisher
	rdb     *redis.Client
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}

	var m *metrics.Metrics
	if cfg.Telemetry.MetricsEnabled {
		m, err = metrics.NewMetrics()
		if err != nil {
			return nil, err
		}
	}

	// 2. Event bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	var natsPub *pktNats.Publisher
	var forwarder service.EventForwarder
	if cfg.Events.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.Events.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "NATS unavailable, activity stays local", map[string]interface{}{"error": err.Error()})
		} else {
			forwarder = natsPub
		}
	}

	rdb := newRedisClient(cfg.Events.RedisURL, sysLogger)
	hub := internalWS.NewHub(rdb, cfg.Events.LiveChannel, sysLogger)

	activityLogger := sysLogger
	if cfg.App.ActivityLogPath != "" {
		activityLogger = logger.NewIsolatedLogger(cfg.App.ActivityLogPath)
	}

	var activityObserver service.ActivityObserver
	var captureObserver service.CaptureObserver
	if m != nil {
		activityObserver = m
		captureObserver = m
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.ActivityTopic, activityLogger, forwarder, activityObserver, hub)

	taskService := service.NewTaskService(uowFactory, publisherService, sysLogger)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)
	dailyLogService := service.NewDailyLogService(uowFactory, publisherService, sysLogger)
	folderService := service.NewWhiteboardFolderService(uowFactory, publisherService, sysLogger)
	whiteboardService := service.NewWhiteboardService(uowFactory, publisherService, sysLogger)
	captureService := service.NewCaptureService(taskService, noteService, sysLogger, captureObserver)

	// 4. Controllers
	return &Container{
		HealthController:           controller.NewHealthController(sqlDB, sysLogger),
		CaptureController:          controller.NewCaptureController(captureService),
		TaskController:             controller.NewTaskController(taskService),
		NoteController:             controller.NewNoteController(noteService),
		DailyLogController:         controller.NewDailyLogController(dailyLogService),
		WhiteboardFolderController: controller.NewWhiteboardFolderController(folderService),
		WhiteboardController:       controller.NewWhiteboardController(whiteboardService),
		ActivityController:         controller.NewActivityController(hub, sysLogger),

		TaskService:             taskService,
		NoteService:             noteService,
		DailyLogService:         dailyLogService,
		WhiteboardFolderService: folderService,
		WhiteboardService:       whiteboardService,
		CaptureService:          captureService,
		ConsumerService:         consumerService,

		Logger:  sysLogger,
		Metrics: m,
		Hub:     hub,

		pubSub:  pubSub,
		natsPub: natsPub,
		rdb:     rdb,
	}, nil
}

// newRedisClient returns nil when url is empty or Redis does not answer,
// which keeps the live feed local to this instance.
func newRedisClient(url string, log logger.ILogger) *redis.Client {
	if url == "" {
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("BOOTSTRAP", "Failed to parse Redis URL, using it as an address", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("BOOTSTRAP", "Redis unavailable, live feed stays local", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// Close stops the event bus and drops the NATS connection.
func (c *Container) Close() error {
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
	return c.pubSub.Close()
}
