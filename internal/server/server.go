package server

import (
	"minddock/internal/bootstrap"
	"minddock/internal/config"
	"minddock/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "minddock",
		BodyLimit:             10 * 1024 * 1024, // canvas blobs get large
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type, Location",
	}))

	// traces every HTTP request; a no-op until a tracer provider is installed
	app.Use(otelfiber.Middleware())

	var observers []serverutils.Observer
	if container.Metrics != nil {
		observers = append(observers, container.Metrics)
	}
	app.Use(serverutils.RequestLogger(container.Logger, observers...))
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))
	app.Use(recover.New())

	if container.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(container.Metrics.Handler()))
	}

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("SERVER", "Server is running", map[string]interface{}{
		"url": "http://localhost:" + s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.HealthController.RegisterRoutes(api)
	c.CaptureController.RegisterRoutes(api)

	c.TaskController.RegisterRoutes(api)
	c.NoteController.RegisterRoutes(api)
	c.DailyLogController.RegisterRoutes(api)

	c.WhiteboardFolderController.RegisterRoutes(api)
	c.WhiteboardController.RegisterRoutes(api)

	c.ActivityController.RegisterRoutes(api)
}
