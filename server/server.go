package server

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HugeFrog24/transcripto/config"
	"github.com/HugeFrog24/transcripto/utils"
)

const requestIDKey = "requestid"

// Origins the browser client is served from during development.
const devOrigins = "http://localhost:3000,http://127.0.0.1:3000"

// Server exposes an UploadProcessor over HTTP.
type Server struct {
	cfg       *config.Config
	processor *utils.UploadProcessor
	metrics   *metrics
	app       *fiber.App
}

func New(cfg *config.Config, processor *utils.UploadProcessor) *Server {
	s := &Server{
		cfg:       cfg,
		processor: processor,
		metrics:   newMetrics(),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Transcripto Backend",
		BodyLimit:             cfg.MaxUploadBytes(),
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(processTime)
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(corsConfig(cfg.AllowAllCORS)))

	app.Get("/health", s.handleHealth)
	app.Post("/upload", s.handleUpload)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	s.app = app
	return s
}

// App returns the underlying fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func corsConfig(allowAll bool) cors.Config {
	if allowAll {
		// fiber refuses credentials together with a wildcard origin.
		return cors.Config{AllowOrigins: "*"}
	}
	return cors.Config{
		AllowOrigins:     devOrigins,
		AllowCredentials: true,
	}
}

// processTime reports handler latency to the browser proxy, which forwards it.
func processTime(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	c.Set("X-Process-Time-Ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
	return err
}

// errorHandler renders every error as {"detail": "..."}. Messages are passed
// through unchanged, including those of unexpected failures.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"detail": err.Error()})
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}
