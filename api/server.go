package api

import (
	"time"

	"github.com/CristiGvl/picoIRQ/internal/config"
	"github.com/CristiGvl/picoIRQ/internal/interrupts"
	"github.com/CristiGvl/picoIRQ/internal/platform"
	"github.com/CristiGvl/picoIRQ/internal/stat"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// requestTimeout bounds every reader call made by a handler.
const requestTimeout = 10 * time.Second

// Server represents the API server
type Server struct {
	app              *fiber.App
	interruptsReader interrupts.Reader
	statReader       stat.Reader
}

// NewServer creates a new API server reading from the configured procfs
func NewServer(cfg *config.Config) (*Server, error) {
	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}

	return newServer(interrupts.NewReader(cfg.ProcPath), stat.NewReader(cfg.ProcPath)), nil
}

func newServer(interruptsReader interrupts.Reader, statReader stat.Reader) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "picoIRQ",
		AppName:               "picoIRQ v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:              app,
		interruptsReader: interruptsReader,
		statReader:       statReader,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Interrupt statistics endpoints
	api.Get("/interrupts", s.getInterrupts)
	api.Get("/interrupts/:irq", s.getInterrupt)
	api.Get("/stat", s.getStat)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"timestamp": time.Now().Unix(),
	})
}
