package api

import (
	"context"

	"github.com/CristiGvl/picoIRQ/internal/interrupts"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Interrupts endpoint, ?filter= is matched against the raw /proc/interrupts lines
func (s *Server) getInterrupts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	seq, err := s.interruptsReader.Snapshot(ctx, c.Query("filter"))
	if err != nil {
		return errorResponse(c, err)
	}

	rows, err := interrupts.Collect(seq)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(rows)
}

// Single interrupt endpoint
func (s *Server) getInterrupt(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	row, err := s.interruptsReader.Lookup(ctx, c.Params("irq"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(row)
}

// Kernel statistics endpoint
func (s *Server) getStat(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	info, err := s.statReader.GetInfo(ctx)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(info)
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Path()).Error("Request failed")
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, interrupts.ErrInvalidFilter):
		return fiber.StatusBadRequest
	case errors.Is(err, interrupts.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, interrupts.ErrSourceUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
