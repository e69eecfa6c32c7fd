package server

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/HugeFrog24/transcripto/utils"
)

type healthResponse struct {
	Status       string `json:"status"`
	Mock         bool   `json:"mock"`
	AllowAllCORS bool   `json:"allow_all_cors"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(healthResponse{
		Status:       "ok",
		Mock:         s.processor.UseMock,
		AllowAllCORS: s.cfg.AllowAllCORS,
	})
}

func (s *Server) handleUpload(c *fiber.Ctx) error {
	start := time.Now()
	outcome := outcomeError
	defer func() {
		s.metrics.observeUpload(outcome, time.Since(start))
	}()

	header, err := c.FormFile("file")
	if err != nil {
		outcome = outcomeMissingFile
		return fiber.NewError(fiber.StatusBadRequest, utils.ErrMissingFile.Error())
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	result, err := s.processor.ProcessUpload(c.UserContext(), header.Filename, file)
	if err != nil {
		outcome = outcomeFor(err)
		log.Printf("[%s] Upload of '%s' failed: %v", requestID(c), header.Filename, err)
		if errors.Is(err, utils.ErrUnsupportedFormat) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if result.SummaryError != nil {
		s.metrics.summaryFailures.Inc()
	}
	outcome = outcomeOK
	log.Printf("[%s] Transcribed '%s' (%d bytes, %d transcript chars)", requestID(c), header.Filename, header.Size, len(result.Transcript))
	return c.JSON(result)
}
