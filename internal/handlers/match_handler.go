package handlers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"veridian/portfolio-api/internal/models"
	"veridian/portfolio-api/internal/services"
	"veridian/portfolio-api/internal/validator"
)

type MatchHandler struct {
	matcher       services.ProjectMatcher
	pdfParser     services.PDFParserService
	portfolio     *models.Portfolio
	maxResumeSize int64
	logger        *zap.Logger
}

func NewMatchHandler(
	matcher services.ProjectMatcher,
	pdfParser services.PDFParserService,
	portfolio *models.Portfolio,
	maxResumeSize int64,
	logger *zap.Logger,
) *MatchHandler {
	return &MatchHandler{
		matcher:       matcher,
		pdfParser:     pdfParser,
		portfolio:     portfolio,
		maxResumeSize: maxResumeSize,
		logger:        logger,
	}
}

// HandleMatch handles POST /projects/match
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	result, err := h.matcher.MatchJSON(c.UserContext(), c.Body())
	if err != nil {
		return writeMatchError(c, err)
	}

	return c.JSON(result)
}

// HandleSuggest handles POST /projects/suggest. It matches the portfolio's own about
// text against every project and returns the projects with matches highlighted.
func (h *MatchHandler) HandleSuggest(c *fiber.Ctx) error {
	return h.suggest(c, h.portfolio.About)
}

// HandleSuggestFromResume handles POST /projects/suggest/resume. The bio is the text
// of the uploaded "resume" PDF.
func (h *MatchHandler) HandleSuggestFromResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "resume file is required",
		})
	}

	if file.Size > h.maxResumeSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxResumeSize),
		})
	}

	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("invalid file extension: %s", ext),
		})
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to open uploaded file")
	}
	defer src.Close()

	content, err := h.pdfParser.ExtractText(src, file.Size)
	if err != nil {
		h.logger.Info("unreadable resume upload", zap.String("filename", file.Filename), zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
			Error: "could not read text from the resume",
		})
	}

	return h.suggest(c, content.Text)
}

func (h *MatchHandler) suggest(c *fiber.Ctx, bio string) error {
	result, err := h.matcher.Match(c.UserContext(), models.MatchRequest{
		Bio:             bio,
		CandidateTitles: h.portfolio.Titles(),
	})
	if err != nil {
		return writeMatchError(c, err)
	}

	return c.JSON(models.SuggestResponse{
		MatchedTitles: result.MatchedTitles,
		Projects:      h.portfolio.Highlight(result.MatchedTitles),
	})
}

// writeMatchError renders matcher failures as {"error": ...}. ServiceError is checked
// first so output problems never read as bad input.
func writeMatchError(c *fiber.Ctx, err error) error {
	var serr *services.ServiceError
	if errors.As(err, &serr) {
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{
			Error: serr.Error(),
		})
	}

	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "Invalid request payload",
			Details: verr.Errors,
		})
	}

	return err
}
