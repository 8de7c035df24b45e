package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"veridian/portfolio-api/internal/logger"
	"veridian/portfolio-api/internal/models"
	"veridian/portfolio-api/internal/validator"
)

const MsgInvalidContactData = "Invalid data."

type ContactService interface {
	// Submit validates a contact form and records it in the log. Failures are
	// reported in the result, never as an error.
	Submit(ctx context.Context, form models.ContactForm) models.ContactResult
}

type contactService struct {
	validator *validator.Validator
	logger    *zap.Logger
	maxLogLen int
}

func NewContactService(v *validator.Validator, log *zap.Logger, maxLogLength int) ContactService {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &contactService{
		validator: v,
		logger:    logger.WithFields(log),
		maxLogLen: maxLogLength,
	}
}

// Submit implements ContactService.
func (s *contactService) Submit(_ context.Context, form models.ContactForm) models.ContactResult {
	if err := s.validator.Validate(&form); err != nil {
		result := models.ContactResult{Success: false, Error: MsgInvalidContactData}

		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			result.Details = verr.Errors
		}
		s.logger.Debug("rejected contact form submission", zap.Error(err))
		return result
	}

	s.logger.Info("new contact form submission",
		zap.String("submission_id", uuid.NewString()),
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.Int("message_length", utf8.RuneCountInString(form.Message)),
		zap.String("message_preview", logger.TruncateForLog(form.Message, s.maxLogLen)),
	)

	return models.ContactResult{Success: true}
}
