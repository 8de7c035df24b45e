package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldProvider is the log field key for the generation provider name.
	FieldProvider = "ai_provider"
	// FieldModel is the log field key for the model identifier.
	FieldModel = "ai_model"
)

// WithFields attaches fields to logger. A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithCommonFields tags logger with the generation provider and model. Blank
// values are left out.
func WithCommonFields(logger *zap.Logger, provider, model string) *zap.Logger {
	var fields []zap.Field
	if provider = strings.TrimSpace(provider); provider != "" {
		fields = append(fields, zap.String(FieldProvider, provider))
	}
	if model = strings.TrimSpace(model); model != "" {
		fields = append(fields, zap.String(FieldModel, model))
	}
	return WithFields(logger, fields...)
}
