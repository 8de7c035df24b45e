package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"veridian/portfolio-api/internal/models"
	"veridian/portfolio-api/internal/validator"
)

func TestContactSubmitRejectsInvalidForm(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	svc := NewContactService(validator.New(), zap.New(core), 0)

	result := svc.Submit(context.Background(), models.ContactForm{
		Name:    "Al",
		Email:   "bad-email",
		Message: "short",
	})

	assert.False(t, result.Success)
	assert.Equal(t, MsgInvalidContactData, result.Error)
	assert.Contains(t, result.Details, "email")
	assert.Contains(t, result.Details, "message")
	assert.NotContains(t, result.Details, "name")
	assert.Zero(t, observed.Len())
}

func TestContactSubmitRequiresName(t *testing.T) {
	svc := NewContactService(validator.New(), zap.NewNop(), 0)

	result := svc.Submit(context.Background(), models.ContactForm{
		Email:   "a@b.com",
		Message: "Hello, I would like to talk.",
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Details, "name")
}

func TestContactSubmitAcceptsValidForm(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	svc := NewContactService(validator.New(), zap.New(core), 10)

	result := svc.Submit(context.Background(), models.ContactForm{
		Name:    "Alice",
		Email:   "a@b.com",
		Message: "Hello, I would like to talk.",
	})

	assert.Equal(t, models.ContactResult{Success: true}, result)

	entries := observed.FilterMessage("new contact form submission").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "Alice", ctx["name"])
	assert.Equal(t, "a@b.com", ctx["email"])
	assert.Equal(t, "Hello, I w...", ctx["message_preview"])
	_, err := uuid.Parse(ctx["submission_id"].(string))
	assert.NoError(t, err)
}
