package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"veridian/portfolio-api/internal/logger"
	"veridian/portfolio-api/internal/models"
	"veridian/portfolio-api/internal/validator"
)

// Generator produces a JSON document for prompt that conforms to schema.
type Generator interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error)
}

type ProjectMatcher interface {
	// Match suggests which candidate titles fit the bio. It makes exactly one
	// generation call and returns *validator.ValidationError or *ServiceError on failure.
	Match(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error)
	// MatchJSON is Match for an undecoded {"bio", "candidateTitles"} document.
	MatchJSON(ctx context.Context, payload []byte) (*models.MatchResult, error)
}

// Title elements are pointers so that a JSON null is told apart from "".
type matchRequestShape struct {
	Bio             *string    `json:"bio" validate:"required"`
	CandidateTitles *[]*string `json:"candidateTitles" validate:"required,dive,required"`
}

type matchOutputShape struct {
	MatchedTitles *[]*string `json:"matchedTitles" validate:"required,dive,required"`
}

type projectMatcher struct {
	generator Generator
	validator *validator.Validator
	logger    *zap.Logger
	maxLogLen int
}

const defaultMaxLogLength = 200

func NewProjectMatcher(generator Generator, v *validator.Validator, log *zap.Logger, maxLogLength int) ProjectMatcher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &projectMatcher{
		generator: generator,
		validator: v,
		logger:    logger.WithFields(log),
		maxLogLen: maxLogLength,
	}
}

// Match implements ProjectMatcher. A nil CandidateTitles is treated as empty.
func (m *projectMatcher) Match(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error) {
	if req.CandidateTitles == nil {
		req.CandidateTitles = []string{}
	}

	titles := make([]*string, len(req.CandidateTitles))
	for i := range req.CandidateTitles {
		titles[i] = &req.CandidateTitles[i]
	}

	shape := matchRequestShape{Bio: &req.Bio, CandidateTitles: &titles}
	if err := m.validator.Validate(&shape); err != nil {
		return nil, err
	}

	return m.match(ctx, req)
}

// MatchJSON implements ProjectMatcher.
func (m *projectMatcher) MatchJSON(ctx context.Context, payload []byte) (*models.MatchResult, error) {
	var shape matchRequestShape
	if err := m.validator.Decode(payload, &shape); err != nil {
		m.logger.Debug("rejected match request", zap.Error(err))
		return nil, err
	}

	return m.match(ctx, models.MatchRequest{
		Bio:             *shape.Bio,
		CandidateTitles: derefTitles(*shape.CandidateTitles),
	})
}

func (m *projectMatcher) match(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error) {
	prompt, err := BuildProjectMatchPrompt(req.Bio, req.CandidateTitles)
	if err != nil {
		return nil, m.fail(err)
	}

	m.logger.Debug("project match request",
		zap.Int("candidates", len(req.CandidateTitles)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, m.maxLogLen)),
	)

	raw, err := m.generator.Generate(ctx, prompt, ProjectMatchOutputSchema())
	if err != nil {
		return nil, m.fail(fmt.Errorf("failed to generate suggestions: %w", err))
	}

	m.logger.Debug("project match response",
		zap.Int("response_length", utf8.RuneCount(raw)),
		zap.String("response_preview", logger.TruncateForLog(string(raw), m.maxLogLen)),
	)

	var out matchOutputShape
	if err := m.validator.Decode([]byte(extractJSON(string(raw))), &out); err != nil {
		return nil, m.fail(fmt.Errorf("failed to decode suggestions: %w", err))
	}

	matched, dropped := keepCandidates(derefTitles(*out.MatchedTitles), req.CandidateTitles)
	if len(dropped) > 0 {
		m.logger.Warn("dropped suggestions outside the candidate list", zap.Strings("titles", dropped))
	}

	return &models.MatchResult{MatchedTitles: matched}, nil
}

func (m *projectMatcher) fail(err error) error {
	m.logger.Warn("project match failed", zap.Error(err))
	return &ServiceError{Cause: err}
}

func derefTitles(titles []*string) []string {
	out := make([]string, len(titles))
	for i, title := range titles {
		out[i] = *title
	}
	return out
}

// keepCandidates returns the titles that appear in candidates, in the order given and
// without repeats, along with the rejected ones.
func keepCandidates(titles, candidates []string) (kept, dropped []string) {
	allowed := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		allowed[c] = struct{}{}
	}

	kept = make([]string, 0, len(titles))
	seen := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		if _, ok := allowed[title]; !ok {
			dropped = append(dropped, title)
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		kept = append(kept, title)
	}
	return kept, dropped
}
