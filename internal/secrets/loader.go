package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"veridian/portfolio-api/internal/config"
)

var ErrGeminiAPIKeyMissing = errors.New("gemini api key is not configured: set GEMINI_API_KEY or GEMINI_API_KEY_FILE")

// GeminiAPIKey returns the key from GEMINI_API_KEY_FILE when set, otherwise from
// GEMINI_API_KEY.
func GeminiAPIKey(cfg config.GeminiConfig) (string, error) {
	if path := strings.TrimSpace(cfg.APIKeyFile); path != "" {
		return readKeyFile(path)
	}

	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return "", ErrGeminiAPIKeyMissing
	}
	return key, nil
}

func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini api key file: %w", err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("gemini api key file %q is empty", path)
	}
	return key, nil
}
