package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"veridian/portfolio-api/internal/config"
	"veridian/portfolio-api/internal/content"
	"veridian/portfolio-api/internal/logger"
	"veridian/portfolio-api/internal/models"
	"veridian/portfolio-api/internal/secrets"
	"veridian/portfolio-api/internal/services"
	"veridian/portfolio-api/internal/validator"
)

const app = "suggest"

type options struct {
	bio        string
	bioFile    string
	resume     string
	titles     []string
	jsonOutput bool
	debug      bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "suggest prints the portfolio projects that fit a bio, resume or the portfolio's own about text",
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.bio, "bio", "", "bio text to match (default is the portfolio's about text)")
	flags.StringVar(&opts.bioFile, "bio-file", "", "read the bio from a text file")
	flags.StringVar(&opts.resume, "resume", "", "read the bio from a PDF resume")
	flags.StringArrayVar(&opts.titles, "title", nil, "candidate project title, repeatable (default is every portfolio project)")
	flags.BoolVarP(&opts.jsonOutput, "json", "j", false, "print the result as json")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")

	rootCmd.MarkFlagsMutuallyExclusive("bio", "bio-file", "resume")
}

func run(ctx context.Context, out io.Writer, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()

	// Logs go to stderr so stdout stays parseable.
	log, err := newCLILogger(opts.debug || cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	v := validator.New()

	portfolio, err := content.Load(cfg.Portfolio.File, v)
	if err != nil {
		return err
	}

	bio, err := resolveBio(opts, portfolio)
	if err != nil {
		return err
	}

	titles := opts.titles
	if len(titles) == 0 {
		titles = portfolio.Titles()
	}

	apiKey, err := secrets.GeminiAPIKey(cfg.Gemini)
	if err != nil {
		return err
	}

	geminiService, err := services.NewGeminiService(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.Temperature, log)
	if err != nil {
		return err
	}

	matcher := services.NewProjectMatcher(
		geminiService,
		v,
		logger.WithCommonFields(log, "gemini", geminiService.Model()),
		cfg.Gemini.MaxLogLength,
	)

	result, err := matcher.Match(ctx, models.MatchRequest{Bio: bio, CandidateTitles: titles})
	if err != nil {
		var serr *services.ServiceError
		if errors.As(err, &serr) {
			log.Debug("suggestion failure", zap.Error(serr.Cause))
		}
		return err
	}

	return printResult(out, result, opts.jsonOutput)
}

func resolveBio(opts options, portfolio *models.Portfolio) (string, error) {
	switch {
	case opts.bioFile != "":
		data, err := os.ReadFile(opts.bioFile)
		if err != nil {
			return "", fmt.Errorf("failed to read bio file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case opts.resume != "":
		return readResume(opts.resume)
	case strings.TrimSpace(opts.bio) != "":
		return opts.bio, nil
	default:
		return portfolio.About, nil
	}
}

func readResume(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open resume: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat resume: %w", err)
	}

	pdfContent, err := services.NewPDFParserService().ExtractText(f, info.Size())
	if err != nil {
		return "", err
	}
	return pdfContent.Text, nil
}

func printResult(out io.Writer, result *models.MatchResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if len(result.MatchedTitles) == 0 {
		_, err := fmt.Fprintln(out, "no relevant projects")
		return err
	}

	for _, title := range result.MatchedTitles {
		if _, err := fmt.Fprintf(out, "- %s\n", title); err != nil {
			return err
		}
	}
	return nil
}

func newCLILogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
