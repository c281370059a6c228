package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lueurxax/inkguard/internal/platform/config"
	"github.com/lueurxax/inkguard/internal/platform/observability"
	"github.com/lueurxax/inkguard/internal/process/lexicon"
	"github.com/lueurxax/inkguard/internal/process/moderation"
	"github.com/lueurxax/inkguard/internal/process/scoring"
)

// pipeline is everything a command needs, built from config and flags.
type pipeline struct {
	cfg       *config.Config
	logger    zerolog.Logger
	lex       *lexicon.Lexicon
	validator *moderation.Validator
	scorer    *scoring.Scorer
}

// loadPipeline builds the pipeline. Logs go to logOut.
func loadPipeline(opts *RootOptions, logOut io.Writer) (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	if opts.Lexicon != "" {
		cfg.LexiconPath = opts.Lexicon
	}

	logger := observability.NewLoggerTo(logOut, cfg.AppEnv, cfg.LogLevel)

	lex, err := lexicon.LoadFile(cfg.LexiconPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load lexicon", err)
	}

	logger.Debug().Str("version", lex.Version).Int("terms", lex.Total()).Msg("lexicon loaded")

	validator, err := moderation.New(lex, cfg.Limits(), &logger)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to build validator", err)
	}

	return &pipeline{
		cfg:       cfg,
		logger:    logger,
		lex:       lex,
		validator: validator,
		scorer:    scoring.New(lex),
	}, nil
}

// readInput reads the text to check from a file, or stdin for "-" or no argument.
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", WrapExitError(ExitCommandError, "failed to read stdin", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", WrapExitError(ExitCommandError, fmt.Sprintf("failed to read %s", args[0]), err)
	}

	return string(data), nil
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(w, "%s:\n", title)

	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", strings.TrimSpace(item))
	}
}
