package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lueurxax/inkguard/internal/api"
	apperrors "github.com/lueurxax/inkguard/internal/core/errors"
	"github.com/lueurxax/inkguard/internal/platform/observability"
	"github.com/lueurxax/inkguard/internal/process/account"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the validation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), rootOpts, cmd.ErrOrStderr())
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions, logOut io.Writer) error {
	p, err := loadPipeline(opts, logOut)
	if err != nil {
		return err
	}

	accounts, err := account.New(p.lex, nil)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build account validator", err)
	}

	server := api.NewServer(p.validator, p.scorer, accounts, api.Options{
		RateLimitRPS:       p.cfg.RateLimitRPS,
		RateLimitBurst:     p.cfg.RateLimitBurst,
		BodyMaxBytes:       p.cfg.RequestBodyMaxBytes,
		CORSAllowedOrigins: p.cfg.CORSAllowedOrigins,
		TrustProxy:         p.cfg.TrustProxy,
	}, &p.logger)

	ready := func(context.Context) error {
		if p.lex.Total() == 0 {
			return apperrors.ErrEmptyLexicon
		}

		return nil
	}

	p.logger.Info().
		Str("lexicon_version", p.lex.Version).
		Interface("limits", p.cfg.Limits()).
		Msg("starting inkguard")

	err = observability.NewServer(p.cfg.HTTPPort, server.Router(), ready, &p.logger).
		WithShutdownTimeout(p.cfg.ShutdownTimeout).
		Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return WrapExitError(ExitCommandError, "server stopped", fmt.Errorf("serve: %w", err))
	}

	p.logger.Info().Msg("inkguard stopped")

	return nil
}
