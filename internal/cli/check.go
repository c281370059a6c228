package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lueurxax/inkguard/internal/core/domain"
	apperrors "github.com/lueurxax/inkguard/internal/core/errors"
)

// CheckResult is the check command's JSON output.
type CheckResult struct {
	Flow       domain.Flow          `json:"flow"`
	CanPublish bool                 `json:"can_publish"`
	Validation domain.InkValidation `json:"validation"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var flowName string

	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "Validate ink text",
		Long: `Validate ink text read from a file or stdin.

Exits with status 1 when the text may not be published.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, flowName, cmd, args)
		},
	}

	cmd.Flags().StringVar(&flowName, "flow", string(domain.FlowCreate), "editor flow (create|edit)")

	return cmd
}

func runCheck(opts *RootOptions, flowName string, cmd *cobra.Command, args []string) error {
	flow, ok := domain.ParseFlow(flowName)
	if !ok {
		return WrapExitError(ExitCommandError, "invalid --flow", fmt.Errorf("%w: %q", apperrors.ErrUnknownFlow, flowName))
	}

	p, err := loadPipeline(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	verdict := p.validator.ValidateFlow(text, flow)
	result := CheckResult{
		Flow:       flow,
		CanPublish: p.validator.Policy(flow).CanPublish(text, verdict),
		Validation: domain.InkValidationFromVerdict(verdict),
	}

	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		if err := json.NewEncoder(out).Encode(result); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
	} else {
		writeCheckText(out, result, verdict)
	}

	if !result.CanPublish {
		return NewExitError(ExitFailure, "publishing blocked")
	}

	return nil
}

func writeCheckText(w io.Writer, r CheckResult, v domain.Verdict) {
	status := "ok"

	switch {
	case !r.CanPublish:
		status = "blocked"
	case v.NeedsConfirmation():
		status = "needs confirmation"
	}

	fmt.Fprintf(w, "flow: %s\nstatus: %s\n", r.Flow, status)
	writeList(w, "critical issues", r.Validation.CriticalIssues)
	writeList(w, "errors", r.Validation.Errors)
	writeList(w, "warnings", r.Validation.Warnings)

	if len(r.Validation.Hashtags) > 0 {
		fmt.Fprintf(w, "hashtags: %s\n", strings.Join(r.Validation.Hashtags, ", "))
	}
}
