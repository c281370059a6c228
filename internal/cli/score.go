package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lueurxax/inkguard/internal/core/domain"
	"github.com/lueurxax/inkguard/internal/process/scoring"
)

// ScoreResult is the score command's JSON output.
type ScoreResult struct {
	XP          int                   `json:"xp"`
	Breakdown   domain.ScoreBreakdown `json:"breakdown"`
	ReadingTime domain.ReadingTime    `json:"reading_time"`
}

// NewScoreCommand creates the score command.
func NewScoreCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score [file|-]",
		Short: "Estimate XP and reading time for ink text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(rootOpts, cmd, args)
		},
	}
}

func runScore(opts *RootOptions, cmd *cobra.Command, args []string) error {
	p, err := loadPipeline(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	breakdown := p.scorer.Breakdown(text, p.validator.Validate(text))
	result := ScoreResult{
		XP:          breakdown.Total,
		Breakdown:   breakdown,
		ReadingTime: scoring.ReadingTime(text),
	}

	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		if err := json.NewEncoder(out).Encode(result); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}

		return nil
	}

	writeScoreText(out, result)

	return nil
}

func writeScoreText(w io.Writer, r ScoreResult) {
	c := r.Breakdown.Components

	fmt.Fprintf(w, "xp: %d / %d\n", r.XP, domain.MaxXP)
	fmt.Fprintf(w, "reading time: %s (%d words)\n", r.ReadingTime.Text, r.ReadingTime.Words)
	fmt.Fprintf(w, "  words       +%d\n", c.WordBonus)
	fmt.Fprintf(w, "  characters  +%d\n", c.CharBonus)
	fmt.Fprintf(w, "  sentences   +%d\n", c.SentenceBonus)
	fmt.Fprintf(w, "  emotion     +%d\n", c.EmotionalBonus)
	fmt.Fprintf(w, "  questions   +%d\n", c.QuestionBonus)
	fmt.Fprintf(w, "  punctuation +%d\n", c.PunctuationVarietyBonus)
	fmt.Fprintf(w, "  warnings    -%d\n", c.WarningPenalty)
	fmt.Fprintf(w, "  errors      -%d\n", c.ErrorPenalty)
}
