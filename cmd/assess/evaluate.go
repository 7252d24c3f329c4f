package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/dto/responses"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// Flags go before the instrument. Everything after it is a response, so
// negative values reach the evaluator instead of being read as flags.
const evaluateExample = `  assess evaluate phq-9 0 1 2 0 1 0 0 1 0
  assess evaluate --json gad-7 3 3 2 1 0 1 2`

type evaluateFlags struct {
	jsonOutput bool
}

func newEvaluateCmd(root *rootFlags) *cobra.Command {
	f := &evaluateFlags{}

	cmd := &cobra.Command{
		Use:     "evaluate [flags] <instrument> <response>...",
		Short:   "Score one response per question, each between 0 and 3",
		Example: evaluateExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instrument, err := models.ParseInstrument(args[0])
			if err != nil {
				return err
			}
			answers, err := parseResponses(args[1:])
			if err != nil {
				return err
			}

			usecase, log, err := newAssessmentUsecase(root)
			if err != nil {
				return err
			}
			defer log.Sync()

			evaluation, err := usecase.Evaluate(context.Background(), instrument, answers)
			if err != nil {
				return err
			}

			if f.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(evaluation)
			}
			renderEvaluation(cmd.OutOrStdout(), evaluation)
			return nil
		},
	}

	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Print the evaluation as JSON")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// parseResponses only checks that every argument is an integer. Range and
// length are judged by the evaluator.
func parseResponses(args []string) ([]int, error) {
	answers := make([]int, len(args))
	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("response %d: %q is not an integer", i+1, arg)
		}
		answers[i] = value
	}
	return answers, nil
}

func renderEvaluation(w io.Writer, evaluation *responses.Evaluation) {
	fmt.Fprintf(w, "%s\n", color.New(color.Bold).Sprint(evaluation.AssessmentName))
	fmt.Fprintf(w, "Total score: %d/%d\n", evaluation.TotalScore, evaluation.MaxScore)
	fmt.Fprintf(w, "Severity:    %s\n", bandColor(models.SeverityBand(evaluation.SeverityBand)).Sprint(evaluation.SeverityBand))
	fmt.Fprintf(w, "Guide:       %s\n", evaluation.InterpretationGuide)

	if len(evaluation.CrisisHelplines) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "If you are in distress, please reach out:")
		for _, helpline := range evaluation.CrisisHelplines {
			fmt.Fprintf(w, "  %s: %s (%s)\n", helpline.Name, color.CyanString(helpline.Number), helpline.Hours)
		}
	}
}

func bandColor(band models.SeverityBand) *color.Color {
	switch band {
	case models.SeveritySevere:
		return color.New(color.FgRed, color.Bold)
	case models.SeverityModerate:
		return color.New(color.FgYellow, color.Bold)
	case models.SeverityMild:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
