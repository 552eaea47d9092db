package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"promptcalc/internal/domain"
)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <number> <operator> <number>",
		Short: "Ask the model to evaluate an arithmetic expression",
		Long: `Sends the expression to the generateContent endpoint as a natural-language
prompt and prints the numeric answer. Operators: + - * / (word aliases
add/sub/mul/div and x work too, since * globs in most shells).`,
		Example: "  promptcalc calc 6 / 3\n  promptcalc calc 2.5 x 4",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			op, err := domain.ParseOperator(args[1])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[2])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			req := domain.CalculationRequest{Operand1: a, Operand2: b, Op: op}
			result, err := wire.Calculator.Calculate(ctx, req)
			if errors.Is(err, domain.ErrNoCredential) {
				// First run, or the stored credential became unreadable:
				// prompt for a key, then retry once.
				if err := promptForCredential(cmd); err != nil {
					return err
				}
				result, err = wire.Calculator.Calculate(ctx, req)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", result)
			return nil
		},
	}
}

func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, s)
	}
	return v, nil
}
