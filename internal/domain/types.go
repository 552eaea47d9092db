package domain

import (
	"fmt"
	"strings"
	"time"
)

// Operator selects one of the four arithmetic operations. Its value is the
// symbol embedded verbatim in the prompt sent upstream.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

func (o Operator) Symbol() string { return string(o) }

// ParseOperator maps user input to an Operator. Word aliases exist because
// `*` globs in most shells.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(s) {
	case "+", "add", "plus":
		return OpAdd, nil
	case "-", "sub", "minus":
		return OpSubtract, nil
	case "*", "x", "mul", "times":
		return OpMultiply, nil
	case "/", "div":
		return OpDivide, nil
	}
	return "", fmt.Errorf("%w: unknown operator %q", ErrInvalidInput, s)
}

// CalculationRequest is one arithmetic question for the remote model.
// Transient, never persisted.
type CalculationRequest struct {
	Operand1 float64
	Operand2 float64
	Op       Operator
}

// HistoryEntry is one successfully completed calculation.
type HistoryEntry struct {
	ID       int64
	Operand1 float64
	Op       Operator
	Operand2 float64
	Result   float64
	At       time.Time
}

// String renders the entry the way the history listing shows it.
func (e HistoryEntry) String() string {
	return fmt.Sprintf("%g %s %g = %.2f", e.Operand1, e.Op.Symbol(), e.Operand2, e.Result)
}
