// Package notifier evaluates a condition once per invocation and, when it
// holds, renders a message and sends it through an outbound mail transport.
package notifier

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/autokit/internal/fileutils"
)

// EvaluateCondition evaluates a condition expression. Supported forms:
//
//	always              - condition holds
//	never               - condition never holds
//	file-exists:PATH    - holds when PATH exists as a regular file
//	file-missing:PATH   - holds when PATH does not exist
//	env:NAME            - holds when NAME is set and non-empty
//
// Unknown expressions are an error.
func EvaluateCondition(expr string) (bool, error) {
	expr = strings.TrimSpace(expr)

	switch expr {
	case "always":
		return true, nil
	case "never":
		return false, nil
	}

	kind, arg, found := strings.Cut(expr, ":")
	if !found || strings.TrimSpace(arg) == "" {
		return false, fmt.Errorf("invalid condition expression: %q", expr)
	}
	arg = strings.TrimSpace(arg)

	switch kind {
	case "file-exists":
		return fileutils.FileExists(arg), nil
	case "file-missing":
		return !fileutils.PathExists(arg), nil
	case "env":
		return os.Getenv(arg) != "", nil
	default:
		return false, fmt.Errorf("unknown condition type: %q", kind)
	}
}
