package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/createforge/internal/prompt"
	"github.com/alexisbeaulieu97/createforge/internal/ui"
	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

func notFoundSuggestion(err error, browse string) string {
	var nf *forgeerrors.NotFoundError
	if !errors.As(err, &nf) || len(nf.Known) == 0 {
		return "Run '" + browse + "' to browse the catalog."
	}
	return fmt.Sprintf("Available %ss: %s\nRun '%s' to browse the catalog.", nf.Kind, strings.Join(nf.Known, ", "), browse)
}

// cancelled reports a prompt abort. The command then ends successfully after
// printing a short goodbye.
func cancelled(out *ui.Printer, err error) bool {
	if !errors.Is(err, prompt.ErrCancelled) {
		return false
	}
	out.Outro("Cancelled. Come back when inspiration strikes!")
	return true
}
