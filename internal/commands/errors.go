package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by wrapped command errors so callers can branch on the
// failure mode without matching message strings.
const (
	codeInvalidMessage = "BUILDLOG_COMMAND_INVALID"
	codeCanceled       = "BUILDLOG_COMMAND_CANCELED"
	codeDeadline       = "BUILDLOG_COMMAND_DEADLINE"
	codeContextFailed  = "BUILDLOG_COMMAND_CONTEXT"
	codeExecuteFailed  = "BUILDLOG_COMMAND_FAILED"
)

// tagError attaches a category and text code unless the error already carries
// go-errors metadata from a layer below.
func tagError(err error, category goerrors.Category, code, msg string) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, msg).WithTextCode(code)
}

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return tagError(err, goerrors.CategoryValidation, codeInvalidMessage, "command message rejected")
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return tagError(err, goerrors.CategoryCommand, codeCanceled, "command canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return tagError(err, goerrors.CategoryCommand, codeDeadline, "command deadline exceeded")
	default:
		return tagError(err, goerrors.CategoryCommand, codeContextFailed, "command context failed")
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	return tagError(err, goerrors.CategoryCommand, codeExecuteFailed, "command execution failed")
}
