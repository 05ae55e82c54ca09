// Package console is the presentation tier: menu loops, prompts and screens.
// It gathers pre-sanitized input for the service layer and renders results;
// no business rules live here.
package console

import (
	"bufio"
	"errors"
	"io"

	"go.uber.org/zap"
)

// ErrCancelled aborts the current flow and returns control to the enclosing
// menu. Raised when the user enters "0" at any prompt.
var ErrCancelled = errors.New("cancelled by user")

type Handler struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

func NewHandler(in io.Reader, out io.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}
