package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

const cancelInput = "0"

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}

func (h *Handler) println(args ...any) {
	fmt.Fprintln(h.out, args...)
}

// readLine returns the next trimmed input line, or ErrCancelled when the
// user enters "0".
func (h *Handler) readLine(prompt string) (string, error) {
	h.printf("%s (0 to cancel): ", prompt)
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimSpace(h.in.Text())
	if line == cancelInput {
		return "", ErrCancelled
	}
	return line, nil
}

// promptString re-prompts until a non-empty line is entered.
func (h *Handler) promptString(prompt string) (string, error) {
	for {
		line, err := h.readLine(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		h.println("Input cannot be empty, try again.")
	}
}

// promptOptionalString accepts an empty line as "no value".
func (h *Handler) promptOptionalString(prompt string) (string, error) {
	return h.readLine(prompt + " (blank to skip)")
}

func (h *Handler) promptInt(prompt string) (int, error) {
	for {
		line, err := h.promptString(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			h.println("Please enter a whole number.")
			continue
		}
		return n, nil
	}
}

func (h *Handler) promptUint(prompt string) (uint64, error) {
	for {
		line, err := h.promptString(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			h.println("Please enter a positive whole number.")
			continue
		}
		return n, nil
	}
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.Parse(s)
}

func (h *Handler) promptDecimal(prompt string) (decimal.Decimal, error) {
	for {
		line, err := h.promptString(prompt)
		if err != nil {
			return decimal.Decimal{}, err
		}
		d, err := decimal.Parse(line)
		if err != nil {
			h.println("Please enter an amount like 12.50.")
			continue
		}
		return d, nil
	}
}
