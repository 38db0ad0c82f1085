package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// PromptFunc prompts the user for free-text input and returns the response.
type PromptFunc func(prompt string) (string, error)

// NewPromptFunc creates a PromptFunc using huh's interactive input component.
func NewPromptFunc() PromptFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// SelectFunc prompts the user to select one option from a list. Returns 0-based index.
type SelectFunc func(title string, options []string) (int, error)

// NewSelectFunc creates a SelectFunc using huh's interactive select component.
func NewSelectFunc() SelectFunc {
	return func(title string, options []string) (int, error) {
		var result int
		opts := make([]huh.Option[int], len(options))
		for i, o := range options {
			opts[i] = huh.NewOption(o, i)
		}
		err := huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Value(&result).
			Run()
		return result, err
	}
}

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	Prompt  PromptFunc
	Confirm ConfirmFunc
	Select  SelectFunc
}

// NewPromptKit creates a PromptKit with huh-based interactive implementations.
func NewPromptKit() PromptKit {
	return PromptKit{
		Prompt:  NewPromptFunc(),
		Confirm: NewConfirmFunc(),
		Select:  NewSelectFunc(),
	}
}

// NewLinePromptKit creates a PromptKit that reads answers line by line from in.
// Used when stdin is not a terminal, so sessions can be piped or scripted.
// End of input aborts the current prompt.
func NewLinePromptKit(in io.Reader, out io.Writer) PromptKit {
	r := bufio.NewReader(in)

	readLine := func() (string, error) {
		line, err := r.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	return PromptKit{
		Prompt: func(prompt string) (string, error) {
			_, _ = fmt.Fprintf(out, "%s: ", prompt)
			return readLine()
		},
		Confirm: func(prompt string) (bool, error) {
			_, _ = fmt.Fprintf(out, "%s [y/N]: ", prompt)
			answer, err := readLine()
			if err != nil {
				return false, err
			}
			answer = strings.ToLower(strings.TrimSpace(answer))
			return answer == "y" || answer == "yes", nil
		},
		Select: func(title string, options []string) (int, error) {
			_, _ = fmt.Fprintln(out, title)
			for i, o := range options {
				_, _ = fmt.Fprintf(out, "  %d) %s\n", i+1, o)
			}
			for {
				_, _ = fmt.Fprint(out, "> ")
				answer, err := readLine()
				if err != nil {
					return 0, err
				}
				if idx, ok := matchOption(answer, options); ok {
					return idx, nil
				}
				_, _ = fmt.Fprintf(out, "invalid choice %q\n", answer)
			}
		},
	}
}

// matchOption resolves a 1-based number or a case-insensitive option label.
func matchOption(answer string, options []string) (int, bool) {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	for i, o := range options {
		if strings.EqualFold(o, answer) {
			return i, true
		}
	}
	return 0, false
}

// isAbort reports whether err means the user abandoned a prompt.
func isAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) || errors.Is(err, io.EOF)
}
