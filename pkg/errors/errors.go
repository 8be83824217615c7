package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/ball6847/xclip-win32yank-wrapper/pkg/logger"

	"github.com/fatih/color"
)

// Kind classifies a failure for message selection. Every kind maps to the
// same non-zero exit status; xclip callers only distinguish zero from
// non-zero.
type Kind int

const (
	KindGeneral Kind = iota
	KindValidation
	KindNoBackendAvailable
	KindBackendInvocation
	KindAllBackendsFailed
	KindPermissionDenied
	KindBackendTimeout
)

const (
	// ExitSuccess and ExitFailure are the only exit statuses the wrapper
	// produces.
	ExitSuccess = 0
	ExitFailure = 1
)

type Error struct {
	Kind       Kind
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

func NewWithError(kind Kind, message string, err error) *Error {
	return &Error{
		Kind:       kind,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(kind Kind, message string, suggestion string) *Error {
	return &Error{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Kind:       wrapped.Kind,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Kind:       KindGeneral,
		Message:    message,
		Underlying: err,
	}
}

func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Kind == kind
	}

	return false
}

func ValidationError(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
	}
}

func NoBackendAvailableError() *Error {
	return &Error{
		Kind:    KindNoBackendAvailable,
		Message: "no Windows clipboard tool found on PATH",
		Suggestion: "Install win32yank: https://github.com/equalsraf/win32yank/releases\n" +
			"Place win32yank.exe (or win32yoink.exe) in a directory on your WSL PATH,\n" +
			"e.g. /usr/local/bin, and make it executable.",
	}
}

func AllBackendsFailedError(tried []string) *Error {
	return &Error{
		Kind:       KindAllBackendsFailed,
		Message:    fmt.Sprintf("all clipboard tools failed (tried %s)", strings.Join(tried, ", ")),
		Suggestion: "Run the tool directly (e.g. 'win32yank.exe -o') to see its own error output.",
	}
}

func PermissionDeniedError(tried []string) *Error {
	return &Error{
		Kind:       KindPermissionDenied,
		Message:    fmt.Sprintf("clipboard access denied (tried %s)", strings.Join(tried, ", ")),
		Suggestion: "Another process may hold the Windows clipboard open, or the executable\nlacks execute permission. Check with 'ls -l' and retry.",
	}
}

func TimeoutError(backend string) *Error {
	return &Error{
		Kind:    KindBackendTimeout,
		Message: fmt.Sprintf("clipboard tool %s did not finish within XCLIP_WRAPPER_TIMEOUT", backend),
	}
}

// HandleReturn renders an error to stderr and returns the process exit
// status. It never writes to stdout. With quiet set, nothing is printed and
// only the status is returned.
func HandleReturn(err error, quiet bool) int {
	if err == nil {
		return ExitSuccess
	}

	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		message = e.Message
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Debug().Err(e.Underlying).Msg(e.Message)
		}
	} else {
		message = err.Error()
	}

	if quiet {
		return ExitFailure
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, message)

	if suggestion != "" {
		yellow.Fprint(os.Stderr, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(os.Stderr, line)
			} else {
				fmt.Fprintln(os.Stderr, "            "+line)
			}
		}
	}

	return ExitFailure
}
