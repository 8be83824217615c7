// Package shim carries out one clipboard operation per process run: probe
// for a backend, resolve the requested selection, invoke the backend, and
// fall back to the secondary tool when the primary signals failure.
package shim

import (
	"context"
	"fmt"
	"io"

	"github.com/ball6847/xclip-win32yank-wrapper/pkg/backend"
	"github.com/ball6847/xclip-win32yank-wrapper/pkg/errors"
	"github.com/ball6847/xclip-win32yank-wrapper/pkg/logger"
	"github.com/ball6847/xclip-win32yank-wrapper/pkg/sanitize"
	"github.com/ball6847/xclip-win32yank-wrapper/pkg/selection"
)

type Direction int

const (
	DirectionCopy Direction = iota
	DirectionPaste
)

func (d Direction) String() string {
	if d == DirectionCopy {
		return "copy"
	}
	return "paste"
}

// Intent is the fully parsed user request. It is constructed once by the
// argument parser and never mutated afterwards.
type Intent struct {
	Direction Direction
	Selection selection.Selection
	Target    string
	Quiet     bool
}

// Run performs the requested clipboard operation. Sanitized paste output
// goes to stdout; warnings and diagnostics go to stderr (suppressed under
// the intent's quiet flag). A nil return means exit status zero.
func Run(intent Intent, stdin io.Reader, stdout, stderr io.Writer) error {
	avail := backend.Available()
	if len(avail) == 0 {
		return errors.NoBackendAvailableError()
	}
	logger.Debug().
		Str("direction", intent.Direction.String()).
		Str("selection", intent.Selection.String()).
		Int("backends", len(avail)).
		Msg("starting clipboard operation")

	_, warning := selection.Map(intent.Selection)
	if warning != "" && !intent.Quiet {
		fmt.Fprintln(stderr, "Warning: "+warning)
	}

	ctx, cancel := backend.OperationContext()
	defer cancel()

	if intent.Direction == DirectionCopy {
		return runCopy(ctx, avail, stdin)
	}
	return runPaste(ctx, avail, stdout)
}

// runCopy buffers all of stdin up front so a fallback attempt replays the
// identical bytes, then tries each available backend in order.
func runCopy(ctx context.Context, avail []backend.Descriptor, stdin io.Reader) error {
	input, err := io.ReadAll(stdin)
	if err != nil {
		return errors.NewWithError(errors.KindGeneral, "failed to read standard input", err)
	}

	var tried []string
	permDenied := false

	for _, b := range avail {
		tried = append(tried, b.Name)
		logger.Debug().Str("backend", b.Name).Int("bytes", len(input)).Msg("copy attempt")

		res, err := b.Copy(ctx, input)
		if timedOut(ctx, err) {
			return errors.TimeoutError(b.Name)
		}
		if err != nil {
			if backend.IsPermissionDenied(err, res) {
				permDenied = true
			}
			logger.Debug().Str("backend", b.Name).Err(err).Msg("copy launch failed")
			continue
		}
		if res.ExitStatus == 0 {
			return nil
		}
		if backend.IsPermissionDenied(nil, res) {
			permDenied = true
		}
	}

	return failure(tried, permDenied)
}

// runPaste tries each available backend in order, treating a recognized
// usage banner as a failed attempt rather than clipboard content.
func runPaste(ctx context.Context, avail []backend.Descriptor, stdout io.Writer) error {
	var tried []string
	permDenied := false

	for _, b := range avail {
		tried = append(tried, b.Name)
		logger.Debug().Str("backend", b.Name).Msg("paste attempt")

		res, err := b.Paste(ctx)
		if timedOut(ctx, err) {
			return errors.TimeoutError(b.Name)
		}
		if err != nil {
			if backend.IsPermissionDenied(err, res) {
				permDenied = true
			}
			logger.Debug().Str("backend", b.Name).Err(err).Msg("paste launch failed")
			continue
		}
		if res.ExitStatus != 0 {
			if backend.IsPermissionDenied(nil, res) {
				permDenied = true
			}
			continue
		}

		out, failureSig := sanitize.Sanitize(res.RawOutput, b.Signatures)
		if failureSig {
			logger.Debug().Str("backend", b.Name).Msg("output matched failure signature, falling back")
			continue
		}

		if _, err := io.WriteString(stdout, out.Text); err != nil {
			return errors.NewWithError(errors.KindGeneral, "failed to write to standard output", err)
		}
		return nil
	}

	return failure(tried, permDenied)
}

func timedOut(ctx context.Context, err error) bool {
	return err != nil && ctx.Err() == context.DeadlineExceeded
}

func failure(tried []string, permDenied bool) error {
	if permDenied {
		return errors.PermissionDeniedError(tried)
	}
	return errors.AllBackendsFailedError(tried)
}
