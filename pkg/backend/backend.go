// Package backend resolves and invokes the Windows clipboard executables
// the wrapper drives. Detection is a pure PATH lookup re-run on every
// invocation; nothing is cached because the environment of a long-lived
// shell session can change between runs.
package backend

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/ball6847/xclip-win32yank-wrapper/pkg/logger"
)

// TimeoutEnv optionally bounds a backend invocation. It holds a Go duration
// ("5s", "500ms"); unset or unparsable means wait forever, matching the
// tools being wrapped.
const TimeoutEnv = "XCLIP_WRAPPER_TIMEOUT"

// Descriptor is a handle on one external clipboard executable: how to find
// it, how to invoke each direction, and which output prefixes mark its
// usage banner.
type Descriptor struct {
	Name       string
	Command    string
	CopyArgs   []string
	PasteArgs  []string
	Signatures []string
}

// registry lists the supported backends in fixed preference order.
var registry = []Descriptor{
	{
		Name:       "win32yank",
		Command:    "win32yank.exe",
		CopyArgs:   []string{"-i"},
		PasteArgs:  []string{"-o"},
		Signatures: []string{"Usage:", "win32yank"},
	},
	{
		Name:       "win32yoink",
		Command:    "win32yoink.exe",
		CopyArgs:   []string{"-i"},
		PasteArgs:  []string{"-o"},
		Signatures: []string{"Usage:", "win32yoink"},
	},
}

// Registry returns the supported backends in preference order, whether or
// not they resolve on PATH.
func Registry() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// Available returns the backends that currently resolve on PATH, preserving
// preference order. The lookup has no invocation side effects.
func Available() []Descriptor {
	var found []Descriptor
	for _, d := range registry {
		path, err := exec.LookPath(d.Command)
		if err != nil {
			logger.Debug().Str("backend", d.Name).Msg("not on PATH")
			continue
		}
		logger.Debug().Str("backend", d.Name).Str("path", path).Msg("backend available")
		found = append(found, d)
	}
	return found
}

// Detect returns the preferred available backend, or false when neither
// tool resolves.
func Detect() (Descriptor, bool) {
	avail := Available()
	if len(avail) == 0 {
		return Descriptor{}, false
	}
	return avail[0], true
}

// Result is the outcome of a single backend invocation attempt.
type Result struct {
	Backend    Descriptor
	ExitStatus int
	RawOutput  []byte
	RawError   []byte
}

// OperationContext builds the context a backend invocation runs under,
// honoring TimeoutEnv when set. The cancel function must always be called.
func OperationContext() (context.Context, context.CancelFunc) {
	raw := os.Getenv(TimeoutEnv)
	if raw == "" {
		return context.WithCancel(context.Background())
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil || timeout <= 0 {
		logger.Warn().Str("value", raw).Msg("ignoring unparsable " + TimeoutEnv)
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// Copy feeds input to the backend's copy direction. The input is a fully
// buffered byte slice so a fallback attempt can replay it unchanged.
func (d Descriptor) Copy(ctx context.Context, input []byte) (Result, error) {
	cmd := exec.CommandContext(ctx, d.Command, d.CopyArgs...)
	cmd.Stdin = bytes.NewReader(input)
	return d.run(ctx, cmd)
}

// Paste invokes the backend's paste direction and captures its raw output
// for sanitization.
func (d Descriptor) Paste(ctx context.Context) (Result, error) {
	cmd := exec.CommandContext(ctx, d.Command, d.PasteArgs...)
	return d.run(ctx, cmd)
}

func (d Descriptor) run(ctx context.Context, cmd *exec.Cmd) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Backend:   d,
		RawOutput: stdout.Bytes(),
		RawError:  stderr.Bytes(),
	}

	if err != nil {
		// A deadline kill surfaces as an ExitError, so the context is
		// checked first.
		if ctx.Err() != nil {
			res.ExitStatus = -1
			return res, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitStatus = exitErr.ExitCode()
			logger.Debug().
				Str("backend", d.Name).
				Int("exit", res.ExitStatus).
				Msg("backend exited non-zero")
			return res, nil
		}
		// Launch failure (vanished from PATH since probing, not
		// executable, ...).
		res.ExitStatus = -1
		return res, err
	}

	return res, nil
}

// IsPermissionDenied reports whether an attempt failed for access reasons,
// either at launch or as reported by the tool itself on stderr.
func IsPermissionDenied(err error, res Result) bool {
	if err != nil && os.IsPermission(err) {
		return true
	}
	msg := strings.ToLower(string(res.RawError))
	return strings.Contains(msg, "access is denied") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "access denied")
}
