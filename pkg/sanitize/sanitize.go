// Package sanitize normalizes raw paste output from a clipboard backend.
//
// The backends add their own line-ending normalization (a trailing CRLF or
// LF), and on a malformed invocation or internal error some versions print
// their usage banner to stdout and still exit zero. Sanitize undoes the
// former and classifies the latter so a banner is never surfaced as
// clipboard content.
//
// Known limitation, inherited from the wrapper this replaces: genuine
// clipboard text whose first token is a backend name or that starts with
// "Usage:" is indistinguishable from a banner and is classified as a
// backend failure.
package sanitize

import (
	"strings"
)

// Output is the normalized paste result handed back to the caller.
type Output struct {
	Text  string
	Empty bool
}

// Sanitize decodes raw backend output and classifies it. The boolean result
// reports whether the output matched a failure signature, meaning the
// backend printed help text instead of clipboard content and a fallback
// attempt is warranted. A genuinely empty clipboard yields Empty without
// the fallback signal.
func Sanitize(raw []byte, signatures []string) (Output, bool) {
	text := strings.ToValidUTF8(string(raw), "�")

	if strings.TrimSpace(trimTrailingNewline(text)) == "" {
		return Output{Text: "", Empty: true}, false
	}

	if matchesSignature(text, signatures) {
		return Output{Text: "", Empty: true}, true
	}

	return Output{Text: trimTrailingNewline(text)}, false
}

// trimTrailingNewline strips exactly one backend-appended line terminator:
// one trailing LF, then one trailing CR (so a single CRLF or lone LF/CR).
// Interior line endings are untouched.
func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// matchesSignature reports whether the decoded output looks like a backend
// usage/help banner. A signature matches as a literal prefix, or as the
// first whitespace-delimited token (with an optional trailing colon, as in
// "win32yank: clipboard utility").
func matchesSignature(text string, signatures []string) bool {
	trimmed := strings.TrimLeft(text, " \t\r\n")
	fields := strings.Fields(trimmed)
	var first string
	if len(fields) > 0 {
		first = fields[0]
	}

	for _, sig := range signatures {
		if sig == "" {
			continue
		}
		if strings.HasPrefix(trimmed, sig) {
			return true
		}
		if first == sig || first == sig+":" {
			return true
		}
	}
	return false
}
