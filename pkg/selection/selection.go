// Package selection maps X11-style selection names onto the single Windows
// clipboard. Windows has no PRIMARY selection, so PRIMARY is aliased to
// CLIPBOARD with a non-fatal warning.
package selection

import (
	"fmt"
	"strings"
)

type Selection int

const (
	Clipboard Selection = iota
	Primary
)

func (s Selection) String() string {
	switch s {
	case Clipboard:
		return "CLIPBOARD"
	case Primary:
		return "PRIMARY"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// PrimaryWarning is emitted once per invocation when a PRIMARY request is
// aliased to CLIPBOARD.
const PrimaryWarning = "PRIMARY selection not supported on Windows, using CLIPBOARD"

// Parse accepts the xclip selection spellings the wrapper supports: the
// short forms "c" and "p" plus the full words, case-insensitively.
func Parse(value string) (Selection, error) {
	switch strings.ToLower(value) {
	case "c", "clipboard":
		return Clipboard, nil
	case "p", "primary":
		return Primary, nil
	default:
		return Clipboard, fmt.Errorf("invalid selection %q (expected c, p, clipboard or primary)", value)
	}
}

// Map resolves the requested selection to the one the backends can serve.
// The returned warning is empty when the mapping is exact.
func Map(sel Selection) (Selection, string) {
	if sel == Primary {
		return Clipboard, PrimaryWarning
	}
	return Clipboard, ""
}
