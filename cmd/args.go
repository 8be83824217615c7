package cmd

import (
	"fmt"

	"github.com/ball6847/xclip-win32yank-wrapper/pkg/errors"
	"github.com/ball6847/xclip-win32yank-wrapper/pkg/selection"
	"github.com/ball6847/xclip-win32yank-wrapper/pkg/shim"
)

type runMode int

const (
	modeRun runMode = iota
	modeHelp
	modeVersion
)

// parseArgs scans an xclip-style argument list into an Intent. xclip uses
// single-dash long options (-selection, -target), a grammar pflag cannot
// express, so the scanner is explicit. -help and -version short-circuit
// without further validation, matching xclip.
func parseArgs(args []string) (shim.Intent, runMode, error) {
	intent := shim.Intent{Selection: selection.Clipboard}

	copySet := false
	pasteSet := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-i", "-in", "--in":
			copySet = true
		case "-o", "-out", "--out":
			pasteSet = true
		case "-selection", "--selection":
			value, err := flagValue(args, &i, arg)
			if err != nil {
				return intent, modeRun, err
			}
			sel, err := selection.Parse(value)
			if err != nil {
				return intent, modeRun, errors.ValidationError(err.Error())
			}
			intent.Selection = sel
		case "-t", "-target", "--target":
			value, err := flagValue(args, &i, arg)
			if err != nil {
				return intent, modeRun, err
			}
			// Stored for xclip compatibility; only plain text is served.
			intent.Target = value
		case "-d", "-display", "--display":
			if _, err := flagValue(args, &i, arg); err != nil {
				return intent, modeRun, err
			}
		case "-quiet", "--quiet":
			intent.Quiet = true
		case "-version", "--version":
			return intent, modeVersion, nil
		case "-h", "-help", "--help":
			return intent, modeHelp, nil
		default:
			return intent, modeRun, errors.ValidationError(fmt.Sprintf("unrecognized option %q", arg))
		}
	}

	if copySet && pasteSet {
		return intent, modeRun, errors.ValidationError("options -i and -o are mutually exclusive")
	}
	if !copySet && !pasteSet {
		return intent, modeRun, errors.ValidationError("no direction specified; use -i to copy or -o to paste")
	}

	if pasteSet {
		intent.Direction = shim.DirectionPaste
	} else {
		intent.Direction = shim.DirectionCopy
	}

	return intent, modeRun, nil
}

func flagValue(args []string, i *int, flag string) (string, error) {
	if *i+1 >= len(args) {
		return "", errors.ValidationError(fmt.Sprintf("option %s requires a value", flag))
	}
	*i++
	return args[*i], nil
}
