package cmd

import (
	"fmt"
	"os"

	"github.com/ball6847/xclip-win32yank-wrapper/pkg/errors"
	"github.com/ball6847/xclip-win32yank-wrapper/pkg/logger"
	"github.com/ball6847/xclip-win32yank-wrapper/pkg/shim"

	"github.com/mattn/go-isatty"
)

const unknownValue = "unknown"

var (
	Version   string
	BuildTime string
	GitCommit string
)

const usageText = `Usage: xclip [OPTION...]
xclip-compatible wrapper around win32yank.exe / win32yoink.exe for WSL.

  -i, -in             read standard input into the Windows clipboard
  -o, -out            write the Windows clipboard to standard output
  -selection <c|p>    c = CLIPBOARD (default), p = PRIMARY (aliased to
                      CLIPBOARD with a warning; Windows has no PRIMARY)
  -t, -target TARGET  accepted for compatibility, only plain text is served
  -d, -display DISP   accepted and ignored
  -quiet              suppress warnings and error diagnostics
  -version            print version and exit
  -help               print this help and exit

Exactly one of -i or -o is required. Exit status is 0 on success, 1 on any
failure.`

// Execute runs one clipboard operation and returns the process exit status.
func Execute() int {
	if level := os.Getenv("XCLIP_WRAPPER_LOG_LEVEL"); level != "" {
		logger.SetLevel(level)
	} else {
		logger.SetLevel("info")
	}

	intent, mode, err := parseArgs(os.Args[1:])
	if err != nil {
		code := errors.HandleReturn(err, intent.Quiet)
		if !intent.Quiet {
			fmt.Fprintln(os.Stderr, "Try 'xclip -help' for more information.")
		}
		return code
	}

	switch mode {
	case modeVersion:
		printVersion()
		return errors.ExitSuccess
	case modeHelp:
		fmt.Println(usageText)
		return errors.ExitSuccess
	}

	if intent.Direction == shim.DirectionCopy && !intent.Quiet && isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "reading standard input until EOF (Ctrl-D)")
	}

	return errors.HandleReturn(shim.Run(intent, os.Stdin, os.Stdout, os.Stderr), intent.Quiet)
}

func printVersion() {
	ver := Version
	if ver == "" {
		ver = "dev"
	}
	bt := BuildTime
	if bt == "" {
		bt = unknownValue
	}
	gc := GitCommit
	if gc == "" {
		gc = unknownValue
	}

	fmt.Printf("xclip wrapper (win32yank/win32yoink shim) version %s\n", ver)
	fmt.Printf("Built: %s\n", bt)
	fmt.Printf("Git commit: %s\n", gc)
}
