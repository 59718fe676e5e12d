package main

import (
	"fmt"
	"os"

	"github.com/mcdonaldj/gitlink/internal/adapters/execgit"
	"github.com/mcdonaldj/gitlink/internal/cli"
	"github.com/mcdonaldj/gitlink/internal/resolve"
	"github.com/mcdonaldj/gitlink/internal/tui"
)

// version is set via ldflags at build time: -ldflags "-X main.version=x.y.z"
var version = "dev"

func main() {
	// Precondition for every command: without a git binary there is
	// nothing to resolve.
	if !execgit.New().Available() {
		fmt.Fprintln(os.Stderr, "Error: git executable not found on PATH")
		os.Exit(1)
	}

	// Handle TUI mode (no args or ui/tui command)
	if len(os.Args) < 2 || os.Args[1] == "ui" || os.Args[1] == "tui" {
		file, lines, err := parsePickerArgs(os.Args)
		if err == nil {
			err = tui.Run(file, lines)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Use CLI for all other commands
	c := cli.New(version)
	c.Run()
}

// parsePickerArgs extracts the optional file and --lines range for the
// picker from "gitlink [ui [file] [--lines N[-M]]]".
func parsePickerArgs(argv []string) (string, *resolve.LineRange, error) {
	if len(argv) < 3 {
		return "", nil, nil
	}

	file := ""
	var lines *resolve.LineRange
	args := argv[2:]
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--lines" || args[i] == "-L":
			i++
			if i >= len(args) {
				return "", nil, fmt.Errorf("flag --lines needs a value")
			}
			var err error
			lines, err = resolve.ParseLineRange(args[i])
			if err != nil {
				return "", nil, err
			}
		case file == "":
			file = args[i]
		default:
			return "", nil, fmt.Errorf("unexpected argument %q", args[i])
		}
	}
	return file, lines, nil
}
