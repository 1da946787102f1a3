// Command optargen generates builders for functions annotated with optargen
// directives.
//
//	optargen [-b tags] [-t] [-o optargen_gen.go] [-c auto|always|never] [packages]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	optargeninternal "github.com/sublee/optargen/internal/optargen"
)

var Version = "dev"

var (
	bFlag = flag.String("b", "", "comma-separated build tags")
	tFlag = flag.Bool("t", false, "include tests")
	oFlag = flag.String("o", "optargen_gen.go", "output file name")
	cFlag = flag.String("c", "auto", "colorize (auto|always|never)")
)

func init() {
	optargeninternal.Version = Version
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch *cFlag {
	case "auto":
		color.NoColor = !isatty(os.Stderr)
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	outs, err := optargeninternal.Main(context.Background(), wd, os.Environ(), *bFlag, *tFlag, *oFlag, patterns)
	if err != nil {
		fmt.Fprintln(os.Stderr, colorize(err.Error()))
		os.Exit(1)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

// isatty reports whether the file is a terminal. If it is true, we can use
// ANSI color codes.
func isatty(f *os.File) bool {
	_, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	reTab  = regexp.MustCompile(`(?m)^\t.+`)
	reFail = regexp.MustCompile(`^\tFAIL:.+`)
	rePos  = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)

	red   = color.New(color.FgRed)
	faint = color.New(color.Faint)
	bold  = color.New(color.Bold)
)

// colorize highlights positions and name tables in the message. It does
// nothing if colors are disabled.
func colorize(message string) string {
	m := []byte(message)
	m = rePos.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(bold.Sprint(string(b)))
	})
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		if reFail.Match(b) {
			return []byte(red.Sprint(string(b)))
		}
		return []byte(faint.Sprint(string(b)))
	})
	return string(m)
}
