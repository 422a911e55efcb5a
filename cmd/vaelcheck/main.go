package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vael-lang/vael/internal/checker"
	"github.com/vael-lang/vael/internal/config"
	"github.com/vael-lang/vael/internal/fixture"
	"github.com/vael-lang/vael/internal/strstore"
)

const (
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorReset = "\033[0m"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <fixture.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	path := os.Args[1]
	var cfg *config.Config
	if path == "-c" || path == "--config" {
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: %s -c <config.yaml>\n", os.Args[0])
			os.Exit(1)
		}
		c, err := config.Load(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config: %s\n", err)
			os.Exit(1)
		}
		cfg = c
		path = cfg.Fixture
		if cfg.Color != nil {
			color = *cfg.Color
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading fixture: %s\n", err)
		os.Exit(1)
	}

	var ext *config.BasisExtension
	if cfg != nil && cfg.BasisExtension != "" {
		e, err := config.LoadBasisExtension(cfg.BasisExtension)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading basis extension: %s\n", err)
			os.Exit(1)
		}
		ext = e
	}

	store := strstore.New()
	topDecs, err := fixture.Parse(data, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing fixture: %s\n", err)
		os.Exit(1)
	}

	if err := checker.CheckWithExtension(store, topDecs, ext); err != nil {
		printDiagnostic(path, err, color)
		os.Exit(1)
	}

	printOK(path, color)
}

func printDiagnostic(path string, err error, color bool) {
	if color {
		fmt.Fprintf(os.Stderr, "%s%s: %s%s\n", colorRed, path, err, colorReset)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
}

func printOK(path string, color bool) {
	if color {
		fmt.Printf("%s%s: ok%s\n", colorGreen, path, colorReset)
		return
	}
	fmt.Printf("%s: ok\n", path)
}
