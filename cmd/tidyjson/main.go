package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"pkt.systems/tidyjson"
)

func main() {
	tab := flag.StringP("tab", "t", " ", "indentation token, repeated once per nesting level")
	codes := flag.IntP("codes-per-line", "n", 1, "numeric-array elements per line before wrapping")
	paletteName := flag.String("palette", "default", "colour palette")
	listPalettes := flag.Bool("list-palettes", false, "print available palette names and exit")
	noColor := flag.Bool("no-color", false, "disable colorized output, even when writing to a TTY")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file ...]\n\nReads compact JSON from the given files (or stdin when no files, or \"-\")\nand prints it indented.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listPalettes {
		fmt.Println(strings.Join(tidyjson.PaletteNames(), "\n"))
		return
	}

	color := !*noColor && isatty.IsTerminal(os.Stdout.Fd())
	renderer := lipgloss.NewRenderer(os.Stdout)
	pal, err := tidyjson.ResolvePalette(*paletteName, renderer, color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidyjson: %v\n", err)
		os.Exit(2)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		data, err := readInput(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tidyjson: %s\n", err)
			os.Exit(1)
		}
		out, err := tidyjson.Format(string(data), *tab, *codes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tidyjson: %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Println(tidyjson.Colorize([]byte(out), pal))
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
