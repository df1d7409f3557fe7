// SPDX-License-Identifier: Unlicense OR MIT

// Command justifytext prints text from standard input or files in
// justified lines.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"justifylayout/internal/words"
)

var (
	width       = flag.Int("width", 72, "line width in cells.")
	spacing     = flag.Int("spacing", 1, "minimum cells between words.")
	lineSpacing = flag.Int("linespacing", 0, "blank lines between lines.")
)

func main() {
	flag.Parse()
	if err := mainErr(os.Stdout, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "justifytext: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(out io.Writer, files []string) error {
	if *width <= 0 {
		return fmt.Errorf("invalid width %d", *width)
	}
	if *spacing < 0 || *lineSpacing < 0 {
		return errors.New("negative spacing")
	}
	text, err := readText(files)
	if err != nil {
		return err
	}
	opts := words.Options{Columns: *width, Spacing: *spacing, LineSpacing: *lineSpacing}
	w := bufio.NewWriter(out)
	// Paragraphs are separated by blank lines and justified on their own.
	for i, para := range paragraphs(text) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, line := range words.Justify(words.Split(para), opts) {
			fmt.Fprintln(w, line)
		}
	}
	return w.Flush()
}

func readText(files []string) (string, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	var b strings.Builder
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return "", err
		}
		b.Write(data)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

func paragraphs(text string) []string {
	var paras []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(p) != "" {
			paras = append(paras, p)
		}
	}
	return paras
}
