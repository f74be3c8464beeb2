// scical-check: checker for .keys scripts.
//
// Every word must name a calculator key. A script may carry conformance
// directives in its leading comments:
//
//	# EXPECTED: 20
//	# ANGLE: rad
//
// When EXPECTED is present the script is run on a fresh calculator with
// no tape and the final display must match.
//
// Usage:
//
//	scical-check FILE [FILE...]
//	scical-check --dir DIR
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"nickandperla.net/scical/internal/scanner"
	"nickandperla.net/scical/internal/token"
	"nickandperla.net/scical/pkg/scical"
)

// checkResult holds the outcome of checking a single file.
type checkResult struct {
	path     string
	errors   []string
	expected string
	hasWant  bool
}

// directives extracts EXPECTED and ANGLE values from leading comment lines.
func directives(content string) (expected string, hasWant bool, angle string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}
		body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		switch {
		case strings.HasPrefix(body, "EXPECTED:"):
			expected = strings.TrimSpace(strings.TrimPrefix(body, "EXPECTED:"))
			hasWant = true
		case strings.HasPrefix(body, "ANGLE:"):
			angle = strings.TrimSpace(strings.TrimPrefix(body, "ANGLE:"))
		}
	}
	return expected, hasWant, angle
}

// checkFile scans a key script for unknown keys and, if it declares an
// expected display, runs it.
func checkFile(fsys afero.Fs, path string) checkResult {
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return checkResult{
			path:   path,
			errors: []string{fmt.Sprintf("read error: %v", err)},
		}
	}
	src := string(content)
	result := checkResult{path: path}

	items, err := scanner.NewFromString(src).All()
	if err != nil {
		result.errors = append(result.errors, fmt.Sprintf("scan error: %v", err))
		return result
	}
	for _, it := range items {
		if it.Token.Kind == token.UNKNOWN {
			result.errors = append(result.errors, fmt.Sprintf("line %d: unknown key %q", it.Line, it.Value))
		}
	}

	var angleName string
	result.expected, result.hasWant, angleName = directives(src)
	if !result.hasWant || len(result.errors) > 0 {
		return result
	}

	opts := []scical.Option{scical.WithNoPrelude()}
	if angleName != "" {
		u, ok := scical.ParseAngleUnit(angleName)
		if !ok {
			result.errors = append(result.errors, fmt.Sprintf("unknown ANGLE %q", angleName))
			return result
		}
		opts = append(opts, scical.WithAngleUnit(u))
	}
	calc, err := scical.New(opts...)
	if err != nil {
		result.errors = append(result.errors, err.Error())
		return result
	}
	defer calc.Close()

	got, err := calc.FeedString(src)
	if err != nil {
		result.errors = append(result.errors, err.Error())
		return result
	}
	if got != result.expected {
		result.errors = append(result.errors, fmt.Sprintf("display %q, expected %q", got, result.expected))
	}
	return result
}

// findKeyFiles recursively finds all .keys files under dir.
func findKeyFiles(fsys afero.Fs, dir string) ([]string, error) {
	var files []string
	err := afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".keys" {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}

func run(args []string, stdout, stderr io.Writer, fsys afero.Fs) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Usage: scical-check [--dir DIR] FILE [FILE...]")
		return 1
	}

	var files []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--dir" {
			if i+1 >= len(args) {
				fmt.Fprintln(stderr, "Error: --dir requires an argument")
				return 1
			}
			i++
			found, err := findKeyFiles(fsys, args[i])
			if err != nil {
				fmt.Fprintf(stderr, "Error scanning directory %s: %v\n", args[i], err)
				return 1
			}
			files = append(files, found...)
		} else {
			files = append(files, args[i])
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(stderr, "No .keys files found")
		return 1
	}

	passed, failed, ran := 0, 0, 0
	for _, f := range files {
		result := checkFile(fsys, f)
		if result.hasWant {
			ran++
		}
		if len(result.errors) > 0 {
			failed++
			fmt.Fprintf(stdout, "FAIL %s\n", f)
			for _, e := range result.errors {
				fmt.Fprintf(stdout, "     %s\n", e)
			}
			continue
		}
		passed++
		if result.hasWant {
			fmt.Fprintf(stdout, "OK   %s (%s)\n", f, result.expected)
		} else {
			fmt.Fprintf(stdout, "OK   %s\n", f)
		}
	}

	fmt.Fprintf(stdout, "\n--- Summary ---\n")
	fmt.Fprintf(stdout, "Passed:   %d\n", passed)
	fmt.Fprintf(stdout, "Executed: %d\n", ran)
	fmt.Fprintf(stdout, "Failed:   %d\n", failed)
	fmt.Fprintf(stdout, "Total:    %d\n", len(files))

	if failed > 0 {
		return 1
	}
	return 0
}
