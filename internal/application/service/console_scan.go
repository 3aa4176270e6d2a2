package service

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// consoleCallRe matches leftover debug logging calls in JS/TS sources.
var consoleCallRe = regexp.MustCompile(`console\.(log|debug)\s*\(`)

// scanExtensions are the file types the scanner inspects.
var scanExtensions = map[string]bool{
	".js":     true,
	".jsx":    true,
	".ts":     true,
	".tsx":    true,
	".vue":    true,
	".svelte": true,
}

// scanSkipDirs are directory names never descended into.
var scanSkipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
}

// Finding is one leftover console call.
type Finding struct {
	Path string
	Line int
	Text string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s:%d: %s", f.Path, f.Line, f.Text)
}

// ScanPath walks root (a file or a directory) and returns every console.log
// and console.debug call found in scannable sources.
func ScanPath(root string) ([]Finding, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return scanFile(root)
	}

	var findings []Finding
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if scanSkipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !scanExtensions[filepath.Ext(path)] {
			return nil
		}
		found, err := scanFile(path)
		if err != nil {
			return err
		}
		findings = append(findings, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findings, nil
}

func scanFile(path string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var findings []Finding
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if consoleCallRe.MatchString(scanner.Text()) {
			findings = append(findings, Finding{
				Path: path,
				Line: line,
				Text: strings.TrimSpace(scanner.Text()),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return findings, nil
}
