// File: filex.go
// Title: File Utilities
// Description: Path helpers used by the command line to turn file and
//              directory arguments into a sorted list of source files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package filex

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	pgerror "github.com/msto63/peregrine/internal/core/error"
)

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FindFiles walks root and returns every regular file whose base name
// matches pattern, sorted. Directories starting with a dot are skipped.
func FindFiles(root, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, pgerror.Wrap(err, "invalid file pattern").
			WithCode(pgerror.CodeInvalidInput).
			WithOperation("filex.FindFiles").
			WithDetail("pattern", pattern)
	}

	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, pgerror.Wrap(err, "error during file search").
			WithCode(pgerror.CodeReadFailed).
			WithOperation("filex.FindFiles").
			WithDetail("root", root)
	}

	sort.Strings(matches)
	return matches, nil
}

// ExpandPaths replaces every directory in paths with the files below it
// matching pattern. Other entries are kept as given, so missing files are
// reported by whoever opens them. Order of the arguments is preserved.
func ExpandPaths(paths []string, pattern string) ([]string, error) {
	expanded := make([]string, 0, len(paths))
	for _, path := range paths {
		if !IsDir(path) {
			expanded = append(expanded, path)
			continue
		}
		files, err := FindFiles(path, pattern)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, files...)
	}
	return expanded, nil
}
