package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FilePath is a normalized path that denotes a file.
type FilePath string

// DirPath is a normalized path that denotes a directory.
type DirPath string

// ParseFilePath normalizes s into a FilePath.
// Empty strings, strings containing NUL, and strings that can only denote
// a directory ("." , ".." or a trailing separator) are unparseable.
func ParseFilePath(s string) (FilePath, error) {
	if err := validatePath(s); err != nil {
		return "", err
	}
	if strings.HasSuffix(s, "/") || strings.HasSuffix(s, string(filepath.Separator)) {
		return "", fmt.Errorf("path denotes a directory: %q", s)
	}
	clean := filepath.Clean(s)
	if clean == "." || clean == ".." || strings.HasSuffix(clean, string(filepath.Separator)+"..") {
		return "", fmt.Errorf("path denotes a directory: %q", s)
	}
	return FilePath(clean), nil
}

// ParseDirPath normalizes s into a DirPath.
func ParseDirPath(s string) (DirPath, error) {
	if err := validatePath(s); err != nil {
		return "", err
	}
	return DirPath(filepath.Clean(s)), nil
}

func validatePath(s string) error {
	if s == "" {
		return fmt.Errorf("empty path")
	}
	if strings.ContainsRune(s, 0) {
		return fmt.Errorf("path contains NUL byte")
	}
	return nil
}

func (p FilePath) String() string { return string(p) }

// Dir returns the directory portion of the path.
func (p FilePath) Dir() DirPath { return DirPath(filepath.Dir(string(p))) }

// Base returns the last element of the path.
func (p FilePath) Base() string { return filepath.Base(string(p)) }

// Ext returns the file extension, including the dot.
func (p FilePath) Ext() string { return filepath.Ext(string(p)) }

func (p DirPath) String() string { return string(p) }

// Join appends elements to the directory path, producing a FilePath.
func (p DirPath) Join(elem ...string) FilePath {
	parts := append([]string{string(p)}, elem...)
	return FilePath(filepath.Join(parts...))
}

// Base returns the last element of the path.
func (p DirPath) Base() string { return filepath.Base(string(p)) }
