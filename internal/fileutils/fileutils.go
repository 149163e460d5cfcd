// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// PathExists checks if a path exists, regardless of whether it is a file or directory
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// UniqueDestination resolves name collisions by appending a numeric suffix
// before the extension: name.ext, name_1.ext, name_2.ext, ...
func UniqueDestination(dir, filename string) string {
	destination := filepath.Join(dir, filename)
	if !PathExists(destination) {
		return destination
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		if !PathExists(candidate) {
			return candidate
		}
	}
}

// MoveFile moves a file to a new location. It tries a rename first and
// falls back to copy-and-remove when source and destination are on
// different filesystems.
func MoveFile(source, destination string) error {
	if err := os.Rename(source, destination); err == nil {
		return nil
	}

	if err := copyFile(source, destination); err != nil {
		return fmt.Errorf("failed to move file: %w", err)
	}
	if err := os.Remove(source); err != nil {
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}
	return nil
}

func copyFile(source, destination string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(destination)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(destination)
		return err
	}
	return nil
}
