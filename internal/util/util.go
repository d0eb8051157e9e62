/*
Package util includes path and file helpers shared by the commands.
*/
package util

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandUser expands '~' to user's home directory, if found, otherwise returns original path
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return path
	}
	usr, err := user.Current()
	if err != nil {
		return path
	}
	return filepath.Join(usr.HomeDir, strings.TrimPrefix(path, "~"))
}

// AbsPath returns absolute path after expanding '~' to user's home dir
func AbsPath(path string) (string, error) {
	return filepath.Abs(ExpandUser(path))
}

// FileExists reports whether a regular file exists at path. A directory at path is an error.
func FileExists(path string) (bool, error) {
	return pathExists(path, fs.FileMode.IsRegular, "file")
}

// DirectoryExists reports whether a directory exists at path. A regular file at path is an error.
func DirectoryExists(path string) (bool, error) {
	return pathExists(path, fs.FileMode.IsDir, "directory")
}

func pathExists(path string, isKind func(fs.FileMode) bool, kind string) (bool, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if !isKind(fileInfo.Mode()) {
		return false, fmt.Errorf("%s not a %s", path, kind)
	}
	return true, nil
}

// CreateDirectoryIfNotExists creates dir, and any missing parents, with perm
func CreateDirectoryIfNotExists(dir string, perm os.FileMode) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("failed to create directory: '%s', error: '%s'", dir, err.Error())
	}
	return nil
}

// WriteFileInDir writes content to name inside dir and returns the full path.
// Names that would escape dir are rejected.
func WriteFileInDir(dir string, name string, content []byte) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid file name: %q", name)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil { // #nosec G306
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
