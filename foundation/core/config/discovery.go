// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches the standard locations for an intp configuration
//              file when none is given on the command line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	intperror "github.com/msto63/intp/foundation/core/error"
)

// DiscoveryOptions defines where FindConfigFile looks
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try (.toml, .yaml, .yml)
}

// DefaultDiscoveryOptions searches the working directory and then the
// user configuration directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "intp"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"intp", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// FindConfigFile returns the first existing candidate file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", intperror.New(fmt.Sprintf("no configuration file found in: %s", strings.Join(candidates, ", "))).
		WithCode(intperror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}
