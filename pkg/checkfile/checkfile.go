// Package checkfile locates and parses .assertable files: one assertable
// invocation per line, with blank lines and # comments ignored.
package checkfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
)

// FileName is the name FindFile searches for.
const FileName = ".assertable"

const program = "assertable"

// FindFile returns explicitPath if set, otherwise searches startDir and its
// parents for a .assertable file. The search stops at the home directory, at
// a directory containing .git, or at the filesystem root.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("check file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		checkPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(checkPath); err == nil {
			return checkPath, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.New(FileName + " file not found")
}

// Line is one parsed invocation.
type Line struct {
	Number int      // 1-based line number in the file
	Text   string   // trimmed source text
	Args   []string // arguments without the leading program name
}

// ParseFile reads path and splits each invocation into arguments, honoring
// shell-style quoting. A leading "assertable" is optional.
func ParseFile(path string) ([]Line, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading .assertable file
	if err != nil {
		return nil, fmt.Errorf("failed to read check file: %w", err)
	}

	lines := []Line{}
	for i, raw := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		args, err := shellwords.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		if len(args) > 0 && args[0] == program {
			args = args[1:]
		}
		if len(args) == 0 {
			continue
		}

		lines = append(lines, Line{Number: i + 1, Text: trimmed, Args: args})
	}

	return lines, nil
}
