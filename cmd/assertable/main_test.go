package main

import (
	"reflect"
	"testing"
)

func TestTransformArgsForHashbang(t *testing.T) {
	mockFileChecker := func(existingFiles map[string]bool) fileChecker {
		return func(path string) bool {
			return existingFiles[path]
		}
	}

	tests := []struct {
		name          string
		args          []string
		existingFiles map[string]bool
		wantArgs      []string
		wantFile      string
	}{
		{
			name:          "no args",
			args:          []string{"assertable"},
			existingFiles: map[string]bool{},
			wantArgs:      []string{"assertable"},
		},
		{
			name:          "known subcommand assume",
			args:          []string{"assertable", "assume", "lt", "1", "2"},
			existingFiles: map[string]bool{},
			wantArgs:      []string{"assertable", "assume", "lt", "1", "2"},
		},
		{
			name:          "known subcommand shadows file",
			args:          []string{"assertable", "assure", "true", "1"},
			existingFiles: map[string]bool{"assure": true},
			wantArgs:      []string{"assertable", "assure", "true", "1"},
		},
		{
			name:          "flag arg",
			args:          []string{"assertable", "--help"},
			existingFiles: map[string]bool{},
			wantArgs:      []string{"assertable", "--help"},
		},
		{
			name:          "hashbang invocation with file",
			args:          []string{"assertable", "/path/to/checks"},
			existingFiles: map[string]bool{"/path/to/checks": true},
			wantArgs:      []string{"assertable", "run"},
			wantFile:      "/path/to/checks",
		},
		{
			name:          "hashbang with extra args",
			args:          []string{"assertable", "checks", "--format", "yaml"},
			existingFiles: map[string]bool{"checks": true},
			wantArgs:      []string{"assertable", "run", "--format", "yaml"},
			wantFile:      "checks",
		},
		{
			name:          "unknown arg that is not a file",
			args:          []string{"assertable", "nonexistent"},
			existingFiles: map[string]bool{},
			wantArgs:      []string{"assertable", "nonexistent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotArgs, gotFile := transformArgsForHashbang(tt.args, mockFileChecker(tt.existingFiles))
			if !reflect.DeepEqual(gotArgs, tt.wantArgs) {
				t.Errorf("args = %v, want %v", gotArgs, tt.wantArgs)
			}
			if gotFile != tt.wantFile {
				t.Errorf("file = %q, want %q", gotFile, tt.wantFile)
			}
		})
	}
}
