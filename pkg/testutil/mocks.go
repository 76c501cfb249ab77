package testutil

import (
	"strings"
)

// MockFS is a test double for jsonsource.FileSystem.
type MockFS struct {
	Content []byte
	Err     error
}

func (m *MockFS) ReadFile(_ string) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Content, nil
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
