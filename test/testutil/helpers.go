// Package testutil provides test helper functions for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/test/mock"
)

// LoadTestData loads a file from the test/testdata directory.
func LoadTestData(t *testing.T, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadLocaleFixtures decodes test/testdata/locales.yaml.
func LoadLocaleFixtures(t *testing.T) []mock.LocaleFixture {
	t.Helper()

	fixtures, err := mock.ParseLocaleFixtures(LoadTestData(t, "locales.yaml"))
	if err != nil {
		t.Fatalf("Failed to decode locale fixtures: %v", err)
	}
	return fixtures
}

// FixtureFormatter returns a fixture formatter over every recorded locale.
func FixtureFormatter(t *testing.T) *mock.Formatter {
	t.Helper()
	return mock.NewFormatter(LoadLocaleFixtures(t)...)
}

// MustParseClock parses a time in H:MM[:SS[.fff]] form.
// It fails the test if parsing fails.
func MustParseClock(t *testing.T, s string) domain.TimeOfDay {
	t.Helper()
	tod, err := domain.ParseClock(s)
	if err != nil {
		t.Fatalf("Failed to parse clock %s: %v", s, err)
	}
	return tod
}
