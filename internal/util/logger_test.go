package util

import "testing"

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", nil)
	if err != nil {
		t.Fatalf("Failed to build logger: %v", err)
	}
	if !logger.Core().Enabled(-1) {
		t.Fatalf("Expected debug level to be enabled")
	}

	if _, err := NewLogger("chatty", nil); err == nil {
		t.Fatalf("Expected error for unknown level")
	}
}

func TestNewConsoleLogger(t *testing.T) {
	quiet, err := NewConsoleLogger(false)
	if err != nil {
		t.Fatalf("Failed to build logger: %v", err)
	}
	if quiet.Core().Enabled(0) {
		t.Fatalf("Expected info level to be disabled without verbose")
	}

	verbose, err := NewConsoleLogger(true)
	if err != nil {
		t.Fatalf("Failed to build logger: %v", err)
	}
	if !verbose.Core().Enabled(-1) {
		t.Fatalf("Expected debug level to be enabled with verbose")
	}
}
