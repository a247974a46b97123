package config

import (
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_GET_ENV_VAR", "test_value")

	if got := GetEnv("TEST_GET_ENV_VAR", "default"); got != "test_value" {
		t.Errorf("GetEnv() = %v, want %v", got, "test_value")
	}

	if got := GetEnv("NON_EXISTING_VAR", "default_value"); got != "default_value" {
		t.Errorf("GetEnv() = %v, want %v", got, "default_value")
	}
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		envValue string
		want     string
	}{
		{"development", "development"},
		{"DEVELOPMENT", "development"},
		{"staging", "staging"},
		{"production", "production"},
		{"PRODUCTION", "production"},
	}

	for _, tt := range tests {
		t.Run(tt.envValue, func(t *testing.T) {
			t.Setenv("MELDEHUB_SERVER_ENVIRONMENT", tt.envValue)
			if got := GetEnvironment(); got != tt.want {
				t.Errorf("GetEnvironment() = %v, want %v", got, tt.want)
			}
		})
	}
}
