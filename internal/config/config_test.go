package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("ORAMEN_TEST_KEY", "nilai")

	if got := getEnv("ORAMEN_TEST_KEY", "default"); got != "nilai" {
		t.Errorf("getEnv = %q, want nilai", got)
	}
	if got := getEnv("ORAMEN_TEST_KEY_KOSONG", "default"); got != "default" {
		t.Errorf("getEnv fallback = %q, want default", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("ORAMEN_TEST_INT", "300")
	t.Setenv("ORAMEN_TEST_INT_RUSAK", "tiga ratus")

	if got := getEnvAsInt("ORAMEN_TEST_INT", 60); got != 300 {
		t.Errorf("getEnvAsInt = %d, want 300", got)
	}
	if got := getEnvAsInt("ORAMEN_TEST_INT_RUSAK", 60); got != 60 {
		t.Errorf("getEnvAsInt dengan nilai rusak = %d, want 60", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"bukan-bool", false}, // fallback ke default
	}

	for _, tt := range tests {
		t.Setenv("ORAMEN_TEST_BOOL", tt.value)
		if got := getEnvAsBool("ORAMEN_TEST_BOOL", false); got != tt.want {
			t.Errorf("getEnvAsBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
