package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("SPACEROCKS_TEST_STR", "hello")

	if got := GetEnv("SPACEROCKS_TEST_STR", "fallback"); got != "hello" {
		t.Errorf("GetEnv = %q, want %q", got, "hello")
	}
	if got := GetEnv("SPACEROCKS_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want %q", got, "fallback")
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SPACEROCKS_TEST_BOOL", "true")
	t.Setenv("SPACEROCKS_TEST_BAD", "maybe")

	if !GetEnvBool("SPACEROCKS_TEST_BOOL", false) {
		t.Error("GetEnvBool did not parse true")
	}
	if GetEnvBool("SPACEROCKS_TEST_BAD", false) {
		t.Error("GetEnvBool accepted malformed value")
	}
	if !GetEnvBool("SPACEROCKS_TEST_UNSET", true) {
		t.Error("GetEnvBool ignored fallback")
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("SPACEROCKS_TEST_INT", "42")
	t.Setenv("SPACEROCKS_TEST_BAD", "forty-two")

	if got := GetEnvInt64("SPACEROCKS_TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt64 = %d, want 42", got)
	}
	if got := GetEnvInt64("SPACEROCKS_TEST_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt64 = %d, want fallback 7", got)
	}
}
