package envutil

import (
	"testing"
	"time"
)

func TestIntFallsBackOnMissingOrMalformed(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", "")
	if got := Int("ENVUTIL_TEST_INT", 10); got != 10 {
		t.Fatalf("unexpected default: %d", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", "25")
	if got := Int("ENVUTIL_TEST_INT", 10); got != 25 {
		t.Fatalf("unexpected parsed value: %d", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", "not-a-number")
	if got := Int("ENVUTIL_TEST_INT", 10); got != 10 {
		t.Fatalf("malformed value should fall back, got %d", got)
	}
}

func TestDurationFallsBackOnMissingOrMalformed(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_DUR", "")
	if got := Duration("ENVUTIL_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("unexpected default: %v", got)
	}
	t.Setenv("ENVUTIL_TEST_DUR", "45s")
	if got := Duration("ENVUTIL_TEST_DUR", time.Minute); got != 45*time.Second {
		t.Fatalf("unexpected parsed value: %v", got)
	}
	t.Setenv("ENVUTIL_TEST_DUR", "soon")
	if got := Duration("ENVUTIL_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("malformed value should fall back, got %v", got)
	}
}

func TestRequireRejectsBlank(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_REQ", "   ")
	if _, err := Require("ENVUTIL_TEST_REQ"); err == nil {
		t.Fatal("blank value must error")
	}
	t.Setenv("ENVUTIL_TEST_REQ", "value")
	v, err := Require("ENVUTIL_TEST_REQ")
	if err != nil || v != "value" {
		t.Fatalf("unexpected result: %q, %v", v, err)
	}
}
