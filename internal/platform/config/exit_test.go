package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCode1(t *testing.T) {
	var code int
	saved := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = saved })

	var buf bytes.Buffer
	exitf(&buf, "fatal: %s", "seed unavailable")

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if got := buf.String(); got != "fatal: seed unavailable\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
