package infra

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T, fn func(Logger)) string {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	fn(NewStdLogger("test"))
	return buf.String()
}

func TestStdLogger_Infof(t *testing.T) {
	out := capture(t, func(l Logger) { l.Infof("imported %d rows", 42) })
	if !strings.Contains(out, "[INFO] test:") {
		t.Fatalf("expected [INFO] test: in output, got: %s", out)
	}
	if !strings.Contains(out, "imported 42 rows") {
		t.Fatalf("expected message in output, got: %s", out)
	}
}

func TestStdLogger_Warnf(t *testing.T) {
	out := capture(t, func(l Logger) { l.Warnf("slow query %s", "best_times") })
	if !strings.Contains(out, "[WARN] test:") {
		t.Fatalf("expected [WARN] test: in output, got: %s", out)
	}
}

func TestStdLogger_Errorf(t *testing.T) {
	out := capture(t, func(l Logger) { l.Errorf("db down: %s", "refused") })
	if !strings.Contains(out, "[ERROR] test:") {
		t.Fatalf("expected [ERROR] test: in output, got: %s", out)
	}
	if !strings.Contains(out, "db down: refused") {
		t.Fatalf("expected message in output, got: %s", out)
	}
}
