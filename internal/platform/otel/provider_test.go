package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/shipcaptaincrew/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("SCC_OTEL_ENDPOINT", "")
	t.Setenv("SCC_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("SCC_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("SCC_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsMalformedEnabledFlag(t *testing.T) {
	t.Setenv("SCC_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("SCC_OTEL_ENABLED", "maybe")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err == nil {
		t.Fatal("expected error for malformed SCC_OTEL_ENABLED")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address; no spans are recorded so nothing is exported.
	t.Setenv("SCC_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("SCC_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
