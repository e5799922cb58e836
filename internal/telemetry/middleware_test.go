package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/vanshika/bizbridge/internal/config"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func TestMiddlewareRecordsRouteAndStatus(t *testing.T) {
	rec := withRecorder(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /dashboard/deals/{dealId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	resp := httptest.NewRecorder()
	Middleware(mux).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/dashboard/deals/99", nil))

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != "GET /dashboard/deals/{dealId}" {
		t.Fatalf("unexpected span name %q", span.Name())
	}
	var status int64
	for _, kv := range span.Attributes() {
		if kv.Key == attribute.Key("http.response.status_code") {
			status = kv.Value.AsInt64()
		}
	}
	if status != http.StatusNotFound {
		t.Fatalf("expected status attribute 404, got %d", status)
	}
	if span.Status().Code == codes.Error {
		t.Fatalf("4xx should not mark the span as failed")
	}
}

func TestMiddlewareMarksServerErrors(t *testing.T) {
	rec := withRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/onboarding", nil))

	spans := rec.Ended()
	if len(spans) != 1 || spans[0].Status().Code != codes.Error {
		t.Fatalf("expected one errored span, got %+v", spans)
	}
}

func TestSetupWithoutEndpoint(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown, err := Setup(context.Background(), config.TelemetryConfig{ServiceName: "bizbridge-test"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
