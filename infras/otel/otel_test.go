package otel_test

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hotel-test"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Test")
	assert.NotNil(t, ctx)

	scope.SetAttribute("hotel.id", 1)
	scope.AddEvent("checked")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}

func recordSpan(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "op")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantEvent  string
	}{
		{
			name:       "rejection is an event",
			err:        fmt.Errorf("failed to book room: %w", failure.AlreadyBooked),
			wantStatus: codes.Unset,
			wantEvent:  otel.EventRejected,
		},
		{
			name:       "not found is an event",
			err:        failure.NotFound("hotel"),
			wantStatus: codes.Unset,
			wantEvent:  otel.EventRejected,
		},
		{
			name:       "bad input is an event",
			err:        failure.InputFormat("hotel ID is required"),
			wantStatus: codes.Unset,
			wantEvent:  otel.EventRejected,
		},
		{
			name:       "statement failure marks the span",
			err:        failure.Statement(errors.New("relation does not exist")),
			wantStatus: codes.Error,
			wantEvent:  "exception",
		},
		{
			name:       "plain error marks the span",
			err:        errors.New("boom"),
			wantStatus: codes.Error,
			wantEvent:  "exception",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := recordSpan(t, func(scope otel.Scope) {
				scope.TraceIfError(tt.err)
			})

			assert.Equal(t, tt.wantStatus, span.Status().Code)
			require.Len(t, span.Events(), 1)
			assert.Equal(t, tt.wantEvent, span.Events()[0].Name)
		})
	}
}

func TestScope_SetAttribute(t *testing.T) {
	span := recordSpan(t, func(scope otel.Scope) {
		scope.SetAttribute("booked", true)
		scope.SetAttribute("room", "101")
		scope.SetAttribute("hotel.id", 3)
		scope.SetAttribute("user.id", int64(7))
		scope.SetAttribute("price", 12.5)
		scope.SetAttribute("tags", []string{"a", "b"})
	})

	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Bool("booked", true),
		attribute.String("room", "101"),
		attribute.Int("hotel.id", 3),
		attribute.Int64("user.id", 7),
		attribute.Float64("price", 12.5),
		attribute.String("tags", "[a b]"),
	}, span.Attributes())
}
