package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestResourceAttributes(t *testing.T) {
	res := Resource()

	name, ok := res.Set().Value(attribute.Key("service.name"))
	assert.True(t, ok)
	assert.Equal(t, serviceName, name.AsString())

	host, ok := res.Set().Value(attribute.Key("host.name"))
	assert.True(t, ok)
	assert.NotEmpty(t, host.AsString())
}

func TestNoopTracerDoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	defer span.End()

	assert.False(t, span.IsRecording())
}

func TestTracerWithoutSetup(t *testing.T) {
	tracer := Tracer("engine")
	assert.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "engine.lock")
	span.End()
}
