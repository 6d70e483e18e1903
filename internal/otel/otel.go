//go:build !no_otel

// Package otel wraps the OpenTelemetry tracer,
// build with the no_otel tag to remove it.
package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

func String(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

func Bool(key string, value bool) attribute.KeyValue {
	return attribute.Bool(key, value)
}
