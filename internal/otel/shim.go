//go:build no_otel

package otel

import (
	"context"
)

type FakeTracer struct{}
type FakeSpan struct{}
type FakeAttribute struct{}

func Tracer(name string) FakeTracer {
	return FakeTracer{}
}

func String(string, string) FakeAttribute {
	return FakeAttribute{}
}

func Bool(string, bool) FakeAttribute {
	return FakeAttribute{}
}

func (t FakeTracer) Start(ctx context.Context, _ string) (context.Context, FakeSpan) {
	return ctx, FakeSpan{}
}

func (s FakeSpan) SetAttributes(...FakeAttribute) {}

func (s FakeSpan) End() {}
