// Package observability provides OpenTelemetry tracing bootstrap for
// applications embedding fetchkit.
//
// The transport package emits client spans when its Tracing flag is on;
// this package wires those spans to an OTLP/HTTP collector.
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
package observability
