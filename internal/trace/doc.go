// Package trace records what the vinculum CLI does while converting values.
//
// Tracing is off unless requested on the command line:
//
//	vinculum decode --trace=- --trace-level=debug X̅X̅V̅CDLIX
//
// # Tracers
//
//   - Nop: used whenever tracing is disabled
//   - StreamTracer: writes each event as it happens (text or NDJSON)
//   - RingTracer: keeps the most recent events and dumps them when a
//     conversion fails
//   - MultiTracer: fans out to several tracers
//
// # Scopes
//
//   - ScopeCommand: one CLI command
//   - ScopeItem: one converted input
//   - ScopeToken: per glyph detail of a decode
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeItem, "decode", 0)
//	defer span.End("")
package trace
