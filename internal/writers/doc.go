// Package writers turns engine traces into serialized outputs.
//
// Design:
//   • Writers own the format dispatch; internal/output owns the rendering.
//   • Engine stays domain-only and never sees an io.Writer.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
