// Package engine contains the shift-register core. It never imports app, writers,
// cli, poly, or output; keep it domain-only.
//
// External outputs must not depend on the internal shape here — use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
