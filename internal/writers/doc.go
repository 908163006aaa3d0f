// Package writers turns a finished table into bytes on disk or stdout.
//
// Design:
//   • Codecs live in internal/output; writers only dispatch by format name.
//   • Destinations are paths; "-" means stdout, where a closed pipe is not an error.
//   • Run summaries go through pkg/api (v1) for a stable field layout.
package writers
