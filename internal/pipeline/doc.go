// Package pipeline runs the report stages in order: load, merge,
// deduplicate, insert the identifier, classify and reorder.
//
// Stages are strictly sequential and each one finishes before the next
// starts. The pipeline never writes output; callers hand Result.Table to
// internal/writers.
package pipeline
