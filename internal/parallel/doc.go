// Package parallel provides the worker pool used to evaluate independent
// kernel instances concurrently.
//
// Kernel evaluation is pure CPU work with no suspension points, so the pool
// is a fixed set of goroutines fed from one shared queue. Each work item
// owns its kernel exclusively; the pool never shares mutable state between
// items.
package parallel
