// Package recurrence derives per-number recurrence statistics from a history of
// lottery draws.
//
// The package is a pipeline of pure functions over value snapshots:
//
//	draws -> Frequencies
//	draws -> Compute (appearances, gaps, robust average, last seen, next date)
//	stats -> Predict
//	(predictions, target, tolerance) -> WithinTolerance
//
// Nothing here performs I/O or keeps state between calls, so every function is
// safe to call concurrently on independent inputs. Dates are handled as calendar
// days: the clock part of a time.Time is ignored.
package recurrence
