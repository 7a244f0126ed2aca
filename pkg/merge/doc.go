// Package merge implements single-label template inclusion.
//
// An invocation runs five stages in order:
//
//	resolve source -> transform -> read template -> substitute -> write
//
// The first three stages sit behind one recovery boundary: a failure there
// is printed on the Sink as "Error: <message>", recorded in the returned
// MergeOutcome, and Include returns a nil error. A failed write is never
// recovered; Include returns it so the caller decides what to do with the
// process.
//
// Source paths are existence-checked and produce "File does not exist"
// errors. Template paths are not: a missing template surfaces as whatever
// error the filesystem returns from ReadFile.
package merge
