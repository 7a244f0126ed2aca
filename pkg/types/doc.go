// Package types defines the data passed through a merge invocation: the
// request a caller builds, the outcome it gets back, and the FS capability
// every stage reads and writes through.
package types
