// Package pipeline turns inline values and FASTA/plain-text files into a
// single ordered stream of inputs, and optionally fans the per-input work out
// over a pool of goroutines while keeping results in input order.
package pipeline
