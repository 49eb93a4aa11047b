// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/colorprofile"
)

// Options carries presentation switches shared by all formats.
type Options struct {
	Header bool
	Pretty bool

	// Color styles pretty text for a terminal with the given profile.
	Color   bool
	Profile colorprofile.Profile
}

// StreamFunc consumes values until in is closed.
type StreamFunc[T any] func(w io.Writer, in <-chan T, opt Options) error

// Registry maps an output format to its writer. Formats are registered in
// init() blocks; registration is idempotent, last wins.
type Registry[T any] struct {
	kind string
	fns  map[string]StreamFunc[T]
}

func NewRegistry[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, fns: map[string]StreamFunc[T]{}}
}

func (r *Registry[T]) Register(format string, fn StreamFunc[T]) { r.fns[format] = fn }

// RegisterBatch registers a writer that needs every value before writing
// (JSON arrays, YAML documents, MessagePack arrays).
func (r *Registry[T]) RegisterBatch(format string, fn func(io.Writer, []T) error) {
	r.fns[format] = func(w io.Writer, in <-chan T, _ Options) error {
		return fn(w, collect(in))
	}
}

// Formats lists the registered formats, sorted.
func (r *Registry[T]) Formats() []string {
	out := make([]string, 0, len(r.fns))
	for f := range r.fns {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches a complete list to the writer for format.
func (r *Registry[T]) Write(format string, w io.Writer, list []T, opt Options) error {
	fn, ok := r.fns[format]
	if !ok {
		return r.unknown(format)
	}
	ch := make(chan T, len(list))
	for _, v := range list {
		ch <- v
	}
	close(ch)
	return fn(w, ch, opt)
}

// Start spins up a writer goroutine for format. Send values on the returned
// channel, close it, then read exactly one error from done. An unknown format
// drains the input and reports an error.
func (r *Registry[T]) Start(out io.Writer, format string, opt Options, bufSize int) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		fn, ok := r.fns[format]
		if !ok {
			for range in {
			}
			done <- r.unknown(format)
			return
		}
		err := fn(out, in, opt)
		if err != nil {
			// Keep senders from blocking after a write failure.
			for range in {
			}
		}
		done <- err
	}()
	return in, done
}

func (r *Registry[T]) unknown(format string) error {
	return fmt.Errorf("unknown %s format %q (no writer registered)", r.kind, format)
}

func collect[T any](in <-chan T) []T {
	var buf []T
	for v := range in {
		buf = append(buf, v)
	}
	return buf
}
