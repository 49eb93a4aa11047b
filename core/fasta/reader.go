// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID  string
	Seq []byte
}

// StreamCtx parses FASTA from r and calls emit once per record, in order.
// Sequence lines are trimmed and concatenated. Content before the first
// header (or a file with no header at all) becomes a record named defaultID.
// Lines starting with ';' are comments.
//
// Cancellation via ctx is checked between lines.
func StreamCtx(ctx context.Context, r io.Reader, defaultID string, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id      string
		open    bool
		seq     []byte
		lineNum int
	)
	flush := func() error {
		if !open {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNum++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, open, seq = parseHeaderID(line[1:]), true, seq[:0]
			if id == "" {
				id = fmt.Sprintf("%s_%d", defaultID, lineNum)
			}
			continue
		}
		if !open {
			id, open = defaultID, true
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path (see Open) and streams its records. Records of a
// headerless file are named after the file.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamCtx(ctx, rc, DefaultID(path), emit)
}

// DefaultID derives a record name from a file path ("stdin" for "-").
func DefaultID(path string) string {
	if path == "-" || path == "" {
		return "stdin"
	}
	base := filepath.Base(path)
	for _, ext := range []string{".gz", ".fasta", ".fa", ".fna", ".txt", ".rle"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
