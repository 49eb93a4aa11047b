// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Buffered writers are pooled across streams; encoders are cheap and bound to
// a writer, so they are created per stream.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Stream writes each value from in as one compact JSON line and flushes once
// the channel is closed. On error the remaining values are not consumed.
func Stream[T any](out io.Writer, in <-chan T) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for v := range in {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
