package output

import (
	"fmt"
	"io"
	"strings"

	"dnarle/pkg/api"
)

// wrap splits s into lines of at most width characters.
func wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/width)
	for off := 0; off < len(s); off += width {
		end := off + width
		if end > len(s) {
			end = len(s)
		}
		if off > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s[off:end])
	}
	return b.String()
}

// StreamReportsFASTA writes each token stream as a FASTA record so the file
// can be fed back to dnarle-decode. Header metadata follows the ID.
func StreamReportsFASTA(w io.Writer, in <-chan api.ReportV1) error {
	for v := range in {
		if _, err := fmt.Fprintf(w,
			">%s len=%d encoded_len=%d ratio=%s\n%s\n",
			v.ID, v.OriginalLength, v.EncodedLength, RatioText(v.Ratio),
			wrap(v.Encoded, FASTAWidth),
		); err != nil {
			return err
		}
	}
	return nil
}

// StreamDecodedFASTA writes decoded sequences as wrapped FASTA records.
func StreamDecodedFASTA(w io.Writer, in <-chan api.DecodedV1) error {
	for v := range in {
		if _, err := fmt.Fprintf(w, ">%s len=%d\n%s\n", v.ID, v.Length, wrap(v.Sequence, FASTAWidth)); err != nil {
			return err
		}
	}
	return nil
}
