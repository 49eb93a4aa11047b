// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"dnarle/pkg/api"
)

// RatioText formats a wire ratio with two decimals, or "n/a" when undefined.
func RatioText(r *float64) string {
	if r == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*r, 'f', 2, 64)
}

// FormatReportRowTSV returns one report row (no trailing newline).
func FormatReportRowTSV(v api.ReportV1) string {
	f := v.Frequencies
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%s\t%s\t%d\t%d\t%d\t%d",
		v.ID, v.Encoded, v.OriginalLength, v.EncodedLength,
		RatioText(v.Ratio), v.Verdict,
		f.A, f.T, f.C, f.G,
	)
}

// RenderReportPretty renders a human-readable block for one report.
func RenderReportPretty(v api.ReportV1, th Theme) string {
	var b strings.Builder
	b.WriteString(th.render(th.id, "> "+v.ID))
	if v.SourceFile != "" {
		b.WriteString(th.render(th.dim, " ("+v.SourceFile+")"))
	}
	b.WriteByte('\n')
	if v.Sequence != "" {
		fmt.Fprintf(&b, "Input:   %s\n", v.Sequence)
	}
	fmt.Fprintf(&b, "Encoded: %s\n", v.Encoded)
	fmt.Fprintf(&b, "Original Length: %d | Encoded Length: %d | Compression Ratio: %s\n",
		v.OriginalLength, v.EncodedLength, RatioText(v.Ratio))
	if v.Efficient {
		b.WriteString(th.render(th.good, "Compression efficient"))
	} else {
		b.WriteString(th.render(th.bad, "Compression NOT efficient (low repetition)"))
	}
	b.WriteByte('\n')
	f := v.Frequencies
	fmt.Fprintf(&b, "Bases: A=%d T=%d C=%d G=%d", f.A, f.T, f.C, f.G)
	if v.GCContent != nil {
		fmt.Fprintf(&b, " | GC=%.2f%%", *v.GCContent*100)
	}
	fmt.Fprintf(&b, " | runs=%d", v.Runs)
	if v.LongestRun != nil {
		fmt.Fprintf(&b, " (longest %s%d)", v.LongestRun.Base, v.LongestRun.Count)
	}
	b.WriteByte('\n')
	return b.String()
}

func writeReportText(w io.Writer, v api.ReportV1, pretty, first bool, th Theme) error {
	var err error
	if pretty {
		if !first {
			if _, err = io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, RenderReportPretty(v, th))
	} else {
		_, err = fmt.Fprintln(w, FormatReportRowTSV(v))
	}
	return err
}

// StreamReportsText writes reports as they arrive: TSV rows, or pretty
// blocks separated by blank lines. The header is skipped in pretty mode.
func StreamReportsText(w io.Writer, in <-chan api.ReportV1, header, pretty bool, th Theme) error {
	if header && !pretty {
		if _, err := fmt.Fprintln(w, ReportTSVHeader); err != nil {
			return err
		}
	}
	first := true
	for v := range in {
		if err := writeReportText(w, v, pretty, first, th); err != nil {
			return err
		}
		first = false
	}
	return nil
}

// WriteReportsText is the slice form of StreamReportsText.
func WriteReportsText(w io.Writer, list []api.ReportV1, header, pretty bool, th Theme) error {
	ch := make(chan api.ReportV1, len(list))
	for _, v := range list {
		ch <- v
	}
	close(ch)
	return StreamReportsText(w, ch, header, pretty, th)
}

// FormatDecodedRowTSV returns one decoded row (no trailing newline).
func FormatDecodedRowTSV(v api.DecodedV1) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s", v.ID, v.Length, v.Runs, v.Sequence)
}

// StreamDecodedText writes decoded rows; in pretty mode it prints the
// sequence with its length, one block per input.
func StreamDecodedText(w io.Writer, in <-chan api.DecodedV1, header, pretty bool, th Theme) error {
	if header && !pretty {
		if _, err := fmt.Fprintln(w, DecodedTSVHeader); err != nil {
			return err
		}
	}
	for v := range in {
		var err error
		if pretty {
			_, err = fmt.Fprintf(w, "%s\nDecoded: %s\nLength:  %d (%d runs)\n",
				th.render(th.id, "> "+v.ID), v.Sequence, v.Length, v.Runs)
		} else {
			_, err = fmt.Fprintln(w, FormatDecodedRowTSV(v))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
