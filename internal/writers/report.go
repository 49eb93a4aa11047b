package writers

import (
	"io"

	"dnarle/internal/jsonlutil"
	"dnarle/internal/output"
	"dnarle/pkg/api"
)

// Reports holds the writers for dnarle (encode) output.
var Reports = NewRegistry[api.ReportV1]("report")

// Decoded holds the writers for dnarle-decode output.
var Decoded = NewRegistry[api.DecodedV1]("decoded")

func init() {
	Reports.Register(output.FormatText, func(w io.Writer, in <-chan api.ReportV1, opt Options) error {
		w, th := themed(w, opt)
		return output.StreamReportsText(w, in, opt.Header, opt.Pretty, th)
	})
	Reports.Register(output.FormatJSONL, streamJSONL[api.ReportV1])
	Reports.Register(output.FormatFASTA, func(w io.Writer, in <-chan api.ReportV1, _ Options) error {
		return output.StreamReportsFASTA(w, in)
	})
	Reports.RegisterBatch(output.FormatJSON, output.WriteReportsJSON)
	Reports.RegisterBatch(output.FormatYAML, func(w io.Writer, list []api.ReportV1) error {
		if list == nil {
			list = []api.ReportV1{}
		}
		return output.WriteYAML(w, list)
	})
	Reports.RegisterBatch(output.FormatMsgPack, output.WriteReportsMsgPack)

	Decoded.Register(output.FormatText, func(w io.Writer, in <-chan api.DecodedV1, opt Options) error {
		w, th := themed(w, opt)
		return output.StreamDecodedText(w, in, opt.Header, opt.Pretty, th)
	})
	Decoded.Register(output.FormatJSONL, streamJSONL[api.DecodedV1])
	Decoded.Register(output.FormatFASTA, func(w io.Writer, in <-chan api.DecodedV1, _ Options) error {
		return output.StreamDecodedFASTA(w, in)
	})
	Decoded.RegisterBatch(output.FormatJSON, output.WriteDecodedJSON)
	Decoded.RegisterBatch(output.FormatYAML, func(w io.Writer, list []api.DecodedV1) error {
		if list == nil {
			list = []api.DecodedV1{}
		}
		return output.WriteYAML(w, list)
	})
}

// streamJSONL writes one compact JSON object per line.
func streamJSONL[T any](w io.Writer, in <-chan T, _ Options) error {
	return jsonlutil.Stream(w, in)
}

// themed picks the pretty-text theme. Color only applies to pretty blocks;
// TSV rows stay plain so they remain machine-readable.
func themed(w io.Writer, opt Options) (io.Writer, output.Theme) {
	if !opt.Pretty || !opt.Color {
		return w, output.Theme{}
	}
	return output.ColorWriter(w, opt.Profile), output.NewTheme()
}
