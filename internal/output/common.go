package output

// Output formats accepted by --output.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatYAML    = "yaml"
	FormatMsgPack = "msgpack"
	FormatFASTA   = "fasta"
)

// ReportFormats are the formats dnarle can emit.
var ReportFormats = []string{FormatText, FormatJSON, FormatJSONL, FormatYAML, FormatMsgPack, FormatFASTA}

// DecodedFormats are the formats dnarle-decode can emit.
var DecodedFormats = []string{FormatText, FormatJSON, FormatJSONL, FormatYAML, FormatFASTA}

// ReportTSVHeader is the canonical header row for text/TSV report output.
// Keep this as the single source of truth; all writers should use it.
const ReportTSVHeader = "id\tencoded\toriginal_length\tencoded_length\tratio\tverdict\tA\tT\tC\tG"

// DecodedTSVHeader is the header row for text/TSV decoded output.
const DecodedTSVHeader = "id\tlength\truns\tsequence"

// FASTAWidth is the line width for wrapped FASTA sequences.
const FASTAWidth = 60
