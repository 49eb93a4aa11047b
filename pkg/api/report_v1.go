// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL/YAML/MessagePack schema for one encoded
// sequence. Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	ID             string        `json:"id" yaml:"id" msgpack:"id"`
	Encoded        string        `json:"encoded" yaml:"encoded" msgpack:"encoded"`
	OriginalLength int           `json:"original_length" yaml:"original_length" msgpack:"original_length"`
	EncodedLength  int           `json:"encoded_length" yaml:"encoded_length" msgpack:"encoded_length"`
	Ratio          *float64      `json:"ratio" yaml:"ratio" msgpack:"ratio"`       // null when original_length is 0
	Efficient      bool          `json:"efficient" yaml:"efficient" msgpack:"efficient"`
	Verdict        string        `json:"verdict" yaml:"verdict" msgpack:"verdict"` // "efficient" | "not efficient"
	Frequencies    FrequenciesV1 `json:"frequencies" yaml:"frequencies" msgpack:"frequencies"`
	Runs           int           `json:"runs" yaml:"runs" msgpack:"runs"`
	LongestRun     *RunV1        `json:"longest_run,omitempty" yaml:"longest_run,omitempty" msgpack:"longest_run,omitempty"`
	GCContent      *float64      `json:"gc_content,omitempty" yaml:"gc_content,omitempty" msgpack:"gc_content,omitempty"`
	Entropy        float64       `json:"entropy" yaml:"entropy" msgpack:"entropy"`
	Sequence       string        `json:"sequence,omitempty" yaml:"sequence,omitempty" msgpack:"sequence,omitempty"`
	SourceFile     string        `json:"source_file,omitempty" yaml:"source_file,omitempty" msgpack:"source_file,omitempty"`
}

// FrequenciesV1 keeps the canonical A, T, C, G field order on the wire.
type FrequenciesV1 struct {
	A int `json:"A" yaml:"A" msgpack:"A"`
	T int `json:"T" yaml:"T" msgpack:"T"`
	C int `json:"C" yaml:"C" msgpack:"C"`
	G int `json:"G" yaml:"G" msgpack:"G"`
}

type RunV1 struct {
	Base  string `json:"base" yaml:"base" msgpack:"base"`
	Count int    `json:"count" yaml:"count" msgpack:"count"`
}
