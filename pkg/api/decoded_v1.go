// pkg/api/decoded_v1.go
package api

// DecodedV1 is the stable schema for one decoded token stream.
type DecodedV1 struct {
	ID         string `json:"id" yaml:"id" msgpack:"id"`
	Sequence   string `json:"sequence" yaml:"sequence" msgpack:"sequence"`
	Length     int    `json:"length" yaml:"length" msgpack:"length"`
	Runs       int    `json:"runs" yaml:"runs" msgpack:"runs"`
	Tokens     string `json:"tokens,omitempty" yaml:"tokens,omitempty" msgpack:"tokens,omitempty"`
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty" msgpack:"source_file,omitempty"`
}
