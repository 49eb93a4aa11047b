// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeList writes list as an indented JSON array. A nil list is written
// as [] so consumers never see null.
func EncodeList[T any](w io.Writer, list []T) error {
	if list == nil {
		list = []T{}
	}
	return EncodePretty(w, list)
}
