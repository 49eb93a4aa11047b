package output

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"dnarle/pkg/api"
)

// WriteReportsMsgPack writes the reports as one MessagePack array, using the
// msgpack struct tags of pkg/api.
func WriteReportsMsgPack(w io.Writer, list []api.ReportV1) error {
	if list == nil {
		list = []api.ReportV1{}
	}
	return msgpack.NewEncoder(w).Encode(list)
}

// ReadReportsMsgPack is the inverse of WriteReportsMsgPack.
func ReadReportsMsgPack(r io.Reader) ([]api.ReportV1, error) {
	var list []api.ReportV1
	if err := msgpack.NewDecoder(r).Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}
