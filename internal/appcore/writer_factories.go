package appcore

import (
	"io"

	"dnarle/internal/writers"
	"dnarle/pkg/api"
)

// ---------------- Report writer ----------------

type ReportWriterFactory struct {
	Format string
	Opt    writers.Options
}

func NewReportWriterFactory(format string, opt writers.Options) ReportWriterFactory {
	return ReportWriterFactory{Format: format, Opt: opt}
}

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- api.ReportV1, <-chan error) {
	return writers.Reports.Start(out, w.Format, w.Opt, bufSize)
}

// ---------------- Decoded writer ----------------

type DecodedWriterFactory struct {
	Format string
	Opt    writers.Options
}

func NewDecodedWriterFactory(format string, opt writers.Options) DecodedWriterFactory {
	return DecodedWriterFactory{Format: format, Opt: opt}
}

func (w DecodedWriterFactory) Start(out io.Writer, bufSize int) (chan<- api.DecodedV1, <-chan error) {
	return writers.Decoded.Start(out, w.Format, w.Opt, bufSize)
}
