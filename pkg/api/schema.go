// pkg/api/schema.go
package api

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ReportV1Schema is the JSON Schema (draft 2020-12) for ReportV1. It accepts
// a single object (one JSONL line) or an array (the json format).
//
//go:embed schema/report_v1.json
var ReportV1Schema []byte

// DecodedV1Schema is the matching schema for DecodedV1.
//
//go:embed schema/decoded_v1.json
var DecodedV1Schema []byte

var (
	reportSchema  = sync.OnceValues(func() (*jsonschema.Schema, error) { return compile("report_v1.json", ReportV1Schema) })
	decodedSchema = sync.OnceValues(func() (*jsonschema.Schema, error) { return compile("decoded_v1.json", DecodedV1Schema) })
)

func compile(name string, src []byte) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, err
	}
	return c.Compile(name)
}

// ValidateReportJSON checks JSON-encoded ReportV1 data against ReportV1Schema.
func ValidateReportJSON(data []byte) error { return validateJSON(reportSchema, data) }

// ValidateDecodedJSON checks JSON-encoded DecodedV1 data against DecodedV1Schema.
func ValidateDecodedJSON(data []byte) error { return validateJSON(decodedSchema, data) }

func validateJSON(schema func() (*jsonschema.Schema, error), data []byte) error {
	sch, err := schema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return sch.Validate(inst)
}
