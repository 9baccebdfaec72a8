package config

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/ticketlink/pkg/errors"
)

const schemaURL = "config.schema.json"

// compileSchema converts the embedded YAML schema to JSON and compiles it
func compileSchema() (*jsonschema.Schema, error) {
	var doc interface{}
	if err := yaml.Unmarshal(schemaYAML, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse config schema")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to convert config schema")
	}
	schema, err := jsonschema.CompileString(schemaURL, string(data))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to compile config schema")
	}
	return schema, nil
}

// validateDocument checks a merged configuration map against the schema
func validateDocument(raw map[string]interface{}) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	// normalize to plain JSON values; parsers hand out typed slices and ints
	data, err := json.Marshal(raw)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "configuration cannot be represented as JSON")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "configuration cannot be represented as JSON")
	}

	if err := schema.Validate(doc); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid configuration: %s", schemaMessage(err))
	}
	return nil
}

// schemaMessage flattens a validation error into "location: message" lines
func schemaMessage(err error) string {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var lines []string
	for _, leaf := range leaves(verr) {
		loc := leaf.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		lines = append(lines, loc+": "+leaf.Message)
	}
	return strings.Join(lines, "; ")
}

func leaves(verr *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(verr.Causes) == 0 {
		return []*jsonschema.ValidationError{verr}
	}
	var out []*jsonschema.ValidationError
	for _, c := range verr.Causes {
		out = append(out, leaves(c)...)
	}
	return out
}
