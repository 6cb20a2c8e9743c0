package worksheet

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serializer defines how to read and write a specific worksheet format.
type Serializer interface {
	// Parse reads from r and returns a Sheet.
	Parse(r io.Reader) (*Sheet, error)
	// Serialize converts the Sheet to bytes.
	Serialize(sheet Sheet) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
		".csv":  NewCSVSerializer(),
	}
}

// --- JSON Serializer ---

// JSONSerializer handles reading and writing JSON worksheets.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Parse(r io.Reader) (*Sheet, error) {
	var sheet Sheet
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sheet); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return &sheet, nil
}

func (s *JSONSerializer) Serialize(sheet Sheet) ([]byte, error) {
	return json.MarshalIndent(sheet, "", "  ")
}

// --- YAML Serializer ---

// YAMLSerializer handles reading and writing YAML worksheets.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Parse(r io.Reader) (*Sheet, error) {
	var sheet Sheet
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&sheet); err != nil {
		if errors.Is(err, io.EOF) {
			return &Sheet{}, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return &sheet, nil
}

func (s *YAMLSerializer) Serialize(sheet Sheet) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(sheet); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- CSV Serializer ---

// CSVSerializer handles worksheets laid out one exercise per row:
//
//	op,expect,error,arg1,arg2,arg3
//
// The header row is optional. Empty trailing argument cells are dropped so
// that rows can carry fewer arguments than the widest one.
//
// The layout has no place for Sheet.Title or Exercise.Name: Serialize drops
// both, and Load titles a CSV sheet after its file name. Use YAML or JSON to
// keep them.
type CSVSerializer struct{}

// NewCSVSerializer creates a new CSV serializer.
func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{}
}

var csvHeader = []string{"op", "expect", "error", "arg1", "arg2", "arg3"}

func (s *CSVSerializer) Parse(r io.Reader) (*Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}

	sheet := &Sheet{}
	for i, record := range records {
		if i == 0 && len(record) > 0 && strings.EqualFold(record[0], "op") {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("invalid csv: row %d has %d columns, want at least 3", i+1, len(record))
		}

		args := record[3:]
		for len(args) > 0 && args[len(args)-1] == "" {
			args = args[:len(args)-1]
		}

		sheet.Exercises = append(sheet.Exercises, Exercise{
			Op:     Op(record[0]),
			Expect: record[1],
			Error:  record[2],
			Args:   append([]string(nil), args...),
		})
	}
	return sheet, nil
}

func (s *CSVSerializer) Serialize(sheet Sheet) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, ex := range sheet.Exercises {
		row := append([]string{string(ex.Op), ex.Expect, ex.Error}, ex.Args...)
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
