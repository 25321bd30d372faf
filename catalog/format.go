package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/itemsearch/core"
)

// Format identifies the encoding of a catalog file.
type Format string

const (
	FormatJSON Format = "JSON"
	FormatYAML Format = "YAML"
)

var errNotAList = errors.New("expected a list of records")

// FormatForPath picks the catalog format from a file extension.
// Anything other than .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// rawRecord is one undecoded catalog entry. Keys match exactly and only
// string values are accepted, whatever the file format.
type rawRecord interface {
	// field returns nil when name is absent or null.
	field(name string) (*string, error)
}

type jsonRecord map[string]json.RawMessage

func (r jsonRecord) field(name string) (*string, error) {
	raw, ok := r[name]
	if !ok {
		return nil, nil
	}
	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fieldTypeError(name)
	}
	return value, nil
}

type yamlRecord map[string]yaml.Node

func (r yamlRecord) field(name string) (*string, error) {
	node, ok := r[name]
	if !ok {
		return nil, nil
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return nil, fieldTypeError(name)
	}
	value := node.Value
	return &value, nil
}

func fieldTypeError(name string) error {
	return fmt.Errorf("%w: %w: %s", core.ErrInvalidRecord, core.ErrFieldType, name)
}

func toRecord(r rawRecord) (*core.Record, error) {
	var rec core.Record
	fields := []struct {
		name string
		dst  *string
	}{
		{"title", &rec.Title},
		{"subtitle", &rec.Subtitle},
		{"arg", &rec.Arg},
		{"imagefile", &rec.ImageFile},
	}
	for _, f := range fields {
		value, err := r.field(f.name)
		if err != nil {
			return nil, err
		}
		if *f.dst, err = core.RequireField(f.name, value); err != nil {
			return nil, err
		}
	}
	if err := core.ValidateRecord(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// decodeList parses data into its entries. A null entry is left as a nil
// rawRecord.
func decodeList(data []byte, format Format) ([]rawRecord, error) {
	var list []rawRecord
	switch format {
	case FormatYAML:
		var raw *[]yamlRecord
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, errNotAList
		}
		list = make([]rawRecord, len(*raw))
		for i, r := range *raw {
			if r != nil {
				list[i] = r
			}
		}
	default:
		var raw *[]jsonRecord
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, errNotAList
		}
		list = make([]rawRecord, len(*raw))
		for i, r := range *raw {
			if r != nil {
				list[i] = r
			}
		}
	}
	return list, nil
}

// decode parses data as a record list in the given format.
// Every error it returns means the data is malformed.
func decode(data []byte, format Format) ([]*core.Record, error) {
	list, err := decodeList(data, format)
	if err != nil {
		return nil, err
	}

	records := make([]*core.Record, 0, len(list))
	for i, r := range list {
		if r == nil {
			return nil, fmt.Errorf("record at index %d: %w: record is null", i, core.ErrInvalidRecord)
		}
		record, err := toRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record at index %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}
