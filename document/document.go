package document

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/timewindow"
	"gopkg.in/yaml.v3"
)

// Layouts tried, in order, for endpoints given as timestamps. Layouts without a zone
// are read in the local time zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Document is a list of raw window inputs, optionally with its own join threshold.
//
//	threshold: 60
//	windows:
//	  - "08:00:00 - 09:00:00"
//	  - {start: 32400, end: 36000}
//	  - {start: "2024-05-01T09:00:00", duration: 3600}
type Document struct {
	Threshold *float64 `yaml:"threshold"`
	Windows   []Entry  `yaml:"windows"`
}

// Entry is one element of a document's window list.
type Entry struct {
	input any
}

// Decode parses a YAML or JSON document.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrap(err, "decoding document")
	}
	return doc, nil
}

// Inputs returns the entries in the form timewindow.New accepts.
func (d Document) Inputs() []any {
	inputs := make([]any, len(d.Windows))
	for idx, e := range d.Windows {
		inputs[idx] = e.input
	}
	return inputs
}

// ThresholdOr returns the document's own threshold, or fallback if it has none.
func (d Document) ThresholdOr(fallback float64) float64 {
	if d.Threshold != nil {
		return *d.Threshold
	}
	return fallback
}

func (e Entry) Input() any {
	return e.input
}

// UnmarshalYAML keeps strings as text windows and mappings as timewindow.Fields. Any
// other scalar is kept as is so that building a window from it fails.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!str" {
			e.input = node.Value
			return nil
		}
		var raw any
		if err := node.Decode(&raw); err != nil {
			return err
		}
		e.input = raw
		return nil

	case yaml.MappingNode:
		var raw struct {
			Start    *endpoint `yaml:"start"`
			End      *endpoint `yaml:"end"`
			Duration *float64  `yaml:"duration"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}

		fields := timewindow.Fields{Duration: raw.Duration}
		if raw.Start != nil {
			fields.Start = &raw.Start.offset
		}
		if raw.End != nil {
			fields.End = &raw.End.offset
		}
		e.input = fields
		return nil
	}

	return errors.Newf("line %d: a window must be a string or a mapping", node.Line)
}

type endpoint struct {
	offset timewindow.Offset
}

func (p *endpoint) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf("line %d: expected seconds or a timestamp", node.Line)
	}

	var seconds float64
	if err := node.Decode(&seconds); err == nil {
		p.offset = timewindow.Seconds(seconds)
		return nil
	}

	value := strings.TrimSpace(node.Value)
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			p.offset = timewindow.At(t)
			return nil
		}
	}
	return errors.Newf("line %d: %q is neither seconds nor a timestamp", node.Line, node.Value)
}
