package query

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPlan is returned when a plan document cannot be turned into a
// pipeline.
var ErrInvalidPlan = errors.New("invalid plan")

// DefaultExtractor is the extractor name used by plan steps without a "by" key.
const DefaultExtractor = "text"

// ExtractorResolver returns the extractor registered under name.
type ExtractorResolver func(name string) (TextExtractor, error)

type planFile struct {
	Steps []planStep `yaml:"steps"`
}

// planStep holds exactly one operation key.
type planStep struct {
	Order      string     `yaml:"order"`
	StartsWith *string    `yaml:"startsWith"`
	EndsWith   *string    `yaml:"endsWith"`
	GTE        *int       `yaml:"gte"`
	LTE        *int       `yaml:"lte"`
	Limit      *planLimit `yaml:"limit"`

	By        string `yaml:"by"`
	Collation string `yaml:"collation"`
}

type planLimit struct {
	Index int  `yaml:"index"`
	Count *int `yaml:"count"`
}

// LoadPlan reads a YAML plan file.
func LoadPlan(filename string, resolve ExtractorResolver) (Pipeline, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	return ParsePlan(data, resolve)
}

// ParsePlan builds a pipeline from a YAML document of the form
//
//	steps:
//	  - order: asc
//	    by: text
//	  - startsWith: "a"
//	  - limit: {index: 1, count: 2}
//
// Each step names exactly one of order, startsWith, endsWith, gte, lte, or
// limit. An empty document yields an empty pipeline.
func ParsePlan(data []byte, resolve ExtractorResolver) (Pipeline, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f planFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Pipeline{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	p := make(Pipeline, 0, len(f.Steps))
	for i, step := range f.Steps {
		cmd, err := step.command(resolve)
		if err != nil {
			return nil, fmt.Errorf("%w: step %d: %w", ErrInvalidPlan, i+1, err)
		}
		p = append(p, cmd)
	}
	return p, nil
}

func (s planStep) command(resolve ExtractorResolver) (Command, error) {
	ops := 0
	if s.Order != "" {
		ops++
	}
	for _, set := range []bool{s.StartsWith != nil, s.EndsWith != nil, s.GTE != nil, s.LTE != nil, s.Limit != nil} {
		if set {
			ops++
		}
	}
	if ops != 1 {
		return nil, fmt.Errorf("want exactly one operation, got %d", ops)
	}
	if s.Collation != "" && s.Order == "" {
		return nil, errors.New("collation only applies to order")
	}

	if s.Limit != nil {
		if s.By != "" {
			return nil, errors.New("limit does not take an extractor")
		}
		if s.Limit.Count == nil {
			return nil, errors.New("limit needs a count")
		}
		return NewLimitAt(s.Limit.Index, *s.Limit.Count), nil
	}

	name := s.By
	if name == "" {
		name = DefaultExtractor
	}
	if resolve == nil {
		return nil, fmt.Errorf("no resolver for extractor %q", name)
	}
	ext, err := resolve(name)
	if err != nil {
		return nil, err
	}

	switch {
	case s.StartsWith != nil:
		return NewStartsWithText(ext, *s.StartsWith), nil
	case s.EndsWith != nil:
		return NewEndsWithText(ext, *s.EndsWith), nil
	case s.GTE != nil:
		return NewGTEByText(ext, *s.GTE), nil
	case s.LTE != nil:
		return NewLTEByText(ext, *s.LTE), nil
	}

	var opts []OrderOption
	if s.Collation != "" {
		tag, err := language.Parse(s.Collation)
		if err != nil {
			return nil, fmt.Errorf("collation %q: %w", s.Collation, err)
		}
		opts = append(opts, WithCollation(tag))
	}

	switch s.Order {
	case "asc":
		return NewOrderByTextAsc(ext, opts...), nil
	case "desc":
		return NewOrderByTextDesc(ext, opts...), nil
	default:
		return nil, fmt.Errorf("unknown order %q", s.Order)
	}
}
