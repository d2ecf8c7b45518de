package pubschema

import (
	"bytes"
	"context"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source abstracts over polymorphic input documents. Decode materializes the
// document as an any value (objects as map[string]any, numbers as
// json.Number for JSON input) for schema-driven validation.
type Source interface {
	Decode() (any, error)
	Name() string // driver name, for diagnostics
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	FailFast bool  // stop on the first issue instead of aggregating
	MaxBytes int64 // reject inputs larger than this when > 0 (StreamParse)
}

// ParseFrom is the primary entry point. It decodes the Source into an any
// value and delegates validation to the Schema.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, Issues{Issue{Code: CodeParseError, Message: "nil schema"}}
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	v, err := src.Decode()
	if err != nil {
		if ii, ok := AsIssues(err); ok {
			return zero, ii
		}
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return s.Parse(ctx, v)
}

// StreamParse validates input read from r. When MaxBytes is set it enforces
// the size cap up front, otherwise it delegates directly to ParseFrom.
func StreamParse[T any](ctx context.Context, s Schema[T], r io.Reader, opts ...ParseOpt) (T, error) {
	if len(opts) > 0 && opts[len(opts)-1].MaxBytes > 0 {
		max := opts[len(opts)-1].MaxBytes
		lr := io.LimitReader(r, max+1)
		data, err := io.ReadAll(lr)
		if err != nil {
			var zero T
			return zero, Issues{Issue{Code: CodeParseError, Message: err.Error(), Cause: err}}
		}
		if int64(len(data)) > max {
			var zero T
			return zero, Issues{Issue{Code: CodeTruncated, Message: "max bytes exceeded"}}
		}
		return ParseFrom[T](ctx, s, JSONBytes(data), opts...)
	}
	return ParseFrom[T](ctx, s, JSONReader(r), opts...)
}

// ---- JSON source (goccy/go-json) ----

// JSONBytes wraps a JSON document held in memory.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// JSONReader wraps a JSON document read from r.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

type jsonSource struct{ r io.Reader }

func (s jsonSource) Name() string { return "go-json" }

func (s jsonSource) Decode() (any, error) {
	dec := j.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	if dec.More() {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "trailing data after document"}}
	}
	return v, nil
}

// ---- YAML source (gopkg.in/yaml.v3) ----

// YAMLBytes wraps a YAML document (for example a metadata sidecar file).
// Decoded values are normalized to the same shapes the JSON source produces
// so schemas do not need to care which driver read the input.
func YAMLBytes(b []byte) Source { return yamlSource{b: b} }

type yamlSource struct{ b []byte }

func (s yamlSource) Name() string { return "yaml" }

func (s yamlSource) Decode() (any, error) {
	var v any
	if err := yaml.Unmarshal(s.b, &v); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return normalizeYAML(v)
}

// normalizeYAML converts yaml.v3 decode shapes (map[string]any for string
// keys, map[any]any otherwise) into JSON-like map[string]any trees.
func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			nv, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: fmt.Sprintf("non-string key %v in mapping", k)}}
			}
			nv, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			nv, err := normalizeYAML(t[i])
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}
