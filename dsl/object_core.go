package dsl

import (
	"context"
	"sort"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/i18n"
	js "github.com/pubgraph/pubschema/jsonschema"
)

type objectSchema struct {
	fields        map[string]AnyAdapter
	required      map[string]struct{}
	unknownPolicy pubschema.UnknownPolicy
	refines       []objRefine
	sortedKeys    []string
}

// Ensure objectSchema implements pubschema.Schema[map[string]any]
var _ pubschema.Schema[map[string]any] = (*objectSchema)(nil)

type objRefine struct {
	name string
	fn   func(context.Context, map[string]any) error
}

// sortedKnownKeys returns object field keys in ascending order for deterministic behavior.
func (o *objectSchema) sortedKnownKeys() []string {
	if o.sortedKeys != nil {
		return o.sortedKeys
	}
	kfs := make([]string, 0, len(o.fields))
	for k := range o.fields {
		kfs = append(kfs, k)
	}
	sort.Strings(kfs)
	o.sortedKeys = kfs
	return o.sortedKeys
}

// collectKnown parses known fields and applies defaults; every failing field
// contributes its own issues unless fail-fast is requested.
func (o *objectSchema) collectKnown(ctx context.Context, src map[string]any) (map[string]any, pubschema.Issues) {
	out := make(map[string]any, len(src))
	var iss pubschema.Issues
	for _, k := range o.sortedKnownKeys() {
		ad := o.fields[k]
		if val, exists := src[k]; exists {
			parsed, err := ad.parse(ctx, val)
			if err != nil {
				iss = pubschema.AppendIssues(iss, pubschema.RebaseIssues("/"+k, err)...)
				if pubschema.IsFailFast(ctx) {
					return out, iss
				}
				continue
			}
			out[k] = parsed
			continue
		}
		// missing: apply default if provided; otherwise enforce required
		if ad.applyDefault != nil {
			dv, err := ad.applyDefault(ctx)
			if err != nil {
				iss = pubschema.AppendIssues(iss, pubschema.RebaseIssues("/"+k, err)...)
				if pubschema.IsFailFast(ctx) {
					return out, iss
				}
			} else {
				out[k] = dv
			}
			continue
		}
		if _, req := o.required[k]; req {
			iss = pubschema.AppendIssues(iss, pubschema.Issue{Path: "/" + k, Code: pubschema.CodeRequired, Message: i18n.T(pubschema.CodeRequired, nil), Hint: "required property missing"})
			if pubschema.IsFailFast(ctx) {
				return out, iss
			}
		}
	}
	return out, iss
}

// collectUnknown processes unknown keys according to unknownPolicy.
func (o *objectSchema) collectUnknown(src map[string]any) pubschema.Issues {
	if o.unknownPolicy == pubschema.UnknownStrip {
		return nil
	}
	var iss pubschema.Issues
	// unknown keys in key-sorted order
	uks := make([]string, 0, len(src))
	for k := range src {
		if _, known := o.fields[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	for _, k := range uks {
		iss = pubschema.AppendIssues(iss, pubschema.Issue{Path: "/" + k, Code: pubschema.CodeUnknownKey, Message: i18n.T(pubschema.CodeUnknownKey, nil)})
	}
	return iss
}

func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, pubschema.Issues{pubschema.Issue{Path: "/", Code: pubschema.CodeInvalidType, Message: i18n.T(pubschema.CodeInvalidType, nil), Hint: "expected object"}}
	}
	out, iss := o.collectKnown(ctx, src)
	if pubschema.IsFailFast(ctx) && len(iss) > 0 {
		return nil, iss
	}
	if issUnknown := o.collectUnknown(src); len(issUnknown) > 0 {
		iss = pubschema.AppendIssues(iss, issUnknown...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	nn, err := pubschema.ApplyNormalize[map[string]any](ctx, out, o)
	if err != nil {
		return nil, err
	}
	if err := pubschema.ApplyRefine[map[string]any](ctx, nn, o); err != nil {
		return nil, err
	}
	return nn, nil
}

func (o *objectSchema) Validate(ctx context.Context, v any) error {
	src, ok := v.(map[string]any)
	if !ok {
		return pubschema.Issues{pubschema.Issue{Path: "/", Code: pubschema.CodeInvalidType, Message: i18n.T(pubschema.CodeInvalidType, nil), Hint: "expected object"}}
	}
	_, err := o.Parse(ctx, src)
	return err
}

func (o *objectSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	// validate known fields in key-sorted order for deterministic error selection
	for _, k := range o.sortedKnownKeys() {
		ad := o.fields[k]
		if val, ok := v[k]; ok {
			if err := ad.validateValue(ctx, val); err != nil {
				return pubschema.RebaseIssues("/"+k, err)
			}
		} else if _, req := o.required[k]; req {
			return pubschema.Issues{pubschema.Issue{Path: "/" + k, Code: pubschema.CodeRequired, Message: i18n.T(pubschema.CodeRequired, nil), Hint: "required property missing"}}
		}
	}
	return nil
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	for k, ad := range o.fields {
		if ad.jsonSchema != nil {
			if ps, err := ad.jsonSchema(); err == nil && ps != nil {
				props[k] = ps
				continue
			}
		}
		props[k] = &js.Schema{}
	}
	// Required list (sorted for deterministic output)
	req := make([]string, 0, len(o.required))
	for k := range o.required {
		req = append(req, k)
	}
	sort.Strings(req)
	var additional any
	switch o.unknownPolicy {
	case pubschema.UnknownStrict:
		additional = false
	case pubschema.UnknownStrip:
		// Runtime accepts then discards unknown keys, so JSON Schema should mark
		// them as accepted (true).
		additional = true
	}
	return &js.Schema{Type: "object", Properties: props, Required: req, AdditionalProperties: additional}, nil
}

// Refine implements pubschema.Refiner[map[string]any] using builder-registered hooks.
func (o *objectSchema) Refine(ctx context.Context, v map[string]any) error {
	if len(o.refines) == 0 {
		return nil
	}
	var iss pubschema.Issues
	for _, r := range o.refines {
		if r.fn == nil {
			continue
		}
		if err := r.fn(ctx, v); err != nil {
			if i2, ok := pubschema.AsIssues(err); ok {
				iss = pubschema.AppendIssues(iss, i2...)
			} else {
				iss = pubschema.AppendIssues(iss, pubschema.Issue{Path: "/", Code: "custom", Message: err.Error(), Cause: err})
			}
			if pubschema.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
