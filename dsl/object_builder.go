package dsl

import (
	"context"
	"sort"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/i18n"
	js "github.com/pubgraph/pubschema/jsonschema"
)

type objectBuilder struct {
	fields        map[string]AnyAdapter
	required      map[string]struct{}
	unknownPolicy pubschema.UnknownPolicy
	refines       []objRefine
	buildErr      pubschema.Issues
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *objectBuilder {
	return &objectBuilder{
		fields:        map[string]AnyAdapter{},
		required:      map[string]struct{}{},
		unknownPolicy: pubschema.UnknownStrict,
	}
}

// Extend creates a builder pre-populated with the descriptor set of base.
// Extension is a value-level merge: fields registered afterwards override
// base entries on name collision. The base must be a schema produced by
// Object().Build(); anything else is a construction error surfaced by Build.
func Extend(base pubschema.Schema[map[string]any]) *objectBuilder {
	b := Object()
	os, ok := base.(*objectSchema)
	if !ok {
		b.buildErr = pubschema.Issues{pubschema.Issue{Path: "/", Code: pubschema.CodeParseError, Message: "Extend requires an object schema base"}}
		return b
	}
	for k, ad := range os.fields {
		b.fields[k] = ad
	}
	for k := range os.required {
		b.required[k] = struct{}{}
	}
	b.unknownPolicy = os.unknownPolicy
	b.refines = append(b.refines, os.refines...)
	return b
}

// Field registers a field with its adapter, overriding any inherited entry of
// the same name.
func (b *objectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	b.fields[name] = ad
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

// Default sets a default for the current field and exports it to JSON Schema.
func (f *fieldStep) Default(v any) *objectBuilder {
	ad := f.b.fields[f.name]
	// Apply default by parsing via the field schema to leverage Normalize/Validate/Refine
	ad.applyDefault = func(ctx context.Context) (any, error) { return ad.parse(ctx, v) }
	prev := ad.jsonSchema
	ad.jsonSchema = func() (*js.Schema, error) {
		if prev == nil {
			return &js.Schema{Default: v}, nil
		}
		s, err := prev()
		if err != nil {
			return nil, err
		}
		if s == nil {
			s = &js.Schema{}
		}
		s.Default = v
		return s, nil
	}
	f.b.fields[f.name] = ad
	return f.b
}

// Forward helpers to keep chaining ergonomics.
func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep      { return f.b.Field(name, ad) }
func (f *fieldStep) Require(names ...string) *objectBuilder           { return f.b.Require(names...) }
func (f *fieldStep) UnknownStrict() *objectBuilder                    { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *objectBuilder                     { return f.b.UnknownStrip() }
func (f *fieldStep) Build() (pubschema.Schema[map[string]any], error) { return f.b.Build() }
func (f *fieldStep) MustBuild() pubschema.Schema[map[string]any]      { return f.b.MustBuild() }
func (f *fieldStep) Refine(name string, fn func(context.Context, map[string]any) error) *objectBuilder {
	return f.b.Refine(name, fn)
}

// Require marks one or more fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.unknownPolicy = pubschema.UnknownStrict
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *objectBuilder) UnknownStrip() *objectBuilder {
	b.unknownPolicy = pubschema.UnknownStrip
	return b
}

// Refine adds an object-level refine function. It is executed after Normalize/ValidateValue.
func (b *objectBuilder) Refine(name string, fn func(context.Context, map[string]any) error) *objectBuilder {
	if fn == nil {
		return b
	}
	b.refines = append(b.refines, objRefine{name: name, fn: fn})
	return b
}

// Build validates the builder and returns a Schema.
func (b *objectBuilder) Build() (pubschema.Schema[map[string]any], error) {
	if len(b.buildErr) > 0 {
		return nil, b.buildErr
	}
	for n := range b.required {
		if _, ok := b.fields[n]; !ok {
			return nil, pubschema.Issues{pubschema.Issue{Path: "/" + n, Code: pubschema.CodeParseError, Message: i18n.T(pubschema.CodeParseError, nil), Hint: "required field has no adapter"}}
		}
	}
	// cache sorted keys for deterministic order without per-parse sorting
	kfs := make([]string, 0, len(b.fields))
	for k := range b.fields {
		kfs = append(kfs, k)
	}
	sort.Strings(kfs)
	return &objectSchema{fields: b.fields, required: b.required, unknownPolicy: b.unknownPolicy, refines: b.refines, sortedKeys: kfs}, nil
}

// MustBuild is like Build but panics on error. Schema construction happens
// once at process initialization, so a misuse here is a startup defect rather
// than a runtime validation failure.
func (b *objectBuilder) MustBuild() pubschema.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
