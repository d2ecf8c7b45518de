package dsl

import (
	"context"

	pubschema "github.com/pubgraph/pubschema"
	js "github.com/pubgraph/pubschema/jsonschema"
)

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper.
// It keeps the original schema to support default application and JSON Schema
// augmentation.
type AnyAdapter struct {
	parse         func(context.Context, any) (any, error)
	validateValue func(context.Context, any) error
	applyDefault  func(context.Context) (any, error)
	jsonSchema    func() (*js.Schema, error)
	orig          any
}

// anyAdapterFromSchema wraps a strongly typed Schema[T] as AnyAdapter for Field builders.
func anyAdapterFromSchema[T any](s pubschema.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		validateValue: func(ctx context.Context, v any) error {
			tv, ok := v.(T)
			if !ok {
				return pubschema.Issues{pubschema.Issue{Path: "/", Code: pubschema.CodeInvalidType, Message: "invalid field type"}}
			}
			return s.ValidateValue(ctx, tv)
		},
		jsonSchema: s.JSONSchema,
		orig:       s,
	}
}

// SchemaOf adapts an arbitrary typed schema to an AnyAdapter for use as an
// object field. The projected value keeps its concrete type T.
func SchemaOf[T any](s pubschema.Schema[T]) AnyAdapter { return anyAdapterFromSchema[T](s) }

// Orig returns the original underlying Schema[T] used to create this adapter.
// It is intended for advanced integrations and may change.
func (ad AnyAdapter) Orig() any { return ad.orig }

// Describe attaches a human-readable description to the field's JSON Schema
// projection. Descriptions survive object extension so generated docs stay
// complete for composed schemas.
func (ad AnyAdapter) Describe(desc string) AnyAdapter {
	prev := ad.jsonSchema
	out := ad
	out.jsonSchema = func() (*js.Schema, error) {
		s := &js.Schema{}
		if prev != nil {
			ps, err := prev()
			if err != nil {
				return nil, err
			}
			if ps != nil {
				s = ps
			}
		}
		s.Description = desc
		return s, nil
	}
	return out
}

// Nullable wraps an AnyAdapter to accept nulls (JSON null) for both parse and
// validate. When the input value is nil, parsing succeeds and returns nil.
func Nullable(ad AnyAdapter) AnyAdapter {
	prevParse := ad.parse
	prevValidate := ad.validateValue
	prevJSON := ad.jsonSchema
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		if prevParse == nil {
			return v, nil
		}
		return prevParse(ctx, v)
	}
	out.validateValue = func(ctx context.Context, v any) error {
		if v == nil {
			return nil
		}
		if prevValidate == nil {
			if prevParse == nil {
				return nil
			}
			_, err := prevParse(ctx, v)
			return err
		}
		return prevValidate(ctx, v)
	}
	out.jsonSchema = func() (*js.Schema, error) {
		if prevJSON == nil {
			return &js.Schema{}, nil
		}
		return prevJSON()
	}
	return out
}

// Nullable enables fluent chaining: g.StringOf[T]().Nullable()
func (ad AnyAdapter) Nullable() AnyAdapter { return Nullable(ad) }
