package dsl

import (
	"context"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/i18n"
	js "github.com/pubgraph/pubschema/jsonschema"
)

// StringBuilder exposes chaining options for string schemas while implementing Schema[string].
type StringBuilder interface {
	pubschema.Schema[string]
	Min(n int) StringBuilder
	Max(n int) StringBuilder
}

// String returns the minimal string schema implementation.
func String() StringBuilder { return &stringSchema{minLen: -1, maxLen: -1} }

// Bool returns the minimal bool schema implementation.
func Bool() pubschema.Schema[bool] { return boolSchema{} }

type stringSchema struct {
	minLen int
	maxLen int
}

// Min sets the minimum length (runes are not distinguished; length is in bytes).
func (s *stringSchema) Min(n int) StringBuilder { s.minLen = n; return s }

// Max sets the maximum length.
func (s *stringSchema) Max(n int) StringBuilder { s.maxLen = n; return s }

func (s *stringSchema) Parse(ctx context.Context, v any) (string, error) {
	sv, ok := v.(string)
	if !ok {
		return "", pubschema.Issues{{Path: "/", Code: pubschema.CodeInvalidType, Message: i18n.T(pubschema.CodeInvalidType, nil), Hint: "expected string"}}
	}
	ns, err := pubschema.ApplyNormalize[string](ctx, sv, s)
	if err != nil {
		return "", err
	}
	if err := s.ValidateValue(ctx, ns); err != nil {
		return "", err
	}
	if err := pubschema.ApplyRefine[string](ctx, ns, s); err != nil {
		return "", err
	}
	return ns, nil
}

func (s *stringSchema) Validate(ctx context.Context, v any) error {
	sv, ok := v.(string)
	if !ok {
		return pubschema.Issues{{Path: "/", Code: pubschema.CodeInvalidType, Message: i18n.T(pubschema.CodeInvalidType, nil), Hint: "expected string"}}
	}
	return s.ValidateValue(ctx, sv)
}

func (s *stringSchema) ValidateValue(ctx context.Context, v string) error {
	if s.minLen >= 0 && len(v) < s.minLen {
		return pubschema.Issues{{Path: "/", Code: pubschema.CodeTooShort, Message: i18n.T(pubschema.CodeTooShort, nil), Hint: "string is shorter than min"}}
	}
	if s.maxLen >= 0 && len(v) > s.maxLen {
		return pubschema.Issues{{Path: "/", Code: pubschema.CodeTooLong, Message: i18n.T(pubschema.CodeTooLong, nil), Hint: "string is longer than max"}}
	}
	return nil
}

func (s *stringSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string"}
	if s.minLen >= 0 {
		n := s.minLen
		out.MinLength = &n
	}
	if s.maxLen >= 0 {
		n := s.maxLen
		out.MaxLength = &n
	}
	return out, nil
}

type boolSchema struct{}

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, pubschema.Issues{{Path: "/", Code: pubschema.CodeInvalidType, Message: i18n.T(pubschema.CodeInvalidType, nil), Hint: "expected boolean"}}
	}
	nb, err := pubschema.ApplyNormalize[bool](ctx, b, boolSchema{})
	if err != nil {
		return false, err
	}
	if err := (boolSchema{}).ValidateValue(ctx, nb); err != nil {
		return false, err
	}
	if err := pubschema.ApplyRefine[bool](ctx, nb, boolSchema{}); err != nil {
		return false, err
	}
	return nb, nil
}

func (boolSchema) Validate(ctx context.Context, v any) error {
	if _, ok := v.(bool); !ok {
		return pubschema.Issues{{Path: "/", Code: pubschema.CodeInvalidType, Message: i18n.T(pubschema.CodeInvalidType, nil), Hint: "expected boolean"}}
	}
	return nil
}

func (boolSchema) ValidateValue(ctx context.Context, v bool) error { return nil }

func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

// stringAsSchema wraps a string schema and projects to a domain type T with
// underlying string.
type stringAsSchema[T ~string] struct{ inner StringBuilder }

func (s stringAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	sv, err := s.inner.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return T(sv), nil
}

func (s stringAsSchema[T]) Validate(ctx context.Context, v any) error {
	return s.inner.Validate(ctx, v)
}

func (s stringAsSchema[T]) ValidateValue(ctx context.Context, v T) error {
	return s.inner.ValidateValue(ctx, string(v))
}

func (s stringAsSchema[T]) JSONSchema() (*js.Schema, error) { return s.inner.JSONSchema() }

// StringOf returns an AnyAdapter for a string wire schema projected to domain type T.
func StringOf[T ~string]() AnyAdapter {
	ad := anyAdapterFromSchema[T](stringAsSchema[T]{inner: String()})
	ad.orig = String()
	return ad
}

// boolAsSchema wraps boolSchema and projects to a domain type T with underlying bool.
type boolAsSchema[T ~bool] struct{}

func (boolAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	b, err := (boolSchema{}).Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return T(b), nil
}

func (boolAsSchema[T]) Validate(ctx context.Context, v any) error {
	return (boolSchema{}).Validate(ctx, v)
}

func (boolAsSchema[T]) ValidateValue(ctx context.Context, v T) error {
	return (boolSchema{}).ValidateValue(ctx, bool(v))
}

func (boolAsSchema[T]) JSONSchema() (*js.Schema, error) { return (boolSchema{}).JSONSchema() }

// BoolOf returns an AnyAdapter for a bool wire schema projected to domain type T.
func BoolOf[T ~bool]() AnyAdapter {
	ad := anyAdapterFromSchema[T](boolAsSchema[T]{})
	ad.orig = Bool()
	return ad
}
