package dsl

import (
	"context"
	"strings"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/i18n"
	js "github.com/pubgraph/pubschema/jsonschema"
)

// Enum returns a schema accepting exactly the given string-kinded literals.
// The member set is closed: any other value fails with invalid_enum. Call
// sites supply at least one member; the one-member form is the literal case.
func Enum[T ~string](first T, rest ...T) pubschema.Schema[T] {
	members := make([]T, 0, 1+len(rest))
	members = append(members, first)
	members = append(members, rest...)
	return enumSchema[T]{members: members}
}

// Literal returns a schema accepting exactly one literal value.
func Literal[T ~string](v T) pubschema.Schema[T] { return Enum(v) }

type enumSchema[T ~string] struct {
	members []T
}

func (e enumSchema[T]) contains(v T) bool {
	for _, m := range e.members {
		if m == v {
			return true
		}
	}
	return false
}

func (e enumSchema[T]) hint() string {
	ss := make([]string, len(e.members))
	for i, m := range e.members {
		ss[i] = string(m)
	}
	return "expected one of: " + strings.Join(ss, ", ")
}

func (e enumSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	sv, ok := v.(string)
	if !ok {
		// accept already-typed values too (e.g. revalidation of parsed output)
		if tv, ok2 := v.(T); ok2 {
			sv = string(tv)
		} else {
			return zero, pubschema.Issues{{Path: "/", Code: pubschema.CodeInvalidType, Message: i18n.T(pubschema.CodeInvalidType, nil), Hint: "expected string"}}
		}
	}
	tv := T(sv)
	if !e.contains(tv) {
		return zero, pubschema.Issues{{Path: "/", Code: pubschema.CodeInvalidEnum, Message: i18n.T(pubschema.CodeInvalidEnum, nil), Hint: e.hint()}}
	}
	return tv, nil
}

func (e enumSchema[T]) Validate(ctx context.Context, v any) error {
	_, err := e.Parse(ctx, v)
	return err
}

func (e enumSchema[T]) ValidateValue(ctx context.Context, v T) error {
	if !e.contains(v) {
		return pubschema.Issues{{Path: "/", Code: pubschema.CodeInvalidEnum, Message: i18n.T(pubschema.CodeInvalidEnum, nil), Hint: e.hint()}}
	}
	return nil
}

func (e enumSchema[T]) JSONSchema() (*js.Schema, error) {
	if len(e.members) == 1 {
		return &js.Schema{Type: "string", Const: string(e.members[0])}, nil
	}
	vals := make([]any, len(e.members))
	for i, m := range e.members {
		vals[i] = string(m)
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}

// EnumOf adapts Enum to an AnyAdapter for object fields.
func EnumOf[T ~string](first T, rest ...T) AnyAdapter {
	return anyAdapterFromSchema[T](Enum(first, rest...))
}

// LiteralOf adapts Literal to an AnyAdapter for object fields.
func LiteralOf[T ~string](v T) AnyAdapter { return anyAdapterFromSchema[T](Literal(v)) }
