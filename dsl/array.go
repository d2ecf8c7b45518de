package dsl

import (
	"context"
	"strconv"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/i18n"
	js "github.com/pubgraph/pubschema/jsonschema"
)

// ArrayBuilder exposes chaining methods for array schemas while implementing Schema[[]E].
type ArrayBuilder[E any] interface {
	pubschema.Schema[[]E]
	Min(n int) ArrayBuilder[E]
	Max(n int) ArrayBuilder[E]
}

// Array returns an array schema with the given element schema.
func Array[E any](elem pubschema.Schema[E]) ArrayBuilder[E] {
	return &arraySchema[E]{elem: elem, minLen: -1, maxLen: -1}
}

// ArrayOf adapts Array[E] to AnyAdapter for use in object builders. Use
// AdapterOf when length bounds are needed:
// Field("tags", d.AdapterOf(d.Array(d.String()).Max(10)))
func ArrayOf[E any](elem pubschema.Schema[E]) AnyAdapter {
	return anyAdapterFromSchema[[]E](Array[E](elem))
}

type arraySchema[E any] struct {
	elem   pubschema.Schema[E]
	minLen int
	maxLen int
}

// Min sets the minimum length.
func (a *arraySchema[E]) Min(n int) ArrayBuilder[E] { a.minLen = n; return a }

// Max sets the maximum length.
func (a *arraySchema[E]) Max(n int) ArrayBuilder[E] { a.maxLen = n; return a }

// AdapterOf converts a configured ArrayBuilder into an AnyAdapter.
func AdapterOf[E any](ab ArrayBuilder[E]) AnyAdapter { return anyAdapterFromSchema[[]E](ab) }

func (a *arraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	switch src := v.(type) {
	case []E:
		if err := a.ValidateValue(ctx, src); err != nil {
			return nil, err
		}
		return src, nil
	case []any:
		res := make([]E, 0, len(src))
		var iss pubschema.Issues
		for i := range src {
			ev, err := a.elem.Parse(ctx, src[i])
			if err != nil {
				iss = pubschema.AppendIssues(iss, pubschema.RebaseIssues("/"+strconv.Itoa(i), err)...)
				if pubschema.IsFailFast(ctx) {
					return nil, iss
				}
				continue
			}
			res = append(res, ev)
		}
		if berr := a.boundsCheck(len(src)); berr != nil {
			iss = pubschema.AppendIssues(iss, berr...)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return res, nil
	default:
		return nil, pubschema.Issues{pubschema.Issue{Path: "/", Code: pubschema.CodeInvalidType, Message: i18n.T(pubschema.CodeInvalidType, nil), Hint: "expected array"}}
	}
}

// boundsCheck reports length-bound issues distinctly from per-item errors.
func (a *arraySchema[E]) boundsCheck(n int) pubschema.Issues {
	var iss pubschema.Issues
	if a.minLen >= 0 && n < a.minLen {
		iss = pubschema.AppendIssues(iss, pubschema.Issue{Path: "/", Code: pubschema.CodeTooShort, Message: i18n.T(pubschema.CodeTooShort, nil), Hint: "array is shorter than min"})
	}
	if a.maxLen >= 0 && n > a.maxLen {
		iss = pubschema.AppendIssues(iss, pubschema.Issue{Path: "/", Code: pubschema.CodeTooLong, Message: i18n.T(pubschema.CodeTooLong, nil), Hint: "array is longer than max"})
	}
	return iss
}

func (a *arraySchema[E]) Validate(ctx context.Context, v any) error {
	var n int
	switch t := v.(type) {
	case []E:
		n = len(t)
	case []any:
		n = len(t)
	default:
		return pubschema.Issues{pubschema.Issue{Path: "/", Code: pubschema.CodeInvalidType, Message: i18n.T(pubschema.CodeInvalidType, nil), Hint: "expected array"}}
	}
	if iss := a.boundsCheck(n); len(iss) > 0 {
		return iss
	}
	return nil
}

func (a *arraySchema[E]) ValidateValue(ctx context.Context, v []E) error {
	if iss := a.boundsCheck(len(v)); len(iss) > 0 {
		return iss
	}
	for i := range v {
		if err := a.elem.ValidateValue(ctx, v[i]); err != nil {
			return pubschema.RebaseIssues("/"+strconv.Itoa(i), err)
		}
	}
	return nil
}

func (a *arraySchema[E]) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	s := &js.Schema{Type: "array", Items: es}
	if a.minLen >= 0 {
		n := a.minLen
		s.MinItems = &n
	}
	if a.maxLen >= 0 {
		n := a.maxLen
		s.MaxItems = &n
	}
	return s, nil
}
