package dsl

import (
	"context"
	"reflect"

	pubschema "github.com/pubgraph/pubschema"
	js "github.com/pubgraph/pubschema/jsonschema"
)

// Bind builds an object schema and binds it to struct type T, so a composed
// schema parses directly into a statically typed value. Field resolution
// follows pubschema.ResolveStructKey (pubschema tag > json tag > field name).
func Bind[T any](b *objectBuilder) (pubschema.Schema[T], error) {
	s, err := b.Build()
	if err != nil {
		var zero pubschema.Schema[T]
		return zero, err
	}
	os, ok := s.(*objectSchema)
	if !ok {
		var zero pubschema.Schema[T]
		return zero, pubschema.Issues{pubschema.Issue{Path: "/", Code: pubschema.CodeParseError, Message: "unexpected schema type for Bind"}}
	}
	return newTypedObjectSchema[T](os)
}

// MustBind is like Bind but panics on error.
func MustBind[T any](b *objectBuilder) pubschema.Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

// BindSchema binds an already-built object schema to struct type T.
func BindSchema[T any](s pubschema.Schema[map[string]any]) (pubschema.Schema[T], error) {
	os, ok := s.(*objectSchema)
	if !ok {
		var zero pubschema.Schema[T]
		return zero, pubschema.Issues{pubschema.Issue{Path: "/", Code: pubschema.CodeParseError, Message: "BindSchema requires an object schema"}}
	}
	return newTypedObjectSchema[T](os)
}

// typedObjectSchema adapts an objectSchema to a typed struct T using key resolution.
type typedObjectSchema[T any] struct {
	inner      *objectSchema
	t          reflect.Type
	fieldByKey map[string]int // DSL key -> struct field index
}

func newTypedObjectSchema[T any](os *objectSchema) (pubschema.Schema[T], error) {
	var zero pubschema.Schema[T]
	var t T
	rt := reflect.TypeOf(t)
	if rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return zero, pubschema.Issues{pubschema.Issue{Path: "/", Code: pubschema.CodeParseError, Message: "Bind[T] requires struct T"}}
	}
	idxByName := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := pubschema.ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByName[name] = i
	}
	fm := make(map[string]int)
	for k := range os.fields {
		if i, ok := idxByName[k]; ok {
			fm[k] = i
		}
	}
	return &typedObjectSchema[T]{inner: os, t: rt, fieldByKey: fm}, nil
}

// Parse maps wire -> map via inner, then into struct fields by mapping.
func (s *typedObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	m, err := s.inner.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	rv := reflect.New(s.t).Elem()
	for key, idx := range s.fieldByKey {
		val, ok := m[key]
		if !ok {
			continue
		}
		fv := rv.Field(idx)
		if !fv.CanSet() {
			continue
		}
		// Gracefully handle nulls for nillable fields
		if val == nil {
			switch fv.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
				fv.Set(reflect.Zero(fv.Type()))
			}
			continue
		}
		vv := reflect.ValueOf(val)
		switch {
		case vv.Type().AssignableTo(fv.Type()):
			fv.Set(vv)
		case fv.Kind() == reflect.Pointer && vv.Type().AssignableTo(fv.Type().Elem()):
			pv := reflect.New(fv.Type().Elem())
			pv.Elem().Set(vv)
			fv.Set(pv)
		case fv.Kind() == reflect.Pointer && vv.Type().ConvertibleTo(fv.Type().Elem()):
			pv := reflect.New(fv.Type().Elem())
			pv.Elem().Set(vv.Convert(fv.Type().Elem()))
			fv.Set(pv)
		case vv.Type().ConvertibleTo(fv.Type()):
			fv.Set(vv.Convert(fv.Type()))
		default:
			return zero, pubschema.Issues{pubschema.Issue{Path: "/" + key, Code: pubschema.CodeInvalidType, Message: "field type mismatch"}}
		}
	}
	return rv.Interface().(T), nil
}

func (s *typedObjectSchema[T]) Validate(ctx context.Context, v any) error {
	return s.inner.Validate(ctx, v)
}

func (s *typedObjectSchema[T]) ValidateValue(ctx context.Context, v T) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	m := make(map[string]any, len(s.fieldByKey))
	for key, idx := range s.fieldByKey {
		fv := rv.Field(idx)
		if !fv.IsValid() {
			continue
		}
		switch fv.Kind() {
		case reflect.Pointer:
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		case reflect.Slice, reflect.Map:
			// nil means the optional field was never set; omit it so length
			// bounds are not applied to an absent value
			if fv.IsNil() {
				continue
			}
		}
		// Treat zero values as present to avoid false required errors for typed values
		m[key] = fv.Interface()
	}
	return s.inner.ValidateValue(ctx, m)
}

func (s *typedObjectSchema[T]) JSONSchema() (*js.Schema, error) { return s.inner.JSONSchema() }
