package dsl_test

import (
	"context"
	"testing"

	g "github.com/pubgraph/pubschema/dsl"
)

type account struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Active bool     `json:"active"`
	Labels []string `json:"labels"`
}

func TestBind_ParsesIntoStruct(t *testing.T) {
	ctx := context.Background()
	s, err := g.Bind[account](g.Object().
		Field("id", g.StringOf[string]()).
		Field("name", g.StringOf[string]()).
		Field("active", g.BoolOf[bool]()).Default(false).
		Field("labels", g.ArrayOf[string](g.String())).
		Require("id", "name"))
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	v, err := s.Parse(ctx, map[string]any{
		"id":     "a-1",
		"name":   "demo",
		"labels": []any{"x", "y"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.ID != "a-1" || v.Name != "demo" || v.Active != false || len(v.Labels) != 2 {
		t.Fatalf("unexpected struct: %#v", v)
	}
}

func TestBind_ValidateValue(t *testing.T) {
	ctx := context.Background()
	s := g.MustBind[account](g.Object().
		Field("id", g.SchemaOf[string](g.String().Min(1))).
		Field("name", g.StringOf[string]()).
		Require("id", "name"))

	if err := s.ValidateValue(ctx, account{ID: "a-1", Name: "demo"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := s.ValidateValue(ctx, account{ID: "", Name: "demo"}); err == nil {
		t.Fatalf("expected too_short for empty id")
	}
}

func TestBind_RequiresStruct(t *testing.T) {
	if _, err := g.Bind[string](g.Object()); err == nil {
		t.Fatalf("expected construction error for non-struct T")
	}
}
