package dsl_test

import (
	"context"
	"testing"

	pubschema "github.com/pubgraph/pubschema"
	g "github.com/pubgraph/pubschema/dsl"
)

type color string

const (
	red   color = "RED"
	green color = "GREEN"
	blue  color = "BLUE"
)

func TestEnum_ClosedSet(t *testing.T) {
	ctx := context.Background()
	s := g.Enum(red, green)

	if v, err := s.Parse(ctx, "RED"); err != nil || v != red {
		t.Fatalf("expected RED to parse, v=%v err=%v", v, err)
	}
	if v, err := s.Parse(ctx, "GREEN"); err != nil || v != green {
		t.Fatalf("expected GREEN to parse, v=%v err=%v", v, err)
	}
	// BLUE is a valid color but outside the declared set
	_, err := s.Parse(ctx, "BLUE")
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != pubschema.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum for member outside the set, got %v", err)
	}
	if _, err := s.Parse(ctx, 42); err == nil {
		t.Fatalf("expected invalid_type for non-string input")
	}
}

func TestLiteral_SingleValue(t *testing.T) {
	ctx := context.Background()
	s := g.Literal(blue)

	if _, err := s.Parse(ctx, "BLUE"); err != nil {
		t.Fatalf("expected literal to accept its value, err=%v", err)
	}
	if _, err := s.Parse(ctx, "RED"); err == nil {
		t.Fatalf("expected literal to reject any other value")
	}

	js, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("jsonschema: %v", err)
	}
	if js.Const != "BLUE" {
		t.Fatalf("single-member enum should export const, got %#v", js)
	}
}

func TestEnum_ValidateValue(t *testing.T) {
	ctx := context.Background()
	s := g.Enum(red, green, blue)
	if err := s.ValidateValue(ctx, green); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := s.ValidateValue(ctx, color("PINK")); err == nil {
		t.Fatalf("expected invalid_enum for out-of-set typed value")
	}
}
