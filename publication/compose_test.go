package publication_test

import (
	"context"
	"testing"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
	"github.com/pubgraph/pubschema/publication"
)

const recipeSchemaID publication.SchemaID = "https://example.org/schemas/publications/recipe/1.0.0.json"

func recipeSchema() publication.PublicationSchema {
	return publication.PublicationWith(publication.PublicationAugmentation{
		Schema: recipeSchemaID,
		Lens: publication.DetailsWith(publication.DetailsAugmentation{
			MainContentFocus: publication.FocusOf(publication.FocusTextOnly),
			Fields: map[string]dsl.AnyAdapter{
				"content":  publication.NonEmptyString("the recipe text"),
				"servings": publication.NonEmptyString("how many the recipe serves"),
			},
			Required: []string{"content"},
		}),
	})
}

func TestPublicationWith_EndToEnd(t *testing.T) {
	ctx := context.Background()
	s := recipeSchema()

	doc := map[string]any{
		"$schema":     string(recipeSchemaID),
		"name":        "Sunday stew",
		"description": "A slow one.",
		"lens": map[string]any{
			"id":               publication.NewID(),
			"locale":           "en-US",
			"mainContentFocus": "TEXT_ONLY",
			"content":          "Brown the meat, then wait.",
			"tags":             []any{"food", "stew"},
		},
	}

	got, err := s.Parse(ctx, doc)
	if err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
	lens, ok := got["lens"].(map[string]any)
	if !ok {
		t.Fatalf("lens not present in parsed output: %#v", got)
	}
	// core defaults apply inside the nested details
	if lens["hideFromFeed"] != false || lens["globalReach"] != false {
		t.Fatalf("core defaults not applied in lens: %#v", lens)
	}
	if got["$schema"] != recipeSchemaID {
		t.Fatalf("$schema literal not preserved: %v", got["$schema"])
	}

	// signature is optional; when present it must be a non-empty string
	doc["signature"] = "0xdeadbeef"
	if _, err := s.Parse(ctx, doc); err != nil {
		t.Fatalf("document with signature rejected: %v", err)
	}
	doc["signature"] = ""
	if _, err := s.Parse(ctx, doc); err == nil {
		t.Fatalf("empty signature accepted")
	}
}

func TestPublicationWith_SchemaLiteral(t *testing.T) {
	ctx := context.Background()
	s := recipeSchema()

	doc := map[string]any{
		"$schema": "https://example.org/schemas/publications/other/1.0.0.json",
		"lens": map[string]any{
			"id":               publication.NewID(),
			"locale":           "en",
			"mainContentFocus": "TEXT_ONLY",
			"content":          "x",
		},
	}
	_, err := s.Parse(ctx, doc)
	iss, ok := pubschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if len(iss) != 1 || iss[0].Code != pubschema.CodeInvalidEnum || iss[0].Path != "/$schema" {
		t.Fatalf("expected invalid_enum at /$schema, got %v", iss)
	}
}

func TestPublicationWith_UnknownFocusPath(t *testing.T) {
	ctx := context.Background()
	s := recipeSchema()

	doc := map[string]any{
		"$schema": string(recipeSchemaID),
		"lens": map[string]any{
			"id":               publication.NewID(),
			"locale":           "en",
			"mainContentFocus": "UNKNOWN_FOCUS",
			"content":          "x",
		},
	}
	_, err := s.Parse(ctx, doc)
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != pubschema.CodeInvalidEnum || iss[0].Path != "/lens/mainContentFocus" {
		t.Fatalf("expected invalid_enum at /lens/mainContentFocus, got %v", iss)
	}
}

func TestDetailsWith_AugmentationWinsOnCollision(t *testing.T) {
	ctx := context.Background()
	// the common schema caps tags at 10; this variant tightens the cap to 2
	details := publication.DetailsWith(publication.DetailsAugmentation{
		MainContentFocus: publication.FocusOf(publication.FocusTextOnly),
		Fields: map[string]dsl.AnyAdapter{
			"content": publication.NonEmptyString("the textual content"),
			"tags": dsl.AdapterOf(dsl.Array(publication.TagSchema()).Max(2)).
				Describe("at most two labels"),
		},
		Required: []string{"content"},
	})

	base := map[string]any{
		"id":               publication.NewID(),
		"locale":           "en",
		"mainContentFocus": "TEXT_ONLY",
		"content":          "hello",
	}

	base["tags"] = []any{"a", "b"}
	if _, err := details.Parse(ctx, base); err != nil {
		t.Fatalf("two tags should pass the tightened cap: %v", err)
	}

	base["tags"] = []any{"a", "b", "c"}
	_, err := details.Parse(ctx, base)
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != pubschema.CodeTooLong || iss[0].Path != "/tags" {
		t.Fatalf("expected too_long at /tags under the override, got %v", iss)
	}
}

func TestDetailsWith_ReservedDiscriminantName(t *testing.T) {
	// the discriminant is set through MainContentFocus only; a Fields entry
	// under the same name would swap the closed set for an arbitrary schema
	defer func() {
		if recover() == nil {
			t.Fatalf("Fields[\"mainContentFocus\"] must panic at construction")
		}
	}()
	publication.DetailsWith(publication.DetailsAugmentation{
		MainContentFocus: publication.FocusOf(publication.FocusTextOnly),
		Fields: map[string]dsl.AnyAdapter{
			"mainContentFocus": dsl.StringOf[string](),
		},
	})
}

func TestPublicationWith_ReservedEnvelopeNames(t *testing.T) {
	lens := publication.DetailsWith(publication.DetailsAugmentation{
		MainContentFocus: publication.FocusOf(publication.FocusTextOnly),
	})
	for _, name := range []string{"$schema", "lens", "signature"} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("Fields[%q] must panic at construction", name)
				}
			}()
			publication.PublicationWith(publication.PublicationAugmentation{
				Schema: recipeSchemaID,
				Lens:   lens,
				Fields: map[string]dsl.AnyAdapter{
					name: dsl.StringOf[string](),
				},
			})
		})
	}
}

func TestDetailsWith_PanicsOnZeroSelector(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("DetailsWith must panic on a zero FocusSelector")
		}
	}()
	publication.DetailsWith(publication.DetailsAugmentation{})
}

func TestPublicationWith_PanicsOnMissingParts(t *testing.T) {
	lens := publication.DetailsWith(publication.DetailsAugmentation{
		MainContentFocus: publication.FocusOf(publication.FocusTextOnly),
	})

	t.Run("empty schema id", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic on empty SchemaID")
			}
		}()
		publication.PublicationWith(publication.PublicationAugmentation{Lens: lens})
	})

	t.Run("zero lens", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic on zero Lens")
			}
		}()
		publication.PublicationWith(publication.PublicationAugmentation{Schema: recipeSchemaID})
	})
}

func TestPublicationSchema_AggregatesAcrossTiers(t *testing.T) {
	ctx := context.Background()
	s := recipeSchema()

	// three defects at once: bad $schema, missing locale, bad focus
	doc := map[string]any{
		"$schema": "wrong",
		"lens": map[string]any{
			"id":               publication.NewID(),
			"mainContentFocus": "IMAGE",
			"content":          "x",
		},
	}
	_, err := s.Parse(ctx, doc)
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 3 {
		t.Fatalf("expected 3 aggregated issues, got %d: %v", len(iss), iss)
	}
	want := map[string]string{
		"/$schema":               pubschema.CodeInvalidEnum,
		"/lens/locale":           pubschema.CodeRequired,
		"/lens/mainContentFocus": pubschema.CodeInvalidEnum,
	}
	for _, is := range iss {
		if code, ok := want[is.Path]; !ok || code != is.Code {
			t.Fatalf("unexpected issue %s at %s (want %v)", is.Code, is.Path, want)
		}
	}
}
