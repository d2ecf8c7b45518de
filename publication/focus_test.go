package publication_test

import (
	"context"
	"testing"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/publication"
)

func TestFocusOf_SingleLiteral(t *testing.T) {
	ctx := context.Background()
	sel := publication.FocusOf(publication.FocusTextOnly)

	if v, err := sel.Parse(ctx, "TEXT_ONLY"); err != nil || v != publication.FocusTextOnly {
		t.Fatalf("expected TEXT_ONLY to parse, v=%v err=%v", v, err)
	}
	// IMAGE is a valid focus, but outside this selector's set
	_, err := sel.Parse(ctx, "IMAGE")
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != pubschema.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum for other enumeration members, got %v", err)
	}
}

func TestFocusOf_ClosedUnion(t *testing.T) {
	ctx := context.Background()
	sel := publication.FocusOf(publication.FocusVideo, publication.FocusShortVideo)

	for _, ok := range []string{"VIDEO", "SHORT_VIDEO"} {
		if _, err := sel.Parse(ctx, ok); err != nil {
			t.Fatalf("union should accept %s, err=%v", ok, err)
		}
	}
	// AUDIO is valid in the enumeration but not in this union
	if _, err := sel.Parse(ctx, "AUDIO"); err == nil {
		t.Fatalf("union should reject members outside the declared set")
	}
}

func TestFocusSelector_Members(t *testing.T) {
	sel := publication.FocusOf(publication.FocusVideo, publication.FocusShortVideo)
	got := sel.Members()
	if len(got) != 2 || got[0] != publication.FocusVideo || got[1] != publication.FocusShortVideo {
		t.Fatalf("unexpected members: %v", got)
	}
	// mutation of the returned slice must not leak into the selector
	got[0] = publication.FocusMint
	if sel.Members()[0] != publication.FocusVideo {
		t.Fatalf("Members must return a copy")
	}
}
