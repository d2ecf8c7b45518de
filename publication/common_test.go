package publication_test

import (
	"context"
	"fmt"
	"testing"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/publication"
)

func commonDoc(extra map[string]any) map[string]any {
	doc := map[string]any{"id": "p-1", "locale": "en"}
	for k, v := range extra {
		doc[k] = v
	}
	return doc
}

func attributeRecords(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = map[string]any{"key": fmt.Sprintf("k%d", i), "value": "v"}
	}
	return out
}

func TestCommonSchema_LocaleRequired(t *testing.T) {
	ctx := context.Background()
	_, err := publication.CommonSchema().Parse(ctx, map[string]any{"id": "p-1"})
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/locale" || iss[0].Code != pubschema.CodeRequired {
		t.Fatalf("expected required at /locale, got %v", err)
	}

	if _, err := publication.CommonSchema().Parse(ctx, commonDoc(nil)); err != nil {
		t.Fatalf("valid locale should pass, err=%v", err)
	}
	if _, err := publication.CommonSchema().Parse(ctx, commonDoc(map[string]any{"locale": "pt-BR"})); err != nil {
		t.Fatalf("region-qualified locale should pass, err=%v", err)
	}
	_, err = publication.CommonSchema().Parse(ctx, commonDoc(map[string]any{"locale": "english"}))
	iss, _ = pubschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != pubschema.CodeTooLong {
		t.Fatalf("expected bounds violation for malformed locale, got %v", err)
	}
}

func TestCommonSchema_AttributeBounds(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		n    int
		code string // "" means success
	}{
		{0, pubschema.CodeTooShort}, // empty array is invalid, omit instead
		{1, ""},
		{20, ""},
		{21, pubschema.CodeTooLong},
	}
	for _, tc := range cases {
		_, err := publication.CommonSchema().Parse(ctx, commonDoc(map[string]any{"attributes": attributeRecords(tc.n)}))
		if tc.code == "" {
			if err != nil {
				t.Fatalf("attributes len=%d should pass, err=%v", tc.n, err)
			}
			continue
		}
		iss, _ := pubschema.AsIssues(err)
		if len(iss) != 1 || iss[0].Path != "/attributes" || iss[0].Code != tc.code {
			t.Fatalf("attributes len=%d: expected %s at /attributes, got %v", tc.n, tc.code, err)
		}
	}
}

func TestCommonSchema_AttributeItemErrorsKeepPaths(t *testing.T) {
	ctx := context.Background()
	attrs := []any{
		map[string]any{"key": "ok", "value": "v"},
		map[string]any{"value": "v"}, // key missing
	}
	_, err := publication.CommonSchema().Parse(ctx, commonDoc(map[string]any{"attributes": attrs}))
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/attributes/1/key" || iss[0].Code != pubschema.CodeRequired {
		t.Fatalf("expected required at /attributes/1/key, got %v", err)
	}
}

func TestCommonSchema_Tags(t *testing.T) {
	ctx := context.Background()
	tags := make([]any, 10)
	for i := range tags {
		tags[i] = fmt.Sprintf("t%d", i)
	}
	if _, err := publication.CommonSchema().Parse(ctx, commonDoc(map[string]any{"tags": tags})); err != nil {
		t.Fatalf("10 tags should pass, err=%v", err)
	}
	_, err := publication.CommonSchema().Parse(ctx, commonDoc(map[string]any{"tags": append(tags, "t10")}))
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/tags" || iss[0].Code != pubschema.CodeTooLong {
		t.Fatalf("expected too_long at /tags, got %v", err)
	}
}

func TestCommonSchema_ContentWarning(t *testing.T) {
	ctx := context.Background()
	for _, w := range []string{"NSFW", "SENSITIVE", "SPOILER"} {
		if _, err := publication.CommonSchema().Parse(ctx, commonDoc(map[string]any{"contentWarning": w})); err != nil {
			t.Fatalf("warning %s should pass, err=%v", w, err)
		}
	}
	_, err := publication.CommonSchema().Parse(ctx, commonDoc(map[string]any{"contentWarning": "INVALID"}))
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/contentWarning" || iss[0].Code != pubschema.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum at /contentWarning, got %v", err)
	}
}

func TestCommonSchema_EncryptedWith(t *testing.T) {
	ctx := context.Background()
	enc := map[string]any{
		"provider":      "LIT_PROTOCOL",
		"encryptionKey": "0xdeadbeef",
	}
	if _, err := publication.CommonSchema().Parse(ctx, commonDoc(map[string]any{"encryptedWith": enc})); err != nil {
		t.Fatalf("valid descriptor should pass, err=%v", err)
	}

	// nested failures surface under the containing field
	bad := map[string]any{"provider": "UNKNOWN", "encryptionKey": "k"}
	_, err := publication.CommonSchema().Parse(ctx, commonDoc(map[string]any{"encryptedWith": bad}))
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/encryptedWith/provider" || iss[0].Code != pubschema.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum at /encryptedWith/provider, got %v", err)
	}
}

func TestCommonSchema_AggregatesAcrossFields(t *testing.T) {
	ctx := context.Background()
	doc := map[string]any{
		"id":             "",
		"attributes":     []any{},
		"contentWarning": "INVALID",
	}
	_, err := publication.CommonSchema().Parse(ctx, doc)
	iss, _ := pubschema.AsIssues(err)
	if len(iss) != 4 {
		t.Fatalf("expected id, attributes, contentWarning, and locale issues together, got %v", err)
	}
}
