package publication

import (
	"context"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
	js "github.com/pubgraph/pubschema/jsonschema"
)

// Focus classifies what kind of content a publication represents. The set is
// closed; variant schemas discriminate on it.
type Focus string

const (
	FocusArticle     Focus = "ARTICLE"
	FocusAudio       Focus = "AUDIO"
	FocusCheckingIn  Focus = "CHECKING_IN"
	FocusEmbed       Focus = "EMBED"
	FocusEvent       Focus = "EVENT"
	FocusImage       Focus = "IMAGE"
	FocusLink        Focus = "LINK"
	FocusLivestream  Focus = "LIVESTREAM"
	FocusMint        Focus = "MINT"
	FocusShortVideo  Focus = "SHORT_VIDEO"
	FocusSpace       Focus = "SPACE"
	FocusStory       Focus = "STORY"
	FocusTextOnly    Focus = "TEXT_ONLY"
	FocusThreeD      Focus = "THREE_D"
	FocusTransaction Focus = "TRANSACTION"
	FocusVideo       Focus = "VIDEO"
)

// FocusSelector accepts exactly the focus literals it was built from: one
// value makes a literal match, several make a closed union. It is the only
// type DetailsAugmentation accepts for the discriminant, so a schema broader
// than a literal or literal-union cannot reach DetailsWith; the constraint
// holds at compile time, not by runtime inspection.
type FocusSelector struct {
	inner   pubschema.Schema[Focus]
	members []Focus
}

// FocusOf builds a FocusSelector from one or more focus values. The minimum
// arity of one is enforced by the signature.
func FocusOf(first Focus, rest ...Focus) FocusSelector {
	members := make([]Focus, 0, 1+len(rest))
	members = append(members, first)
	members = append(members, rest...)
	return FocusSelector{inner: dsl.Enum(first, rest...), members: members}
}

// Members returns the closed set of accepted focus values.
func (f FocusSelector) Members() []Focus { return append([]Focus(nil), f.members...) }

func (f FocusSelector) Parse(ctx context.Context, v any) (Focus, error) {
	return f.inner.Parse(ctx, v)
}

func (f FocusSelector) Validate(ctx context.Context, v any) error {
	return f.inner.Validate(ctx, v)
}

func (f FocusSelector) ValidateValue(ctx context.Context, v Focus) error {
	return f.inner.ValidateValue(ctx, v)
}

func (f FocusSelector) JSONSchema() (*js.Schema, error) { return f.inner.JSONSchema() }
