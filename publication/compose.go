package publication

import (
	"context"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
	js "github.com/pubgraph/pubschema/jsonschema"
)

// SchemaID is the literal $schema tag identifying one publication variant.
type SchemaID string

// DetailsAugmentation declares the focus-specific field set merged into the
// common schema. MainContentFocus is deliberately typed as FocusSelector,
// not as a general schema: only FocusOf produces one, so the discriminant is
// guaranteed to be a focus literal or a closed union of focus literals before
// any validator is constructed.
type DetailsAugmentation struct {
	MainContentFocus FocusSelector
	Fields           map[string]dsl.AnyAdapter
	Required         []string
}

// DetailsSchema is the result of DetailsWith. It is a distinct type so that
// PublicationAugmentation.Lens can require a composed details schema rather
// than an arbitrary object schema.
type DetailsSchema struct {
	inner   pubschema.Schema[map[string]any]
	members []Focus
}

func (d DetailsSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	return d.inner.Parse(ctx, v)
}
func (d DetailsSchema) Validate(ctx context.Context, v any) error { return d.inner.Validate(ctx, v) }
func (d DetailsSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	return d.inner.ValidateValue(ctx, v)
}
func (d DetailsSchema) JSONSchema() (*js.Schema, error) { return d.inner.JSONSchema() }

// DetailsWith extends the common schema with the augmentation: the focus
// discriminant plus the variant's own fields. Augmentation entries override
// common entries on name collision, except mainContentFocus: the discriminant
// can only be set through MainContentFocus. Misuse, a zero FocusSelector or a
// Fields entry for the reserved name, is a construction defect and panics at
// build time; it never surfaces as a data validation error.
func DetailsWith(aug DetailsAugmentation) DetailsSchema {
	if aug.MainContentFocus.inner == nil {
		panic("publication: DetailsWith requires a FocusSelector built with FocusOf")
	}
	if _, ok := aug.Fields["mainContentFocus"]; ok {
		panic("publication: mainContentFocus is reserved; set it via MainContentFocus")
	}
	b := dsl.Extend(commonSchema).
		Field("mainContentFocus", dsl.SchemaOf[Focus](aug.MainContentFocus).
			Describe("discriminant classifying the publication content")).
		Required()
	for name, ad := range aug.Fields {
		b.Field(name, ad)
	}
	b.Require(aug.Required...)
	return DetailsSchema{inner: b.MustBuild(), members: aug.MainContentFocus.Members()}
}

// PublicationAugmentation declares the envelope of one publication variant:
// the $schema literal and the composed details nested under lens. Both carry
// concrete types (SchemaID, DetailsSchema), so handing the composer a free
// form schema or object is rejected by the compiler.
type PublicationAugmentation struct {
	Schema   SchemaID
	Lens     DetailsSchema
	Fields   map[string]dsl.AnyAdapter
	Required []string
}

// PublicationSchema is one fully composed publication-variant validator.
type PublicationSchema struct {
	id    SchemaID
	focus []Focus
	inner pubschema.Schema[map[string]any]
}

// ID returns the variant's $schema literal.
func (p PublicationSchema) ID() SchemaID { return p.id }

// Focuses returns the closed focus set the variant accepts.
func (p PublicationSchema) Focuses() []Focus { return append([]Focus(nil), p.focus...) }

func (p PublicationSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	return p.inner.Parse(ctx, v)
}
func (p PublicationSchema) Validate(ctx context.Context, v any) error {
	return p.inner.Validate(ctx, v)
}
func (p PublicationSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	return p.inner.ValidateValue(ctx, v)
}
func (p PublicationSchema) JSONSchema() (*js.Schema, error) { return p.inner.JSONSchema() }

// PublicationWith is the terminal composition step. The result equals the
// marketplace schema, extended with an optional signature, extended with the
// augmentation: the $schema literal, the details under lens, and any extra
// envelope fields (augmentation wins on name collision). The $schema, lens,
// and signature names are reserved: a Fields entry for any of them panics at
// construction.
func PublicationWith(aug PublicationAugmentation) PublicationSchema {
	if aug.Schema == "" {
		panic("publication: PublicationWith requires a non-empty SchemaID literal")
	}
	if aug.Lens.inner == nil {
		panic("publication: PublicationWith requires a Lens built with DetailsWith")
	}
	for _, reserved := range []string{"$schema", "lens", "signature"} {
		if _, ok := aug.Fields[reserved]; ok {
			panic("publication: " + reserved + " is reserved and cannot appear in Fields")
		}
	}
	b := dsl.Extend(marketplaceSchema).
		Field("signature", dsl.SchemaOf[Signature](SignatureSchema()).
			Describe("cryptographic signature over the metadata")).
		Field("$schema", dsl.LiteralOf(aug.Schema).
			Describe("identifier of the metadata schema variant")).
		Field("lens", dsl.SchemaOf[map[string]any](aug.Lens).
			Describe("focus-specific publication details")).
		Require("$schema", "lens")
	for name, ad := range aug.Fields {
		b.Field(name, ad)
	}
	b.Require(aug.Required...)
	return PublicationSchema{
		id:    aug.Schema,
		focus: aug.Lens.focuses(),
		inner: b.MustBuild(),
	}
}

// focuses exposes the discriminant members for registry lookups.
func (d DetailsSchema) focuses() []Focus { return append([]Focus(nil), d.members...) }
