package publication

import (
	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
)

// MarketplaceSchema validates the marketplace-facing envelope fields shared
// by every publication variant: display name, description, and preview
// media in the shape marketplaces index. All fields are optional; the
// publication composer extends this schema rather than inspecting it.
func MarketplaceSchema() pubschema.Schema[map[string]any] {
	return marketplaceSchema
}

var marketplaceAttributeSchema = dsl.Object().
	Field("display_type", dsl.SchemaOf[string](dsl.String().Min(1)).
		Describe("marketplace rendering hint")).
	Field("trait_type", NonEmptyString("trait name shown by marketplaces")).
	Field("value", NonEmptyString("trait value")).
	Require("value").
	UnknownStrip().
	MustBuild()

var marketplaceSchema = dsl.Object().
	Field("name", dsl.SchemaOf[string](dsl.String().Min(1).Max(100)).
		Describe("display name of the publication")).
	Field("description", dsl.SchemaOf[string](dsl.String()).
		Describe("human-readable summary shown on marketplaces")).
	Field("external_url", dsl.SchemaOf[URI](URISchema()).
		Describe("link back to the publication on its origin app")).
	Field("image", dsl.SchemaOf[URI](URISchema()).
		Describe("preview image")).
	Field("animation_url", dsl.SchemaOf[URI](URISchema()).
		Describe("preview animation or interactive media")).
	Field("attributes", dsl.ArrayOf[map[string]any](marketplaceAttributeSchema).
		Describe("marketplace trait records")).
	UnknownStrip().
	MustBuild()
