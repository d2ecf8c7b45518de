package publication

import (
	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
)

// CoreSchema validates the minimal operational envelope every publication
// carries: a non-empty unique id, the feed visibility flags, and the owning
// application. The flags default to false when absent.
func CoreSchema() pubschema.Schema[map[string]any] {
	return coreSchema
}

var coreSchema = dsl.Object().
	Field("id", NonEmptyString("unique identifier of the publication; a UUID is recommended")).
	Field("hideFromFeed", dsl.BoolOf[bool]().Describe("exclude this publication from feeds")).Default(false).
	Field("globalReach", dsl.BoolOf[bool]().Describe("surface this publication outside the owning app")).Default(false).
	Field("appId", dsl.SchemaOf[AppID](AppIDSchema()).Describe("identifier of the owning application")).
	Require("id").
	UnknownStrip().
	MustBuild()
