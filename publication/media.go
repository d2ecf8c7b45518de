package publication

import (
	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
)

// MediaLicense enumerates the licenses a media attachment may declare.
type MediaLicense string

const (
	LicenseCCZero MediaLicense = "CC0"
	LicenseCCBY   MediaLicense = "CC_BY"
	LicenseCCBYNC MediaLicense = "CC_BY_NC"
	LicenseCCBYND MediaLicense = "CC_BY_ND"
)

// MediaSchema validates one media attachment: the content URI plus optional
// mime type, cover image, alt text, and license. Image, audio, and video
// variants all share this shape.
func MediaSchema() pubschema.Schema[map[string]any] {
	return mediaSchema
}

var mediaSchema = dsl.Object().
	Field("item", dsl.SchemaOf[URI](URISchema()).Describe("URI of the media content")).
	Field("type", NonEmptyString("mime type of the media content")).
	Field("cover", dsl.SchemaOf[URI](URISchema()).Describe("cover image URI")).
	Field("altTag", NonEmptyString("alternative text for accessibility")).
	Field("license", dsl.EnumOf(LicenseCCZero, LicenseCCBY, LicenseCCBYNC, LicenseCCBYND).
		Describe("license the media is published under")).
	Require("item").
	UnknownStrip().
	MustBuild()

// mediaField adapts MediaSchema for variant fields.
func mediaField(desc string) dsl.AnyAdapter {
	return dsl.SchemaOf[map[string]any](mediaSchema).Describe(desc)
}

// attachmentsField is the shared optional gallery of extra media.
func attachmentsField() dsl.AnyAdapter {
	return dsl.AdapterOf(dsl.Array(MediaSchema()).Min(1).Max(20)).
		Describe("additional media attached to the publication")
}
