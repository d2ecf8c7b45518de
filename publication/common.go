package publication

import (
	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
)

// ContentWarning flags sensitive publications.
type ContentWarning string

const (
	WarningNSFW      ContentWarning = "NSFW"
	WarningSensitive ContentWarning = "SENSITIVE"
	WarningSpoiler   ContentWarning = "SPOILER"
)

// CommonSchema extends CoreSchema with the descriptive fields every variant
// shares. locale is the only required addition; attributes, when present,
// must hold between 1 and 20 records (an empty array is invalid, omit the
// field instead), and tags are capped at 10.
func CommonSchema() pubschema.Schema[map[string]any] {
	return commonSchema
}

var commonSchema = dsl.Extend(coreSchema).
	Field("attributes", dsl.AdapterOf(dsl.Array(AttributeSchema()).Min(1).Max(20)).
		Describe("generic key/value records; omit rather than sending an empty array")).
	Field("locale", dsl.SchemaOf[Locale](LocaleSchema()).
		Describe("language tag of the publication content")).
	Field("encryptedWith", dsl.SchemaOf[map[string]any](EncryptionSchema()).
		Describe("encryption descriptor; absence means the publication is unencrypted")).
	Field("tags", dsl.AdapterOf(dsl.Array(TagSchema()).Max(10)).
		Describe("free-text labels")).
	Field("contentWarning", dsl.EnumOf(WarningNSFW, WarningSensitive, WarningSpoiler).
		Describe("sensitivity flag")).
	Require("locale").
	MustBuild()
