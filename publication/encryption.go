package publication

import (
	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
)

// EncryptionProvider enumerates supported encryption strategies.
type EncryptionProvider string

const (
	// ProviderLit is threshold encryption via an external key network.
	ProviderLit EncryptionProvider = "LIT_PROTOCOL"
)

// EncryptionSchema validates the optional encryptedWith descriptor. Absence
// of the descriptor means the publication is stored in the clear. Provider
// specific keys beyond the envelope are tolerated and dropped.
func EncryptionSchema() pubschema.Schema[map[string]any] {
	return encryptionSchema
}

var encryptionSchema = dsl.Object().
	Field("provider", dsl.EnumOf(ProviderLit).Describe("encryption strategy provider")).
	Field("encryptionKey", NonEmptyString("encrypted symmetric key, provider encoded")).
	Field("encryptedFields", dsl.ArrayOf[string](dsl.String().Min(1)).
		Describe("paths of the metadata fields that were encrypted")).
	Require("provider", "encryptionKey").
	UnknownStrip().
	MustBuild()
