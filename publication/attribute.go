package publication

import (
	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
)

// AttributeType hints how an attribute value should be interpreted by
// consumers. The value itself is always transported as a string.
type AttributeType string

const (
	AttributeBoolean AttributeType = "BOOLEAN"
	AttributeDate    AttributeType = "DATE"
	AttributeNumber  AttributeType = "NUMBER"
	AttributeString  AttributeType = "STRING"
	AttributeJSON    AttributeType = "JSON"
)

// Attribute is one generic key/value record attached to a publication. The
// schemas here check shape only; value semantics are left to consumers.
type Attribute struct {
	Type  AttributeType `json:"type,omitempty"`
	Key   string        `json:"key"`
	Value string        `json:"value"`
}

// AttributeSchema validates a single attribute record.
func AttributeSchema() pubschema.Schema[Attribute] {
	return attributeSchema
}

var attributeSchema = dsl.MustBind[Attribute](dsl.Object().
	Field("type", dsl.EnumOf(AttributeBoolean, AttributeDate, AttributeNumber, AttributeString, AttributeJSON).
		Describe("interpretation hint for the value")).
	Field("key", NonEmptyString("attribute name, unique within the publication")).
	Field("value", NonEmptyString("attribute value, transported as a string")).
	Require("key", "value").
	UnknownStrip())
