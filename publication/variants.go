package publication

import (
	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
)

// Built-in publication variants. Each is composed once at package
// initialization via DetailsWith/PublicationWith and is immutable and safe
// for concurrent use afterwards.

const (
	SchemaTextOnly SchemaID = "https://pubgraph.dev/schemas/publications/text-only/1.0.0.json"
	SchemaArticle  SchemaID = "https://pubgraph.dev/schemas/publications/article/1.0.0.json"
	SchemaImage    SchemaID = "https://pubgraph.dev/schemas/publications/image/1.0.0.json"
	SchemaAudio    SchemaID = "https://pubgraph.dev/schemas/publications/audio/1.0.0.json"
	SchemaVideo    SchemaID = "https://pubgraph.dev/schemas/publications/video/1.0.0.json"
	SchemaLink     SchemaID = "https://pubgraph.dev/schemas/publications/link/1.0.0.json"
	SchemaEmbed    SchemaID = "https://pubgraph.dev/schemas/publications/embed/1.0.0.json"
	SchemaMint     SchemaID = "https://pubgraph.dev/schemas/publications/mint/1.0.0.json"
	SchemaEvent    SchemaID = "https://pubgraph.dev/schemas/publications/event/1.0.0.json"
)

// TextOnlySchema accepts plain text publications.
var TextOnlySchema = PublicationWith(PublicationAugmentation{
	Schema: SchemaTextOnly,
	Lens: DetailsWith(DetailsAugmentation{
		MainContentFocus: FocusOf(FocusTextOnly),
		Fields: map[string]dsl.AnyAdapter{
			"content": NonEmptyString("the textual content, markdown allowed"),
		},
		Required: []string{"content"},
	}),
})

// ArticleSchema accepts long-form articles with optional title and gallery.
var ArticleSchema = PublicationWith(PublicationAugmentation{
	Schema: SchemaArticle,
	Lens: DetailsWith(DetailsAugmentation{
		MainContentFocus: FocusOf(FocusArticle),
		Fields: map[string]dsl.AnyAdapter{
			"content":     NonEmptyString("the article body, markdown allowed"),
			"title":       NonEmptyString("the article title"),
			"attachments": attachmentsField(),
		},
		Required: []string{"content"},
	}),
})

// ImageSchema accepts image publications.
var ImageSchema = PublicationWith(PublicationAugmentation{
	Schema: SchemaImage,
	Lens: DetailsWith(DetailsAugmentation{
		MainContentFocus: FocusOf(FocusImage),
		Fields: map[string]dsl.AnyAdapter{
			"image":       mediaField("the image this publication is about"),
			"title":       NonEmptyString("an optional image title"),
			"content":     NonEmptyString("optional caption, markdown allowed"),
			"attachments": attachmentsField(),
		},
		Required: []string{"image"},
	}),
})

// AudioSchema accepts audio publications.
var AudioSchema = PublicationWith(PublicationAugmentation{
	Schema: SchemaAudio,
	Lens: DetailsWith(DetailsAugmentation{
		MainContentFocus: FocusOf(FocusAudio),
		Fields: map[string]dsl.AnyAdapter{
			"audio":       mediaField("the audio this publication is about"),
			"title":       NonEmptyString("an optional track title"),
			"content":     NonEmptyString("optional caption, markdown allowed"),
			"attachments": attachmentsField(),
		},
		Required: []string{"audio"},
	}),
})

// VideoSchema accepts both full-length and short-form video: the focus
// discriminant is the closed union {VIDEO, SHORT_VIDEO}.
var VideoSchema = PublicationWith(PublicationAugmentation{
	Schema: SchemaVideo,
	Lens: DetailsWith(DetailsAugmentation{
		MainContentFocus: FocusOf(FocusVideo, FocusShortVideo),
		Fields: map[string]dsl.AnyAdapter{
			"video":       mediaField("the video this publication is about"),
			"title":       NonEmptyString("an optional video title"),
			"content":     NonEmptyString("optional caption, markdown allowed"),
			"attachments": attachmentsField(),
		},
		Required: []string{"video"},
	}),
})

// LinkSchema accepts publications sharing an external link.
var LinkSchema = PublicationWith(PublicationAugmentation{
	Schema: SchemaLink,
	Lens: DetailsWith(DetailsAugmentation{
		MainContentFocus: FocusOf(FocusLink),
		Fields: map[string]dsl.AnyAdapter{
			"sharingLink": dsl.SchemaOf[URI](URISchema()).Describe("the link being shared"),
			"content":     NonEmptyString("optional comment on the link, markdown allowed"),
		},
		Required: []string{"sharingLink"},
	}),
})

// EmbedSchema accepts publications wrapping an embeddable resource.
var EmbedSchema = PublicationWith(PublicationAugmentation{
	Schema: SchemaEmbed,
	Lens: DetailsWith(DetailsAugmentation{
		MainContentFocus: FocusOf(FocusEmbed),
		Fields: map[string]dsl.AnyAdapter{
			"embed":   dsl.SchemaOf[URI](URISchema()).Describe("URI of the embeddable resource"),
			"content": NonEmptyString("optional caption, markdown allowed"),
		},
		Required: []string{"embed"},
	}),
})

// MintSchema accepts publications pointing at a mintable asset.
var MintSchema = PublicationWith(PublicationAugmentation{
	Schema: SchemaMint,
	Lens: DetailsWith(DetailsAugmentation{
		MainContentFocus: FocusOf(FocusMint),
		Fields: map[string]dsl.AnyAdapter{
			"mintLink": dsl.SchemaOf[URI](URISchema()).Describe("link to the mint page"),
			"content":  NonEmptyString("optional comment, markdown allowed"),
		},
		Required: []string{"mintLink"},
	}),
})

// EventSchema accepts publications announcing an event.
var EventSchema = PublicationWith(PublicationAugmentation{
	Schema: SchemaEvent,
	Lens: DetailsWith(DetailsAugmentation{
		MainContentFocus: FocusOf(FocusEvent),
		Fields: map[string]dsl.AnyAdapter{
			"startsAt": dsl.SchemaOf[DateTime](DateTimeSchema()).Describe("event start, RFC 3339"),
			"endsAt":   dsl.SchemaOf[DateTime](DateTimeSchema()).Describe("event end, RFC 3339"),
			"location": NonEmptyString("physical or virtual event location"),
			"links":    dsl.AdapterOf(dsl.Array(URISchema()).Min(1).Max(10)).Describe("related links"),
		},
		Required: []string{"startsAt", "endsAt", "location"},
	}),
})

// Variants lists every built-in publication schema.
func Variants() []PublicationSchema {
	return []PublicationSchema{
		TextOnlySchema, ArticleSchema, ImageSchema, AudioSchema, VideoSchema,
		LinkSchema, EmbedSchema, MintSchema, EventSchema,
	}
}

// BySchemaID resolves a built-in variant by its $schema literal.
func BySchemaID(id SchemaID) (PublicationSchema, bool) {
	for _, v := range Variants() {
		if v.ID() == id {
			return v, true
		}
	}
	return PublicationSchema{}, false
}

// ByFocus resolves a built-in variant accepting the given focus.
func ByFocus(f Focus) (PublicationSchema, bool) {
	for _, v := range Variants() {
		for _, m := range v.Focuses() {
			if m == f {
				return v, true
			}
		}
	}
	return PublicationSchema{}, false
}

// BindVariant attaches a struct type T to a composed publication schema so
// callers can parse straight into their own typed representation.
func BindVariant[T any](p PublicationSchema) (pubschema.Schema[T], error) {
	return dsl.BindSchema[T](p.inner)
}
