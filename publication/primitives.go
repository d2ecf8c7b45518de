package publication

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/dsl"
	"github.com/pubgraph/pubschema/i18n"
	js "github.com/pubgraph/pubschema/jsonschema"
)

// AppID identifies the application a publication belongs to.
type AppID string

// Locale is a BCP-47-style language tag such as "en" or "en-US".
type Locale string

// Tag is a free-form label attached to a publication.
type Tag string

// Signature holds an opaque cryptographic signature over the metadata.
type Signature string

// URI is an absolute resource reference (ipfs://, ar://, https://, ...).
type URI string

// DateTime is an RFC 3339 timestamp string.
type DateTime string

// NewID returns a fresh unique publication id. Any non-empty string is
// accepted by the schemas; a UUID is the recommended form.
func NewID() string { return uuid.NewString() }

// IsUUID reports whether s is a well-formed UUID. Used by lint tooling to
// flag ids that stray from the recommended form.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// formatSchema validates a string-kinded value with length bounds and an
// optional format check, projecting to the domain type T.
type formatSchema[T ~string] struct {
	format string // JSON Schema format name, also used in hints
	minLen int    // -1 disables
	maxLen int    // -1 disables
	check  func(string) bool
}

func (f formatSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	sv, ok := v.(string)
	if !ok {
		if tv, ok2 := v.(T); ok2 {
			sv = string(tv)
		} else {
			return zero, pubschema.Issues{{Path: "/", Code: pubschema.CodeInvalidType, Message: i18n.T(pubschema.CodeInvalidType, nil), Hint: "expected string"}}
		}
	}
	if err := f.ValidateValue(ctx, T(sv)); err != nil {
		return zero, err
	}
	return T(sv), nil
}

func (f formatSchema[T]) Validate(ctx context.Context, v any) error {
	_, err := f.Parse(ctx, v)
	return err
}

func (f formatSchema[T]) ValidateValue(ctx context.Context, v T) error {
	s := string(v)
	if f.minLen >= 0 && len(s) < f.minLen {
		return pubschema.Issues{{Path: "/", Code: pubschema.CodeTooShort, Message: i18n.T(pubschema.CodeTooShort, nil), Hint: "string is shorter than min"}}
	}
	if f.maxLen >= 0 && len(s) > f.maxLen {
		return pubschema.Issues{{Path: "/", Code: pubschema.CodeTooLong, Message: i18n.T(pubschema.CodeTooLong, nil), Hint: "string is longer than max"}}
	}
	if f.check != nil && !f.check(s) {
		return pubschema.Issues{{Path: "/", Code: pubschema.CodeInvalidFormat, Message: i18n.T(pubschema.CodeInvalidFormat, nil), Hint: "expected " + f.format}}
	}
	return nil
}

func (f formatSchema[T]) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Type: "string", Format: f.format}
	if f.minLen >= 0 {
		n := f.minLen
		s.MinLength = &n
	}
	if f.maxLen >= 0 {
		n := f.maxLen
		s.MaxLength = &n
	}
	return s, nil
}

// AppIDSchema validates the owning-application identifier.
func AppIDSchema() pubschema.Schema[AppID] {
	return formatSchema[AppID]{format: "app-id", minLen: 1, maxLen: 200}
}

// LocaleSchema validates a language tag: a two-letter primary subtag with an
// optional two-letter region ("en", "en-US", "pt-BR").
func LocaleSchema() pubschema.Schema[Locale] {
	return formatSchema[Locale]{format: "locale", minLen: 2, maxLen: 5, check: isLocale}
}

func isLocale(s string) bool {
	if len(s) != 2 && len(s) != 5 {
		return false
	}
	if !isAlphaLower(s[0]) || !isAlphaLower(s[1]) {
		return false
	}
	if len(s) == 2 {
		return true
	}
	return s[2] == '-' && isAlpha(s[3]) && isAlpha(s[4])
}

func isAlphaLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isAlpha(c byte) bool      { return isAlphaLower(c) || (c >= 'A' && c <= 'Z') }

// TagSchema validates a free-text tag.
func TagSchema() pubschema.Schema[Tag] {
	return formatSchema[Tag]{format: "tag", minLen: 1, maxLen: 50}
}

// SignatureSchema validates the opaque metadata signature.
func SignatureSchema() pubschema.Schema[Signature] {
	return formatSchema[Signature]{format: "signature", minLen: 1, maxLen: -1}
}

// URISchema validates an absolute URI with an explicit scheme.
func URISchema() pubschema.Schema[URI] {
	return formatSchema[URI]{format: "uri", minLen: 6, maxLen: 2000, check: isAbsoluteURI}
}

func isAbsoluteURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// DateTimeSchema validates an RFC 3339 timestamp.
func DateTimeSchema() pubschema.Schema[DateTime] {
	return formatSchema[DateTime]{format: "date-time", minLen: 1, maxLen: -1, check: func(s string) bool {
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	}}
}

// NonEmptyString returns a field adapter for a required non-empty string,
// carrying the given description into generated documentation.
func NonEmptyString(desc string) dsl.AnyAdapter {
	return dsl.SchemaOf[string](dsl.String().Min(1)).Describe(desc)
}
