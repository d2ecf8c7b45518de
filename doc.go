package pubschema

// Package pubschema provides:
//
// - Type-safe, composable validation for publication metadata based on Schema[T]
// - A stable error model via Issues (JSON Pointer, code, message)
// - Input sources for JSON (goccy/go-json) and YAML documents
// - A builder DSL for objects, enums, literal unions, and bounded arrays
//
// Design policy:
// - Keep only public APIs in the root package; builders live under dsl/.
// - Publication-domain schemas live under publication/; the root stays generic.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := publication.ArticleMetadataSchema()
//	v, err := pubschema.ParseFrom(ctx, s, pubschema.JSONBytes(data))
