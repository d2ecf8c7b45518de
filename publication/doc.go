// Package publication defines and validates the structured metadata carried
// by publications (content records) in a decentralized content-addressed
// network.
//
// Schemas layer three tiers: CoreSchema (identity envelope), CommonSchema
// (shared descriptive fields), and per-variant details produced by the
// composition functions. DetailsWith merges a focus-specific augmentation
// into the common schema; PublicationWith wraps the result with the
// marketplace envelope, an optional signature, and the $schema literal. The
// augmentation types constrain the discriminant (FocusSelector) and the lens
// (DetailsSchema) at compile time, so a malformed composition cannot be
// constructed.
//
// All schemas are built once at package initialization and are pure,
// immutable validators afterwards; a single Parse reports every violated
// field path in one aggregated Issues error.
package publication
