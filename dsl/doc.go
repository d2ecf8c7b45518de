// Package dsl provides the schema building blocks used to declare and compose
// validators: primitives (String/Bool), closed enumerations and literals,
// bounded arrays, and an object builder with required marks, defaults, and an
// unknown-key policy.
//
// Objects compose by extension: Extend(base) yields a builder carrying the
// base schema's field-descriptor set; fields registered afterwards override
// inherited entries of the same name. Building is a one-time, init-order
// concern: misuse surfaces from Build/MustBuild, never as a data-time
// validation error.
//
// A built object schema parses into map[string]any; Bind[T] attaches a struct
// type so the same descriptor set parses into a statically typed value.
//
//	base := dsl.Object().
//		Field("id", dsl.StringOf[string]().Describe("unique identifier")).
//		Require("id").
//		MustBuild()
//
//	extended := dsl.Extend(base).
//		Field("locale", dsl.StringOf[string]()).
//		Require("locale").
//		MustBuild()
package dsl
