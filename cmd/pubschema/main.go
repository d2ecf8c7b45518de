package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"

	pubschema "github.com/pubgraph/pubschema"
	"github.com/pubgraph/pubschema/i18n"
	"github.com/pubgraph/pubschema/publication"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	case "doc":
		docCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `pubschema CLI

Usage:
  pubschema validate [-schema URL] [-lang en|ja] [-max-bytes N] [-lint-id] file.json|file.yaml
  pubschema doc -schema URL

Without -schema, validate picks the variant by the document's $schema field.`)
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaID string
	var lang string
	var maxBytes int64
	var lintID bool
	fs.StringVar(&schemaID, "schema", "", "validate against this $schema variant instead of auto-detecting")
	fs.StringVar(&lang, "lang", "en", "issue message language (en/ja)")
	fs.Int64Var(&maxBytes, "max-bytes", 0, "reject documents larger than this many bytes")
	fs.BoolVar(&lintID, "lint-id", false, "warn when id is not a UUID")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pubschema: %v\n", err)
		os.Exit(1)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		fmt.Fprintf(os.Stderr, "pubschema: %s exceeds %d bytes\n", path, maxBytes)
		os.Exit(1)
	}

	src := sourceFor(path, data)
	ctx := context.Background()

	schema, perr := pickSchema(schemaID, src)
	if perr != "" {
		fmt.Fprintln(os.Stderr, "pubschema: "+perr)
		os.Exit(1)
	}

	out, err := pubschema.ParseFrom(ctx, schema, sourceFor(path, data))
	if err != nil {
		reportIssues(err)
		os.Exit(1)
	}
	if lintID {
		lintPublicationID(out)
	}
	fmt.Printf("%s: valid (%s)\n", path, schema.ID())
}

func sourceFor(path string, data []byte) pubschema.Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return pubschema.YAMLBytes(data)
	default:
		return pubschema.JSONBytes(data)
	}
}

// pickSchema resolves the variant either from the -schema flag or from the
// document's own $schema field.
func pickSchema(flagID string, src pubschema.Source) (publication.PublicationSchema, string) {
	if flagID != "" {
		s, ok := publication.BySchemaID(publication.SchemaID(flagID))
		if !ok {
			return publication.PublicationSchema{}, "unknown schema: " + flagID
		}
		return s, ""
	}
	v, err := src.Decode()
	if err != nil {
		return publication.PublicationSchema{}, err.Error()
	}
	m, ok := v.(map[string]any)
	if !ok {
		return publication.PublicationSchema{}, "document is not an object"
	}
	id, _ := m["$schema"].(string)
	if id == "" {
		return publication.PublicationSchema{}, "document carries no $schema; use -schema"
	}
	s, ok := publication.BySchemaID(publication.SchemaID(id))
	if !ok {
		return publication.PublicationSchema{}, "unknown schema: " + id
	}
	return s, ""
}

func lintPublicationID(out map[string]any) {
	lens, _ := out["lens"].(map[string]any)
	if lens == nil {
		return
	}
	if id, _ := lens["id"].(string); id != "" && !publication.IsUUID(id) {
		fmt.Fprintf(os.Stderr, "warning: id %q is not a UUID (recommended form)\n", id)
	}
}

func reportIssues(err error) {
	iss, ok := pubschema.AsIssues(err)
	if !ok {
		fmt.Fprintf(os.Stderr, "pubschema: %v\n", err)
		return
	}
	for _, it := range iss {
		line := fmt.Sprintf("%s at %s: %s", it.Code, it.Path, it.Message)
		if it.Hint != "" {
			line += " (" + it.Hint + ")"
		}
		fmt.Fprintln(os.Stderr, line)
	}
}

func docCmd(args []string) {
	fs := flag.NewFlagSet("doc", flag.ExitOnError)
	var schemaID string
	fs.StringVar(&schemaID, "schema", "", "$schema of the variant to document")
	_ = fs.Parse(args)
	if schemaID == "" {
		fs.Usage()
		os.Exit(2)
	}
	s, ok := publication.BySchemaID(publication.SchemaID(schemaID))
	if !ok {
		fmt.Fprintln(os.Stderr, "pubschema: unknown schema: "+schemaID)
		os.Exit(1)
	}
	js, err := s.JSONSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pubschema: %v\n", err)
		os.Exit(1)
	}
	enc := j.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(js); err != nil {
		fmt.Fprintf(os.Stderr, "pubschema: %v\n", err)
		os.Exit(1)
	}
}
