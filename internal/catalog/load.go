package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed catalog.json
var rawCatalog []byte

func init() {
	doc, err := parseDocument(rawCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded data invalid: %v", err))
	}
	c = buildIndex(doc)
}

// parseDocument validates raw catalog JSON against the document schema
// and decodes it.
func parseDocument(raw []byte) (*Document, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	compiled, err := compileDocumentSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	// Cross-field checks the schema can't express.
	for _, q := range doc.Questions {
		if q.AnswerIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %s: answerIndex %d out of range for %d options", q.ID, q.AnswerIndex, len(q.Options))
		}
	}
	return &doc, nil
}

func compileDocumentSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	const schemaURL = "schema://catalog.json"
	if err := compiler.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
