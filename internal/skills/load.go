package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed kb_schema.json
var kbSchema []byte

//go:embed defaults.json
var defaultKB []byte

var (
	defaultIndexOnce sync.Once
	defaultIndex     *Index
	defaultIndexErr  error
)

// DefaultIndex returns the index built from the embedded knowledge base.
// It is constructed once and shared; the result is immutable.
func DefaultIndex() (*Index, error) {
	defaultIndexOnce.Do(func() {
		var kb KnowledgeBase
		if err := json.Unmarshal(defaultKB, &kb); err != nil {
			defaultIndexErr = &KnowledgeBaseError{Message: "embedded knowledge base is invalid", Cause: err}
			return
		}
		defaultIndex, defaultIndexErr = NewIndex(kb)
	})
	return defaultIndex, defaultIndexErr
}

// LoadKnowledgeBase reads a knowledge base JSON file, validates it against the
// embedded schema, and returns the parsed mapping.
func LoadKnowledgeBase(path string) (KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base %s: %w", path, err)
	}
	return ParseKnowledgeBase(path, data)
}

// ParseKnowledgeBase validates and parses raw knowledge base JSON. The path is
// only used in error messages.
func ParseKnowledgeBase(path string, data []byte) (KnowledgeBase, error) {
	schemaLoader := gojsonschema.NewBytesLoader(kbSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, &KnowledgeBaseError{Message: "schema validation could not run", Cause: err}
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, &SchemaValidationError{Path: path, Issues: issues}
	}

	var kb KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, &KnowledgeBaseError{Message: "failed to parse knowledge base JSON", Cause: err}
	}
	return kb, nil
}
