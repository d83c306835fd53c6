package node

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaFS embeds the UAST JSON schema used to validate serialized documents.
//
//go:embed uast-schema.json
var SchemaFS embed.FS

const schemaFileName = "uast-schema.json"

// ErrInvalidDocument is returned when a serialized UAST fails schema validation.
var ErrInvalidDocument = errors.New("invalid uast document")

// Load decodes a serialized UAST document, validating it against the embedded
// schema first. The returned tree is ready for analyzer traversal.
func Load(reader io.Reader) (*Node, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read uast document: %w", err)
	}

	validateErr := validateDocument(raw)
	if validateErr != nil {
		return nil, validateErr
	}

	var root Node

	unmarshalErr := json.Unmarshal(raw, &root)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("decode uast document: %w", unmarshalErr)
	}

	return &root, nil
}

func validateDocument(raw []byte) error {
	schemaBytes, err := SchemaFS.ReadFile(schemaFileName)
	if err != nil {
		return fmt.Errorf("read embedded schema: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, validateErr := gojsonschema.Validate(schemaLoader, documentLoader)
	if validateErr != nil {
		return fmt.Errorf("validate uast document: %w", validateErr)
	}

	if result.Valid() {
		return nil
	}

	descriptions := make([]string, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		descriptions = append(descriptions, fmt.Sprintf("%s: %s", resultErr.Field(), resultErr.Description()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(descriptions, "; "))
}
