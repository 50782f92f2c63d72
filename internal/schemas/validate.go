// Package schemas provides JSON Schema validation for request bodies sent to the backend.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ProfileDataSchema is the schema of the POST /onboarding body.
//
//go:embed profile_data.schema.json
var ProfileDataSchema []byte

var (
	profileOnce   sync.Once
	profileSchema *gojsonschema.Schema
	profileErr    error
)

// ValidationError lists every schema violation of a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one violation. Field is a dotted path such as "previousRoles.0.endMonth".
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError means the embedded schema itself did not compile.
type SchemaLoadError struct {
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to compile profile data schema: %v", e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("profile data failed schema validation:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateProfileData validates a POST /onboarding body against the embedded schema.
// The schema is compiled once.
func ValidateProfileData(doc []byte) error {
	profileOnce.Do(func() {
		profileSchema, profileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(ProfileDataSchema))
	})
	if profileErr != nil {
		return &SchemaLoadError{Cause: profileErr}
	}

	result, err := profileSchema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to load JSON document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{Field: field, Message: desc.Description()})
	}

	return validationErr
}
