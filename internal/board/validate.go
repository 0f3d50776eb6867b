package board

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed settings.schema.json
var settingsSchemaJSON string

const settingsSchemaURL = "settings.schema.json"

var (
	settingsSchemaOnce sync.Once
	settingsSchema     *jsonschema.Schema
	settingsSchemaErr  error
)

// ValidationError is a settings problem at a path inside the settings object.
type ValidationError struct {
	Path string // dotted path, e.g. tag-colors[0].tagKey
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains settings validation results.
type ValidationResult struct {
	Found      bool // a settings block exists
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// ValidateSettings checks the settings block of a document against the
// settings schema. Parsing itself stays tolerant; this is a diagnostic for
// board authors. A document without a block is valid, with a warning.
func ValidateSettings(text string) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	raw, ok := settingsBlock(text)
	if !ok {
		result.Warnings = append(result.Warnings, "settings block not found, defaults apply")
		return result
	}
	result.Found = true

	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)})
		return result
	}

	schema, err := compiledSettingsSchema()
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("JSON Schema validation not available (%v), using minimal checks", err))
		validateMinimal(doc, result)
	} else {
		result.UsedSchema = true
		if err := schema.Validate(doc); err != nil {
			result.Valid = false
			appendSchemaErrors(result, err)
		}
	}

	if result.Valid {
		appendSettingsWarnings(ParseSettings(text), raw, result)
	}
	return result
}

func compiledSettingsSchema() (*jsonschema.Schema, error) {
	settingsSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(settingsSchemaURL, strings.NewReader(settingsSchemaJSON)); err != nil {
			settingsSchemaErr = fmt.Errorf("load settings schema: %w", err)
			return
		}
		settingsSchema, settingsSchemaErr = compiler.Compile(settingsSchemaURL)
	})
	return settingsSchema, settingsSchemaErr
}

// validateMinimal performs structural checks without JSON Schema.
func validateMinimal(doc interface{}, result *ValidationResult) {
	obj, ok := doc.(map[string]interface{})
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{Err: errors.New("settings must be a JSON object")})
		return
	}

	for _, key := range []string{keyDateFormat, keyDateDisplayFormat} {
		if v, ok := obj[key]; ok {
			if s, ok := v.(string); !ok || s == "" {
				result.Valid = false
				result.Errors = append(result.Errors, &ValidationError{Path: key, Err: errors.New("must be a non-empty string")})
			}
		}
	}

	if v, ok := obj[keyTagColors]; ok {
		items, ok := v.([]interface{})
		if !ok {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{Path: keyTagColors, Err: errors.New("must be an array")})
		}
		for i, item := range items {
			entry, _ := item.(map[string]interface{})
			if key, _ := entry["tagKey"].(string); key == "" {
				result.Valid = false
				result.Errors = append(result.Errors, &ValidationError{
					Path: fmt.Sprintf("%s[%d].tagKey", keyTagColors, i),
					Err:  errors.New("missing required field"),
				})
			}
		}
	}

	if v, ok := obj[keyTagGroups]; ok {
		items, ok := v.([]interface{})
		if !ok {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{Path: keyTagGroups, Err: errors.New("must be an array")})
		}
		for i, item := range items {
			entry, _ := item.(map[string]interface{})
			if name, _ := entry["name"].(string); name == "" {
				result.Valid = false
				result.Errors = append(result.Errors, &ValidationError{
					Path: fmt.Sprintf("%s[%d].name", keyTagGroups, i),
					Err:  errors.New("missing required field"),
				})
			}
			if _, ok := entry["keys"].([]interface{}); !ok {
				result.Valid = false
				result.Errors = append(result.Errors, &ValidationError{
					Path: fmt.Sprintf("%s[%d].keys", keyTagGroups, i),
					Err:  errors.New("must be an array of strings"),
				})
			}
		}
	}
}

// appendSettingsWarnings reports settings that are valid but will not
// behave the way the author probably expects.
func appendSettingsWarnings(s Settings, raw string, result *ValidationResult) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		var colors []TagColor
		if json.Unmarshal(obj[keyTagColors], &colors) == nil && len(colors) != len(s.TagColors) {
			result.Warnings = append(result.Warnings, "duplicate tag keys in tag-colors, first binding wins")
		}
		if _, ok := obj[keyTagGroups]; ok && !s.HasTagGroups() {
			result.Warnings = append(result.Warnings, "tag_groups is empty, all colored tags are offered together")
		}
	}

	for _, group := range s.TagGroups {
		for _, key := range group.Keys {
			if _, ok := s.TagColor(key); !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("tag group %q references %q which has no tag color and will be hidden", group.Name, key))
			}
		}
	}
}

func appendSchemaErrors(result *ValidationResult, err error) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
