package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrSettingsNotFound indicates the document has no settings block.
	ErrSettingsNotFound = errors.New("kanban settings block not found")
	// ErrMalformedSettings indicates the settings block is not a JSON object.
	ErrMalformedSettings = errors.New("malformed kanban settings block")
)

// MalformedSettingsError carries the decode failure behind ErrMalformedSettings.
type MalformedSettingsError struct {
	Err error
}

func (e *MalformedSettingsError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformedSettings, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *MalformedSettingsError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedSettings) hold.
func (e *MalformedSettingsError) Is(target error) bool {
	return target == ErrMalformedSettings
}

// Settings keys as written by the kanban plugin.
const (
	keyDateFormat        = "date-format"
	keyDateDisplayFormat = "date-display-format"
	keyTagColors         = "tag-colors"
	keyTagGroups         = "tag_groups"
)

var (
	settingsBlockRe = regexp.MustCompile("(?s)%%\\s*kanban:settings\\s*```(?:json)?\\s*(.*?)\\s*```\\s*%%")
	// Older releases kept tag groups in a block of their own.
	legacyGroupsBlockRe = regexp.MustCompile("(?s)%%\\s*kanban-tasks:settings\\s*```(?:json)?\\s*(.*?)\\s*```\\s*%%")
)

// ParseSettings extracts board settings from document text.
// It never fails: anything unusable yields DefaultSettings.
func ParseSettings(text string) Settings {
	s, _ := ReadSettings(text)
	return s
}

// ReadSettings extracts board settings from document text and reports why
// it fell back to defaults, if it did. The returned Settings are valid in
// every case; the error is either ErrSettingsNotFound or a
// *MalformedSettingsError.
func ReadSettings(text string) (Settings, error) {
	raw, ok := settingsBlock(text)
	if !ok {
		return DefaultSettings(), ErrSettingsNotFound
	}

	s, err := decodeSettings(raw)
	if err != nil {
		return DefaultSettings(), err
	}

	if !s.HasTagGroups() {
		s.TagGroups = legacyTagGroups(text)
	}
	return s, nil
}

// settingsBlock returns the fenced content of the first settings block.
func settingsBlock(text string) (string, bool) {
	m := settingsBlockRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func decodeObject(raw string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, &MalformedSettingsError{Err: err}
	}
	// "null" decodes into a nil map without an error.
	if obj == nil {
		return nil, &MalformedSettingsError{Err: errors.New("settings value is null")}
	}
	return obj, nil
}

func decodeSettings(raw string) (Settings, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return Settings{}, err
	}

	s := DefaultSettings()
	if v := stringField(obj, keyDateFormat); v != "" {
		s.DateFormat = v
	}
	if v := stringField(obj, keyDateDisplayFormat); v != "" {
		s.DateDisplayFormat = v
	}
	s.TagColors = tagColorsField(obj)
	s.TagGroups = tagGroupsField(obj)
	return s, nil
}

func stringField(obj map[string]json.RawMessage, key string) string {
	raw, ok := obj[key]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// tagColorsField decodes the tag colors, dropping entries without a key
// and keeping the first binding of each key.
func tagColorsField(obj map[string]json.RawMessage) []TagColor {
	colors := []TagColor{}
	raw, ok := obj[keyTagColors]
	if !ok {
		return colors
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return colors
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		var tc TagColor
		if err := json.Unmarshal(item, &tc); err != nil {
			continue
		}
		if tc.TagKey == "" || seen[tc.TagKey] {
			continue
		}
		seen[tc.TagKey] = true
		colors = append(colors, tc)
	}
	return colors
}

// tagGroupsField decodes the tag groups. It returns nil unless at least one
// named group decodes.
func tagGroupsField(obj map[string]json.RawMessage) []TagGroup {
	raw, ok := obj[keyTagGroups]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	var groups []TagGroup
	for _, item := range items {
		var g TagGroup
		if err := json.Unmarshal(item, &g); err != nil {
			continue
		}
		if g.Name == "" {
			continue
		}
		if g.Keys == nil {
			g.Keys = []string{}
		}
		groups = append(groups, g)
	}
	return groups
}

func legacyTagGroups(text string) []TagGroup {
	m := legacyGroupsBlockRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	obj, err := decodeObject(m[1])
	if err != nil {
		return nil
	}
	return tagGroupsField(obj)
}
