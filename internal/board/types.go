package board

// DefaultDateFormat is used when a board does not configure a date format.
const DefaultDateFormat = "DD.MM.YYYY"

// TagColor binds display colors to a tag.
type TagColor struct {
	TagKey          string `json:"tagKey"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
}

// TagGroup is a named set of tag keys offered together.
// Keys may reference tags that have no color; see Settings.AvailableTags.
type TagGroup struct {
	Name string   `json:"name"`
	Keys []string `json:"keys"`
}

// Settings holds the board configuration read from the settings block.
type Settings struct {
	DateFormat        string     `json:"date-format"`
	DateDisplayFormat string     `json:"date-display-format"`
	TagColors         []TagColor `json:"tag-colors"`
	// TagGroups is nil when the board configures no groups. The parser never
	// stores an empty non-nil slice, so nil and "absent" are the same thing.
	TagGroups []TagGroup `json:"tag_groups,omitempty"`
}

// DefaultSettings returns the settings used when a board has no usable
// settings block.
func DefaultSettings() Settings {
	return Settings{
		DateFormat:        DefaultDateFormat,
		DateDisplayFormat: DefaultDateFormat,
		TagColors:         []TagColor{},
	}
}

// HasTagGroups reports whether tag groups are configured.
func (s Settings) HasTagGroups() bool {
	return s.TagGroups != nil
}

// TagColor returns the color binding for key.
func (s Settings) TagColor(key string) (TagColor, bool) {
	for _, tc := range s.TagColors {
		if tc.TagKey == key {
			return tc, true
		}
	}
	return TagColor{}, false
}

// AvailableTags returns the keys of group that have a color binding,
// in group order.
func (s Settings) AvailableTags(group TagGroup) []string {
	tags := make([]string, 0, len(group.Keys))
	for _, key := range group.Keys {
		if _, ok := s.TagColor(key); ok {
			tags = append(tags, key)
		}
	}
	return tags
}

// LegacyGroupName names the single group offered when no groups are configured.
const LegacyGroupName = "Tags"

// TagChoices returns the tag groups to offer when creating a task.
// Configured groups are filtered to their available tags and dropped when
// nothing is left. Without configured groups, all colored tags are offered
// as one group named LegacyGroupName.
func (s Settings) TagChoices() []TagGroup {
	if !s.HasTagGroups() {
		if len(s.TagColors) == 0 {
			return nil
		}
		keys := make([]string, 0, len(s.TagColors))
		for _, tc := range s.TagColors {
			keys = append(keys, tc.TagKey)
		}
		return []TagGroup{{Name: LegacyGroupName, Keys: keys}}
	}

	var choices []TagGroup
	for _, group := range s.TagGroups {
		tags := s.AvailableTags(group)
		if len(tags) == 0 {
			continue
		}
		choices = append(choices, TagGroup{Name: group.Name, Keys: tags})
	}
	return choices
}

// Board is the parsed form of one board document.
type Board struct {
	// ID is the handle of the backing document in its store.
	ID       string
	Settings Settings
	// Lanes lists lane names in document order. Never empty.
	Lanes []string
	// SettingsErr explains why Settings fell back to defaults.
	// It is nil when the settings block decoded cleanly.
	SettingsErr error
}

// HasLane reports whether name is one of the board's lanes.
func (b *Board) HasLane(name string) bool {
	for _, lane := range b.Lanes {
		if lane == name {
			return true
		}
	}
	return false
}

// DefaultLane returns the first lane of the board.
func (b *Board) DefaultLane() string {
	if len(b.Lanes) == 0 {
		return ""
	}
	return b.Lanes[0]
}
