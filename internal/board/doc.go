// Package board parses kanban boards stored as Markdown documents.
//
// A board document keeps its lanes as level-2 headings and its settings in
// an embedded comment block, the way the Obsidian Kanban plugin writes them:
//
//	---
//	kanban-plugin: basic
//	is-task-board: true
//	---
//
//	## To Do
//
//	- [ ] Buy milk #home @{01.01.2025}
//
//	## Done
//
//	%% kanban:settings
//	```
//	{"kanban-plugin":"basic","date-format":"DD.MM.YYYY","tag-colors":[{"tagKey":"#home","color":"#fff","backgroundColor":"#3a3"}]}
//	```
//	%%
//
// # Settings
//
// Recognized keys in the settings object:
//   - "date-format": moment-style format used when writing dates
//   - "date-display-format": moment-style format used when showing dates
//   - "tag-colors": array of {"tagKey", "color", "backgroundColor"}
//   - "tag_groups": array of {"name", "keys"}; optional
//
// Parsing is tolerant. A missing block, invalid JSON or a non-object value
// all produce the default settings (DD.MM.YYYY, no tags, no groups). The
// reason is kept on Board.SettingsErr so callers can log it.
//
// Tag colors and groups are kept as written, with two exceptions: a tag
// color without a "tagKey" and a repeated "tagKey" after its first binding
// are dropped, and so is a tag group without a "name". Neither can be
// offered as a choice. An empty "tag_groups" array counts as absent.
//
// # Lanes
//
// Every line whose trimmed form is "## <label>" opens a lane. Labels are
// trimmed and kept in document order, duplicates included. A document
// without lanes is not a board and Parse returns ErrNoLanesFound.
package board
