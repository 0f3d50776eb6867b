// Package ui provides the terminal pieces of kantask: the interactive board
// selector and lipgloss renderings of boards and tag chips.
package ui
