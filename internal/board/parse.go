package board

import (
	"errors"
	"fmt"
)

// ErrNoLanesFound indicates a document has no lane headings.
var ErrNoLanesFound = errors.New("no lanes found")

// Parse builds a Board from the text of document id.
// Settings problems never fail the parse; they are recorded on
// Board.SettingsErr. A document without lanes fails with ErrNoLanesFound.
func Parse(id, text string) (*Board, error) {
	settings, settingsErr := ReadSettings(text)

	lanes := ParseLanes(text)
	if len(lanes) == 0 {
		return nil, fmt.Errorf("%s: %w", id, ErrNoLanesFound)
	}

	return &Board{
		ID:          id,
		Settings:    settings,
		Lanes:       lanes,
		SettingsErr: settingsErr,
	}, nil
}
