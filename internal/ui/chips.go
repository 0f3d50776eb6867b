package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/kantask/internal/board"
)

var (
	chipStyle    = lipgloss.NewStyle().Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	laneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
)

// TagChip renders a tag with its configured colors.
func TagChip(tc board.TagColor) string {
	style := chipStyle
	if c, ok := terminalColor(tc.Color); ok {
		style = style.Foreground(c)
	}
	if c, ok := terminalColor(tc.BackgroundColor); ok {
		style = style.Background(c)
	}
	return style.Render(tc.TagKey)
}

// TagChips renders keys as chips using the colors in s.
func TagChips(s board.Settings, keys []string) string {
	chips := make([]string, 0, len(keys))
	for _, key := range keys {
		tc, ok := s.TagColor(key)
		if !ok {
			tc = board.TagColor{TagKey: key}
		}
		chips = append(chips, TagChip(tc))
	}
	return strings.Join(chips, " ")
}

// RenderBoard describes a board: its lanes, date formats and the tag
// choices offered when adding a task.
func RenderBoard(b *board.Board) string {
	var out strings.Builder
	out.WriteString(headingStyle.Render(BoardName(b)) + " " + labelStyle.Render(b.ID) + "\n\n")

	out.WriteString(labelStyle.Render("Lanes") + "\n")
	for i, lane := range b.Lanes {
		fmt.Fprintf(&out, "  %d. %s\n", i+1, laneStyle.Render(lane))
	}

	s := b.Settings
	out.WriteString("\n" + labelStyle.Render("Date format") + "  " + s.DateFormat + "\n")
	out.WriteString(labelStyle.Render("Display    ") + "  " + s.DateDisplayFormat + "\n")

	choices := s.TagChoices()
	out.WriteString("\n" + labelStyle.Render("Tags") + "\n")
	if len(choices) == 0 {
		out.WriteString("  none configured\n")
	}
	for _, group := range choices {
		fmt.Fprintf(&out, "  %s  %s\n", group.Name, TagChips(s, group.Keys))
	}
	return out.String()
}

// terminalColor converts a CSS color as stored by the kanban plugin (hex,
// rgb() or rgba()) into a lipgloss color.
func terminalColor(css string) (lipgloss.Color, bool) {
	css = strings.TrimSpace(css)
	if css == "" {
		return "", false
	}
	if strings.HasPrefix(css, "#") {
		switch len(css) {
		case 4, 7:
			return lipgloss.Color(css), true
		case 9:
			return lipgloss.Color(css[:7]), true
		}
		return "", false
	}

	lower := strings.ToLower(css)
	var inner string
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		inner = lower[len("rgba(") : len(lower)-1]
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		inner = lower[len("rgb(") : len(lower)-1]
	default:
		return "", false
	}

	parts := strings.Split(inner, ",")
	if len(parts) < 3 {
		return "", false
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return "", false
		}
		rgb[i] = v
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])), true
}
