package render

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

var ansiColors = [4]termenv.ANSIColor{
	board.Red:    termenv.ANSIRed,
	board.Blue:   termenv.ANSIBlue,
	board.Green:  termenv.ANSIGreen,
	board.Yellow: termenv.ANSIYellow,
}

// Colorize tints robot and goal glyphs of a rendered board for
// terminal output. With a monochrome profile the input is returned
// unchanged, so piping to a file stays clean.
func Colorize(s string, profile termenv.Profile) string {
	if profile == termenv.Ascii {
		return s
	}

	var sb strings.Builder
	for _, r := range s {
		if c, ok := glyphColor(r); ok {
			sb.WriteString(termenv.String(string(r)).Foreground(profile.Convert(ansiColors[c])).String())
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// glyphColor maps the renderer's robot/goal glyphs back to a color.
func glyphColor(r rune) (board.Color, bool) {
	switch {
	case r >= '1' && r <= '4':
		return board.Color(r - '1'), true
	case r >= 'a' && r <= 'd':
		return board.Color(r - 'a'), true
	case r >= 'A' && r <= 'D':
		return board.Color(r - 'A'), true
	}
	return 0, false
}
