package encoding

import (
	"strings"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

// Sniff guesses the format of problem text. PDDL problems start with an
// s-expression, ASP fact files contain dim/1 facts, anything else is
// taken as the compact format.
func Sniff(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";;") || strings.HasPrefix(line, "%") {
			continue
		}
		if strings.HasPrefix(line, "(") {
			return FormatPDDL
		}
		break
	}
	if strings.Contains(text, "dim(") {
		return FormatASP
	}
	return FormatCompact
}

// Decode dispatches to the codec for the named format.
func Decode(text, format string) (*board.Problem, error) {
	switch format {
	case FormatASP:
		return DecodeASP(text)
	case FormatPDDL:
		return DecodePDDL(text)
	case FormatCompact:
		return DecodeCompact(text)
	}
	return nil, &DecodeError{Format: format, Reason: "unknown format"}
}

// Encode dispatches to the codec for the named format.
func Encode(p *board.Problem, format string) (string, error) {
	switch format {
	case FormatASP:
		return EncodeASP(p)
	case FormatPDDL:
		return EncodePDDL(p)
	case FormatCompact:
		return EncodeCompact(p)
	}
	return "", &EncodeError{Format: format, Reason: "unknown format"}
}
