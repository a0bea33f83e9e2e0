package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// variationSelector16 asks for the emoji presentation of the previous code
// point. Clients send it inconsistently so it is not part of the key.
const variationSelector16 = "\uFE0F"

var (
	customEmojiMention = regexp.MustCompile(`^<(a?):([A-Za-z0-9_~]{2,32}):(\d{15,21})>$`)
	customEmojiAPIName = regexp.MustCompile(`^([A-Za-z0-9_~]{2,32}):(\d{15,21})$`)
)

// Emoji is either a Unicode emoji (ID empty) or a custom server emoji.
type Emoji struct {
	Name     string
	ID       string
	Animated bool
}

// ParseEmoji accepts a Unicode emoji, a custom emoji mention (<:name:id>,
// <a:name:id>) or the name:id form used by the reaction endpoints.
func ParseEmoji(raw string) (Emoji, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Emoji{}, NewValidationError("emoji", "required")
	}

	if m := customEmojiMention.FindStringSubmatch(s); m != nil {
		return Emoji{Name: m[2], ID: m[3], Animated: m[1] == "a"}, nil
	}
	if m := customEmojiAPIName.FindStringSubmatch(s); m != nil {
		return Emoji{Name: m[1], ID: m[2]}, nil
	}

	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return Emoji{}, NewValidationError("emoji", fmt.Sprintf("%q is not a single emoji", s))
	}
	if strings.IndexFunc(s, func(r rune) bool { return r > unicode.MaxASCII }) < 0 || !isSingleEmoji(s) {
		return Emoji{}, NewValidationError("emoji", fmt.Sprintf("%q is not an emoji", s))
	}

	return Emoji{Name: s}, nil
}

const (
	zeroWidthJoiner = '\u200D'
	keycapMark      = '\u20E3'
)

// isSingleEmoji reports whether s is one emoji grapheme: a keycap sequence,
// a regional indicator pair, or base code points chained by zero width
// joiners, each optionally followed by selectors, skin tones or tags.
func isSingleEmoji(s string) bool {
	runes := []rune(s)
	if runes[len(runes)-1] == keycapMark {
		return isKeycap(runes)
	}

	var bases, joiners, regional int
	for _, r := range runes {
		switch {
		case r == zeroWidthJoiner:
			joiners++
		case r == '\uFE0E' || r == '\uFE0F':
		case r >= 0x1F3FB && r <= 0x1F3FF: // skin tones
		case r >= 0xE0020 && r <= 0xE007F: // tag sequence (subdivision flags)
		case r >= 0x1F1E6 && r <= 0x1F1FF:
			regional++
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsPunct(r), unicode.IsMark(r), unicode.IsControl(r):
			return false
		default:
			bases++
		}
	}

	if regional > 0 {
		return regional == 2 && bases == 0 && joiners == 0
	}
	return bases >= 1 && bases == joiners+1
}

// isKeycap matches [0-9#*] FE0F? 20E3.
func isKeycap(runes []rune) bool {
	switch len(runes) {
	case 2:
	case 3:
		if runes[1] != '\uFE0F' {
			return false
		}
	default:
		return false
	}
	r := runes[0]
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// IsZero reports whether the emoji is unset.
func (e Emoji) IsZero() bool { return e.Name == "" && e.ID == "" }

// IsCustom reports whether the emoji belongs to a server.
func (e Emoji) IsCustom() bool { return e.ID != "" }

// Key is the canonical form used to route reactions. Custom emojis are keyed
// by id (names can be edited), Unicode emojis by their code points.
func (e Emoji) Key() string {
	if e.IsCustom() {
		return e.ID
	}
	return strings.ReplaceAll(e.Name, variationSelector16, "")
}

// APIName is the form expected by the reaction endpoints.
func (e Emoji) APIName() string {
	if e.IsCustom() {
		return e.Name + ":" + e.ID
	}
	return e.Name
}

// String renders the emoji the way it is displayed in a message.
func (e Emoji) String() string {
	if !e.IsCustom() {
		return e.Name
	}
	if e.Animated {
		return "<a:" + e.Name + ":" + e.ID + ">"
	}
	return "<:" + e.Name + ":" + e.ID + ">"
}
