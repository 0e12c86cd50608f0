package game

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// roleClaimPatterns match first-person claims of holding a specific role,
// in Uzbek, Russian and English across Latin and Cyrillic script. Go's \b
// is an ASCII word boundary, so the non-ASCII words are bounded with
// letter classes instead.
var roleClaimPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(^|[^\p{L}])(men|я|i am|i'm)\s*[-,.]?\s*(mafiya|mafia|мафия|mafiyaman)($|[^\p{L}])`),
	regexp.MustCompile(`(?i)(^|[^\p{L}])(men|я|i am|i'm)\s*[-,.]?\s*(aholi|fuqaro|civilian|мирный|житель|aholiman|fuqaroman)($|[^\p{L}])`),
	regexp.MustCompile(`(?i)(^|[^\p{L}])(men|я|i am|i'm)\s*[-,.]?\s*(komissar|detective|комиссар|детектив|komissarman)($|[^\p{L}])`),
	regexp.MustCompile(`(?i)(^|[^\p{L}])(men|я|i am|i'm)\s*[-,.]?\s*(doktor|doctor|врач|док|doktorman)($|[^\p{L}])`),
	regexp.MustCompile(`(?i)(^|[^\p{L}])(mafiyaman|komissarman|doktorman|aholiman|fuqaroman)($|[^\p{L}])`),
	regexp.MustCompile(`(?i)(^|[^\p{L}])(я|i'm|i am)\s+(mafia|detective|doctor|civilian)($|[^\p{L}])`),
}

// ModerateMessage validates a raw chat message and returns the trimmed
// text. Messages that are blank, longer than MaxChatMessageLen runes, or
// that disclose the author's role are rejected with ErrValidation.
func ModerateMessage(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("%w: empty message", ErrValidation)
	}
	if utf8.RuneCountInString(text) > MaxChatMessageLen {
		return "", fmt.Errorf("%w: message longer than %d characters", ErrValidation, MaxChatMessageLen)
	}
	if IsRoleClaim(text) {
		return "", fmt.Errorf("%w: role claims are not allowed in chat", ErrValidation)
	}
	return text, nil
}

// IsRoleClaim reports whether the message discloses the author's role,
// matched case-insensitively anywhere in the text.
func IsRoleClaim(message string) bool {
	for _, pattern := range roleClaimPatterns {
		if pattern.MatchString(message) {
			return true
		}
	}
	return false
}
