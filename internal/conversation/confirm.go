package conversation

import "strings"

// Confirmation vocabulary. Single words are matched against whole
// tokens so "no" never fires on "now"; phrases are matched as
// substrings of the normalized text.
var (
	affirmativeWords = []string{
		"yes", "yeah", "yep", "yup", "confirm", "confirmed",
		"correct", "right", "sure", "ok", "okay", "proceed",
		"finalize", "done",
	}
	affirmativePhrases = []string{
		"place the order", "place my order", "go ahead",
		"that's right", "sounds good", "looks good", "all good",
	}
	negationWords = []string{
		"no", "not", "wait", "change", "cancel", "stop", "hold",
		"actually", "wrong",
	}
	negationPhrases = []string{
		"hold on", "add more", "one more", "not yet", "not quite",
	}
)

// IsConfirmation reports whether free text is a strong confirmation.
// Any negation marker wins over any affirmative in the same utterance.
func IsConfirmation(text string) bool {
	norm := normalize(text)
	if norm == "" {
		return false
	}
	tokens := tokenSet(norm)

	for _, p := range negationPhrases {
		if strings.Contains(norm, p) {
			return false
		}
	}
	for _, w := range negationWords {
		if tokens[w] {
			return false
		}
	}
	for _, p := range affirmativePhrases {
		if strings.Contains(norm, p) {
			return true
		}
	}
	for _, w := range affirmativeWords {
		if tokens[w] {
			return true
		}
	}
	return false
}

func normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '\'':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func tokenSet(norm string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.Fields(norm) {
		set[t] = true
	}
	return set
}
