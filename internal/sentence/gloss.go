package sentence

import (
	"strings"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

// topicMarker is the display-only annotation on topic glosses
// ("I (topic)"). It is stripped before template dispatch and never
// appears in a generated sentence.
const topicMarker = " (topic)"

// glossTemplate renders an English sentence from the stripped topic
// gloss and the noun gloss.
type glossTemplate func(subject, noun string) string

// glossTemplates dispatches by exact match on the stripped topic
// gloss. Adding a special-cased topic is a table entry, not a new
// branch. Anything not listed falls through to genericTemplate.
var glossTemplates = map[string]glossTemplate{
	"I": func(_, noun string) string {
		return "I am " + AddArticle(noun) + "."
	},
	"This place": func(_, noun string) string {
		return "This place is " + AddArticle(noun) + "."
	},
	// The demonstrative-thing and name templates take the noun gloss
	// bare: "This is apple.", "My name is Sora.".
	"This thing": func(_, noun string) string {
		return "This is " + noun + "."
	},
	"My name": func(_, noun string) string {
		return "My name is " + noun + "."
	},
}

func genericTemplate(subject, noun string) string {
	return subject + " is " + AddArticle(noun) + "."
}

// Gloss renders the English translation of the pattern sentence for a
// (topic, noun) pair.
func Gloss(topic domain.Topic, noun domain.Noun) string {
	subject := strings.TrimSuffix(topic.English, topicMarker)
	if tmpl, ok := glossTemplates[subject]; ok {
		return tmpl(subject, noun.English)
	}
	return genericTemplate(subject, noun.English)
}
