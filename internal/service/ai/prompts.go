package ai

import (
	"fmt"
	"strings"
)

// TranslatePrompt builds the fixed instruction for translating a message. The
// model is told to return the translated text alone, but models still wrap
// answers in quotes or prefix them now and then; CleanTranslation handles that.
func TranslatePrompt(text, targetLanguage string) string {
	return fmt.Sprintf("Translate the following text to %s. Only return the translated text, nothing else: %q", targetLanguage, text)
}

// chatter prefixes some models insist on adding despite the instruction.
var translationPrefixes = []string{
	"translation:",
	"translated text:",
	"here is the translation:",
}

// CleanTranslation strips explanation prefixes and wrapping quotes from a raw
// provider response, returning only the translated text.
func CleanTranslation(raw string) string {
	text := strings.TrimSpace(raw)

	lower := strings.ToLower(text)
	for _, prefix := range translationPrefixes {
		if strings.HasPrefix(lower, prefix) {
			text = strings.TrimSpace(text[len(prefix):])
			break
		}
	}

	// The prompt quotes the source, so models often quote the answer too.
	for _, pair := range [][2]string{{`"`, `"`}, {"'", "'"}, {"“", "”"}, {"«", "»"}} {
		if len(text) >= 2 && strings.HasPrefix(text, pair[0]) && strings.HasSuffix(text, pair[1]) {
			text = strings.TrimSpace(text[len(pair[0]) : len(text)-len(pair[1])])
			break
		}
	}

	return text
}
