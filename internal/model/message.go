package model

import "time"

// Message is a single direct message between two users. Image and audio are
// opaque references to externally hosted media.
type Message struct {
	ID               int64
	SenderID         int64
	ReceiverID       int64
	Text             *string
	ImageURL         *string
	AudioURL         *string
	OriginalLanguage string

	// Translations maps a target language name to the translated text. Entries
	// are derivative of Text: editing the message replaces the whole map with
	// an empty one.
	Translations map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TranslationFor returns the cached translation for the given language.
func (m *Message) TranslationFor(language string) (string, bool) {
	if m == nil || m.Translations == nil {
		return "", false
	}
	text, ok := m.Translations[language]
	return text, ok
}
