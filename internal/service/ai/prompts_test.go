package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chatty/backend/internal/service/ai"
)

func TestTranslatePrompt(t *testing.T) {
	prompt := ai.TranslatePrompt("good morning", "Spanish")
	require.Contains(t, prompt, "Translate the following text to Spanish")
	require.Contains(t, prompt, "Only return the translated text")
	require.Contains(t, prompt, `"good morning"`)
}

func TestCleanTranslation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "buenos días", want: "buenos días"},
		{name: "whitespace", input: "  buenos días \n", want: "buenos días"},
		{name: "double quotes", input: `"buenos días"`, want: "buenos días"},
		{name: "curly quotes", input: "“buenos días”", want: "buenos días"},
		{name: "prefix", input: "Translation: buenos días", want: "buenos días"},
		{name: "prefix and quotes", input: `Here is the translation: "buenos días"`, want: "buenos días"},
		{name: "internal quotes kept", input: `dijo "hola" ayer`, want: `dijo "hola" ayer`},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ai.CleanTranslation(tc.input))
		})
	}
}
