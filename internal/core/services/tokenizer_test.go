package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \t\n  "))
}

func TestTokenize_GarbageInput(t *testing.T) {
	assert.Empty(t, Tokenize("??? --- !!!"))
}

func TestTokenize_LowercasesAndSplits(t *testing.T) {
	assert.Equal(t, []string{"neft", "kaise", "kare"}, Tokenize("NEFT kaise kare"))
}

func TestTokenize_DevanagariNormalisation(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"account close hindi", "खाता बंद", []string{"account", "close"}},
		{"account close hinglish", "khata band karna hai", []string{"account", "close", "karna", "hai"}},
		{"cif hindi", "सीआईएफ details", []string{"cif", "details"}},
		{"neft hindi", "एनईएफटी से पैसा", []string{"neft"}},
		{"nominee variants", "नामिनी details", []string{"nomination", "details"}},
		{"balance hindi", "बैलेंस kitna hai", []string{"balance", "kitna", "hai"}},
		{"transfer synonym", "fund transfer", []string{"fund", "fund", "transfer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.query))
		})
	}
}

func TestTokenize_ReplacementOrderIsStable(t *testing.T) {
	// "inquiry" must canonicalise to "inquire", not survive as-is.
	assert.Equal(t, []string{"utr", "inquire"}, Tokenize("UTR inquiry"))

	// "nominee" folds into "nomination" before splitting.
	assert.Equal(t, []string{"registered", "nomination"}, Tokenize("registered nominee"))
}

func TestTokenize_DropsUnmappedDevanagari(t *testing.T) {
	// Unmapped Devanagari falls on a split boundary and disappears.
	tokens := Tokenize("neft सहायता")
	assert.Equal(t, []string{"neft"}, tokens)
}
