package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordhunt/internal/lexicon"
)

func TestContainsWord_RoundTrip(t *testing.T) {
	words := []string{"FOO", "BAR", "BAZ", "FOOOZ", "BARZ", "BUZ", "A"}
	tr := lexicon.New(words)
	for _, w := range words {
		assert.True(t, tr.ContainsWord(w), "ContainsWord(%q)", w)
	}
	for _, w := range []string{"QUUX", "ZED", "X"} {
		assert.False(t, tr.ContainsWord(w), "ContainsWord(%q)", w)
	}
}

func TestContainsWord_PrefixIsNotWord(t *testing.T) {
	tr := lexicon.New([]string{"CATS"})
	assert.False(t, tr.ContainsWord("CAT"))
	assert.False(t, tr.ContainsWord("CATSS"))
	assert.True(t, tr.ContainsWord("CATS"))

	// inserting the shorter word later marks the existing node
	tr.Add("CAT")
	assert.True(t, tr.ContainsWord("CAT"))
}

func TestEmptyString(t *testing.T) {
	tr := lexicon.New([]string{"", "AB"})
	assert.False(t, tr.ContainsWord(""))
	assert.False(t, tr.HasPrefix(""))
	assert.Equal(t, 1, tr.Len())

	var zero lexicon.Trie
	assert.False(t, zero.ContainsWord("A"))
	assert.False(t, zero.HasPrefix("A"))
	assert.Empty(t, zero.Words())
}

func TestPrefixMonotonicity(t *testing.T) {
	words := []string{"ABDC", "ABD", "AC", "STRAW", "STRAWBERRY"}
	tr := lexicon.New(words)
	for _, w := range words {
		require.True(t, tr.ContainsWord(w))
		runes := []rune(w)
		for i := 1; i <= len(runes); i++ {
			assert.True(t, tr.HasPrefix(string(runes[:i])), "HasPrefix(%q)", string(runes[:i]))
		}
	}
	assert.False(t, tr.HasPrefix("ABE"))
	assert.False(t, tr.HasPrefix("B"))
}

func TestDuplicatesIdempotent(t *testing.T) {
	tr := lexicon.New([]string{"DOG", "DOG", "DOGS", "DOG"})
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, []string{"DOG", "DOGS"}, tr.Words())
}

func TestWords_Sorted(t *testing.T) {
	tr := lexicon.New([]string{"ZOO", "APE", "APES", "BEE", "ÉTÉ"})
	assert.Equal(t, []string{"APE", "APES", "BEE", "ZOO", "ÉTÉ"}, tr.Words())
	assert.True(t, tr.ContainsWord("ÉTÉ"))
}
