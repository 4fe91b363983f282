package assets_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordhunt/assets"
)

func TestWordList(t *testing.T) {
	ws, err := assets.WordList()
	require.NoError(t, err)
	require.NotEmpty(t, ws)
	for _, w := range ws {
		assert.NotContains(t, w, "#")
		assert.NotEmpty(t, w)
	}
	assert.Contains(t, ws, "CAT")
}

func TestMigrations(t *testing.T) {
	m, err := assets.Migrations()
	require.NoError(t, err)
	names, err := fs.Glob(m, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_words.sql", "002_word_length.sql"}, names)
}
