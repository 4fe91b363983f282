// assets/embed.go
//
// Files compiled into the binary:
//   - words.txt: default lexicon, used when neither WORDS_FILE nor
//     LEXICON_DB provides one.
//   - sql/*.sql: SQLite migrations for the lexicon store.

package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordList returns the embedded default word list, one entry per line.
func WordList() ([]string, error) {
	return readLines("words.txt")
}

// Migrations returns the migration scripts rooted at sql/.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
