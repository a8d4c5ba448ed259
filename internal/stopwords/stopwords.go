// Package stopwords loads the word-exclusion list applied during frequency
// aggregation.
package stopwords

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Set is a stopword membership set.
type Set map[string]struct{}

// Load reads a UTF-8 stopword list, one word per line. Lines are trimmed and
// blank lines skipped. Callers load the file fresh on every analysis run so
// edits take effect without a restart.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopword list %s: %w", path, err)
	}
	defer f.Close()

	set := make(Set)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stopword list %s: %w", path, err)
	}
	return set, nil
}

// Has reports membership. Works on a nil Set.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int { return len(s) }
