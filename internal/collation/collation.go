package collation

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collate.Collator keeps internal buffers and is not safe for concurrent
// use, so comparators are pooled rather than shared.
var pool = sync.Pool{
	New: func() any {
		return collate.New(language.Und)
	},
}

// Compare returns -1, 0, or +1 comparing a and b under the shared collator.
func Compare(a, b string) int {
	c := pool.Get().(*collate.Collator)
	defer pool.Put(c)
	return c.CompareString(a, b)
}

// Less reports whether a orders before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}
