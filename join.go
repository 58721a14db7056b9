package speakable

import (
	"fmt"
	"strings"
)

// JoinList joins items into a spoken enumeration: "a, b and c". Items are
// coerced to text with their natural formatting.
func JoinList(items []any, conjunction string) string {
	return JoinListWith(items, conjunction, ",")
}

// JoinListWith joins items with an explicit separator mark before the
// conjunction takes over for the final pair: "a; b or c". No separator
// appears ahead of the conjunction.
func JoinListWith(items []any, conjunction, separator string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(items[0])
	}

	words := make([]string, len(items))
	for i, item := range items {
		words[i] = fmt.Sprint(item)
	}
	head := strings.Join(words[:len(words)-1], separator+" ")
	return head + " " + conjunction + " " + words[len(words)-1]
}
