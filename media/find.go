package media

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is a search hit with its fuzzy distance; lower is closer.
type Match struct {
	Item     *Item
	Distance int
}

// Find fuzzy-matches query against the titles of every playable item below i,
// ignoring case. Hits are ordered by distance, ties keep catalog order.
func (i *Item) Find(query string) []Match {
	var matches []Match
	i.Walk(func(item *Item, _ int) bool {
		if !item.IsPlayable() || item.Title == "" {
			return true
		}
		if d := fuzzy.RankMatchFold(query, item.Title); d >= 0 {
			matches = append(matches, Match{Item: item, Distance: d})
		}
		return true
	})

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Distance < matches[b].Distance
	})
	return matches
}
