// Package history remembers the manifest URLs the user has loaded, ranked by use.
package history

import (
	"strings"
	"sync"
	"time"

	"github.com/castlist-cli/castlist/filesystem"
	"github.com/castlist-cli/castlist/key"
	"github.com/castlist-cli/castlist/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Record is one remembered manifest.
type Record struct {
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	Rank       int       `json:"rank"`
	LastLoaded time.Time `json:"last_loaded"`
}

var (
	mu     sync.Mutex
	cacher = gache.New[map[string]*Record](
		&gache.Options{
			Path:       where.Recent(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
)

func load() map[string]*Record {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*Record)
	}
	return cached
}

// Remember bumps the rank of url, adding it when new. Title is the name of
// the category loaded from it. Does nothing unless history.remember is set.
func Remember(url, title string) error {
	if !viper.GetBool(key.HistoryRemember) {
		return nil
	}

	url = sanitize(url)
	if url == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	record, ok := records[url]
	if !ok {
		record = &Record{URL: url}
		records[url] = record
	}
	record.Rank++
	record.LastLoaded = time.Now()
	if title != "" {
		record.Title = title
	}

	return cacher.Set(records)
}

// Forget removes url from the remembered manifests.
func Forget(url string) error {
	mu.Lock()
	defer mu.Unlock()

	records := load()
	delete(records, sanitize(url))
	return cacher.Set(records)
}

// Recent lists remembered manifests, most used first.
func Recent() []*Record {
	mu.Lock()
	records := lo.Values(load())
	mu.Unlock()

	sortByRank(records)
	return records
}

// Suggest returns the best ranked remembered URL fuzzily matching q.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns every remembered URL or title fuzzily matching q, most used first.
func SuggestMany(q string) []string {
	q = sanitize(q)

	records := lo.Filter(Recent(), func(r *Record, _ int) bool {
		return fuzzy.MatchFold(q, r.URL) || fuzzy.MatchFold(q, r.Title)
	})

	return lo.Map(records, func(r *Record, _ int) string {
		return r.URL
	})
}

func sortByRank(records []*Record) {
	slices.SortFunc(records, func(a, b *Record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return b.LastLoaded.Compare(a.LastLoaded)
	})
}

func sanitize(url string) string {
	return strings.TrimSpace(url)
}
