// Package recent manages the persistence and retrieval of recently used
// colors and their usage-ranked suggestions.
package recent

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/prism-cli/prism/filesystem"
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/where"
)

type colorRecord struct {
	Rank  int    `json:"rank"`
	Color string `json:"color"`
}

var cacher = gache.New[map[string]*colorRecord](
	&gache.Options{
		Path:       where.Recent(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*colorRecord)

// Remember records a color input in the persistent history or increments its
// usage rank. Disabled entirely by configuration.
func Remember(input string, weight int) error {
	if !viper.GetBool(key.RecentSaveOnUse) {
		return nil
	}

	input = sanitize(input)
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*colorRecord)
	}

	if record, ok := cached[input]; ok {
		record.Rank += weight
	} else {
		cached[input] = &colorRecord{Rank: weight, Color: input}
	}

	suggestionCache = make(map[string][]*colorRecord)
	return cacher.Set(cached)
}

// Suggest returns the most relevant historical color for a partial input.
func Suggest(input string) mo.Option[string] {
	suggestions := SuggestMany(input)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns historical colors matching the partial input, sorted by
// usage rank.
func SuggestMany(input string) []string {
	if !viper.GetBool(key.RecentShowSuggestions) {
		return []string{}
	}

	input = sanitize(input)
	var records []*colorRecord

	if prev, ok := suggestionCache[input]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(input, record.Color) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *colorRecord) int {
			return b.Rank - a.Rank // Descending rank
		})

		suggestionCache[input] = records
	}

	return lo.Map(records, func(r *colorRecord, _ int) string {
		return r.Color
	})
}

func sanitize(input string) string {
	return strings.TrimSpace(strings.ToLower(input))
}
