// Package history persists a record of every finished download.
package history

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/filesystem"
	"github.com/vimeodl/vimeodl/key"
	"github.com/vimeodl/vimeodl/where"
	"golang.org/x/exp/slices"
)

// Record describes one muxed output file.
type Record struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Output  string    `json:"output"`
	Video   string    `json:"video"`
	Audio   string    `json:"audio"`
	ClipID  string    `json:"clip_id,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns all records, most recent first.
func Get() ([]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return []*Record{}, nil
	}

	records := lo.Values(cached)
	slices.SortFunc(records, func(a, b *Record) int {
		return b.SavedAt.Compare(a.SavedAt)
	})
	return records, nil
}

// Save stores record, assigning an id and timestamp when missing.
func Save(record *Record) error {
	cached, expired, err := cacher.Get()
	if err != nil {
		return err
	}
	if expired || cached == nil {
		cached = make(map[string]*Record)
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.SavedAt.IsZero() {
		record.SavedAt = time.Now()
	}

	cached[record.ID] = record
	return cacher.Set(cached)
}

// Clear forgets every record.
func Clear() error {
	return cacher.Set(make(map[string]*Record))
}

// SuggestTitles returns previously used titles fuzzily matching partial, most recent first.
func SuggestTitles(partial string) []string {
	if !viper.GetBool(key.HistorySuggestTitles) {
		return []string{}
	}

	records, err := Get()
	if err != nil {
		return []string{}
	}

	partial = strings.TrimSpace(partial)
	titles := lo.FilterMap(records, func(r *Record, _ int) (string, bool) {
		return r.Title, r.Title != "" && fuzzy.MatchFold(partial, r.Title)
	})

	return lo.Uniq(titles)
}
