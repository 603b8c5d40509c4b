package indexes

import (
	"strings"

	"github.com/cespare/xxhash"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/discantdb/discant/meta"
)

// NameIndex buckets artist ids under the xxhash of their folded names
// and aliases. Buckets can collide, so Candidates is advisory: callers
// verify every candidate against the actual record before trusting it.
type NameIndex struct {
	folds   *lru.Cache[string, string]
	buckets *xsync.MapOf[uint64, []meta.ArtistID]
}

func NewNameIndex() *NameIndex {
	folds, _ := lru.New[string, string](100000)
	return &NameIndex{
		folds:   folds,
		buckets: xsync.NewMapOf[uint64, []meta.ArtistID](),
	}
}

// Fold normalizes a name for matching: lowercased, runs of whitespace
// collapsed to single spaces.
func Fold(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func (ix *NameIndex) fold(name string) string {
	if folded, ok := ix.folds.Get(name); ok {
		return folded
	}
	folded := Fold(name)
	ix.folds.Add(name, folded)
	return folded
}

func (ix *NameIndex) foldSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if folded := ix.fold(term); folded != "" {
			set[folded] = struct{}{}
		}
	}
	return set
}

// Update reconciles the terms (name plus aliases) an artist is
// findable by. A nil before registers a new artist.
func (ix *NameIndex) Update(id meta.ArtistID, before, after []string) {
	olds := ix.foldSet(before)
	news := ix.foldSet(after)
	for term := range olds {
		if _, keep := news[term]; !keep {
			dropEdge(ix.buckets, xxhash.Sum64String(term), id)
		}
	}
	for term := range news {
		if _, had := olds[term]; !had {
			putEdge(ix.buckets, xxhash.Sum64String(term), id)
		}
	}
	UpdateCount.WithLabelValues("names").Inc()
}

// Candidates returns the ids bucketed under the folded name.
func (ix *NameIndex) Candidates(name string) []meta.ArtistID {
	ids := loadEdges(ix.buckets, xxhash.Sum64String(ix.fold(name)))
	if len(ids) == 0 {
		LookupCount.WithLabelValues("miss").Inc()
		return nil
	}
	LookupCount.WithLabelValues("hit").Inc()
	return ids
}
