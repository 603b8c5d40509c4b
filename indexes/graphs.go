package indexes

import (
	"slices"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/discantdb/discant/meta"
)

// Derivation is one edge of the song derivation graph: Track derives
// from the keyed origin in the stated way.
type Derivation struct {
	Track meta.TrackRef         `json:"track"`
	Kind  meta.SongRelationKind `json:"kind"`
}

// Graphs holds the relationship views derived from committed records:
// group to members, artist to credited tracks, origin song to covers
// and other reworkings.
type Graphs struct {
	members     *xsync.MapOf[meta.ArtistID, []meta.ArtistID]
	discography *xsync.MapOf[meta.ArtistID, []meta.TrackRef]
	derivations *xsync.MapOf[meta.TrackRef, []Derivation]
}

func NewGraphs() *Graphs {
	return &Graphs{
		members:     xsync.NewMapOf[meta.ArtistID, []meta.ArtistID](),
		discography: xsync.NewMapOf[meta.ArtistID, []meta.TrackRef](),
		derivations: xsync.NewMapOf[meta.TrackRef, []Derivation](),
	}
}

// UpdateMemberships reconciles which groups an artist belongs to.
func (g *Graphs) UpdateMemberships(member meta.ArtistID, before, after []meta.ArtistID) {
	for _, group := range before {
		if !slices.Contains(after, group) {
			dropEdge(g.members, group, member)
		}
	}
	for _, group := range after {
		if !slices.Contains(before, group) {
			putEdge(g.members, group, member)
		}
	}
	UpdateCount.WithLabelValues("members").Inc()
}

// UpdateCredits reconciles which artists are credited on a track.
func (g *Graphs) UpdateCredits(ref meta.TrackRef, before, after []meta.ArtistID) {
	for _, artist := range before {
		if !slices.Contains(after, artist) {
			dropEdge(g.discography, artist, ref)
		}
	}
	for _, artist := range after {
		if !slices.Contains(before, artist) {
			putEdge(g.discography, artist, ref)
		}
	}
	UpdateCount.WithLabelValues("discography").Inc()
}

// UpdateOriginals reconciles the origin songs a track derives from.
func (g *Graphs) UpdateOriginals(derived meta.TrackRef, before, after []meta.SongRelation) {
	for _, rel := range before {
		if !slices.Contains(after, rel) {
			dropEdge(g.derivations, rel.Ref, Derivation{Track: derived, Kind: rel.Kind})
		}
	}
	for _, rel := range after {
		if !slices.Contains(before, rel) {
			putEdge(g.derivations, rel.Ref, Derivation{Track: derived, Kind: rel.Kind})
		}
	}
	UpdateCount.WithLabelValues("derivations").Inc()
}

// Members lists the known members of a group.
func (g *Graphs) Members(group meta.ArtistID) []meta.ArtistID {
	return loadEdges(g.members, group)
}

// Tracks lists every track an artist is credited on.
func (g *Graphs) Tracks(artist meta.ArtistID) []meta.TrackRef {
	return loadEdges(g.discography, artist)
}

// Derived lists the tracks derived from an origin song.
func (g *Graphs) Derived(origin meta.TrackRef) []Derivation {
	return loadEdges(g.derivations, origin)
}
