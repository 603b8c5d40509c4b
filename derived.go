package discant

import (
	"github.com/discantdb/discant/indexes"
	"github.com/discantdb/discant/meta"
)

// Derived reads answer from the eagerly maintained indices; none of them
// scans a table. Results are fresh snapshots the caller may keep.

// GroupMembers lists the artists holding a membership in the group.
func (s *Store) GroupMembers(group meta.ArtistID) []meta.ArtistID {
	return s.graphs.Members(group)
}

// Discography lists every track the artist is credited on as a performer.
func (s *Store) Discography(artist meta.ArtistID) []meta.TrackRef {
	return s.graphs.Tracks(artist)
}

// Derivations lists the tracks recorded as deriving from the given song:
// covers, remixes and other reworkings.
func (s *Store) Derivations(origin meta.TrackRef) []indexes.Derivation {
	return s.graphs.Derived(origin)
}

// FindArtistsByName resolves a name or alias to artist ids. Matching is
// exact after folding (case, whitespace); every index candidate is verified
// against the live record, so hash collisions cannot leak through. A
// candidate row that cannot be read (poisoned) fails the lookup rather than
// quietly dropping out of the results.
func (s *Store) FindArtistsByName(name string) ([]meta.ArtistID, error) {
	want := indexes.Fold(name)
	if want == "" {
		return nil, nil
	}
	var out []meta.ArtistID
	for _, id := range s.names.Candidates(name) {
		rec, _, err := s.artists.Get(int64(id))
		if err != nil {
			return nil, err
		}
		if matchesTerm(&rec, want) {
			out = append(out, id)
		}
	}
	return out, nil
}

func matchesTerm(a *meta.ArtistMetaData, want string) bool {
	if indexes.Fold(a.Name) == want {
		return true
	}
	for _, alias := range a.Aliases {
		if indexes.Fold(alias.Value) == want {
			return true
		}
	}
	return false
}
