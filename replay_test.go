package discant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discantdb/discant/chash"
	"github.com/discantdb/discant/discant_errors"
	"github.com/discantdb/discant/meta"
	"github.com/discantdb/discant/table"
	"github.com/discantdb/discant/wal"
	"github.com/discantdb/discant/wal/walpebble"
)

// seedCatalog drives every operation the store has at least once, so a
// replayed copy has to reproduce records, tokens and derived views alike.
func seedCatalog(t *testing.T, s *Store) {
	t.Helper()
	u := meta.UserID(1)

	aiko, err := s.AddArtist(u, "Aiko")
	require.NoError(t, err)
	band, err := s.AddArtist(u, "Moonlit Ensemble")
	require.NoError(t, err)

	tok, err := s.UpdateArtist(u, aiko, meta.ArtistMetaDataNameDiff{Value: "Aiko Minami"}, chash.Zero)
	require.NoError(t, err)
	_, err = s.UpdateArtist(u, aiko, meta.ArtistMetaDataAliasesDiff{
		Value: []meta.StringWithLocal{{Value: "南あいこ"}},
	}, tok)
	require.NoError(t, err)
	_, err = s.UpdateArtist(u, band, meta.ArtistMetaDataKindDiff{Value: ptr(meta.ArtistGroup)}, chash.Zero)
	require.NoError(t, err)
	require.NoError(t, s.AddMembership(u, aiko, meta.ArtistMembership{
		Group: band,
		Roles: []meta.ArtistRole{meta.RoleVocal},
	}))
	require.NoError(t, s.SetProfileImage(u, aiko, meta.Image{File: 11}))

	tag, err := s.AddTag(u, "doujin")
	require.NoError(t, err)
	require.NoError(t, s.AddArtistTag(u, aiko, tag))
	require.NoError(t, s.SetArtistDescription(u, aiko, 1, 21))

	rel, err := s.AddRelease(u, "First Light")
	require.NoError(t, err)
	relTok, err := s.UpdateRelease(u, rel, meta.ReleaseKindDiff{Value: ptr(meta.ReleaseAlbum)}, chash.Zero)
	require.NoError(t, err)
	num := meta.TrackNum{Disc: 1, Track: 1}
	ref := meta.TrackRef{Release: rel, Num: num}
	require.NoError(t, s.AddTrack(u, rel, num, meta.Song{
		Title:   "Dawn",
		Artists: []meta.ArtistID{aiko},
	}))
	_, err = s.UpdateTrack(u, ref, meta.SongDurationSecDiff{Value: ptr(uint32(243))}, relTok)
	require.NoError(t, err)
	require.NoError(t, s.AddTrackTag(u, ref, tag))
	require.NoError(t, s.SetTrackTitle(u, ref, 1, "夜明け"))
	require.NoError(t, s.SetTrackLyrics(u, ref, 0, 31))
	require.NoError(t, s.SetReleaseTitle(u, rel, 1, "ファースト・ライト"))
	require.NoError(t, s.AddReleaseTag(u, rel, tag))
	require.NoError(t, s.AddReleaseImage(u, rel, meta.Image{File: 41}))
	require.NoError(t, s.SetReleaseDescription(u, rel, 0, 51))

	tribute, err := s.AddRelease(u, "Tribute")
	require.NoError(t, err)
	require.NoError(t, s.AddTrack(u, tribute, num, meta.Song{
		Title:     "Dawn (cover)",
		Originals: []meta.SongRelation{{Ref: ref, Kind: meta.RelationCover}},
	}))

	ev, err := s.AddEvent(u, "Comiket 105")
	require.NoError(t, err)
	_, err = s.UpdateEvent(u, ev, meta.EventAddressDiff{Value: "Tokyo Big Sight"}, chash.Zero)
	require.NoError(t, err)
	require.NoError(t, s.SetEventName(u, ev, 1, "コミケ105"))
	require.NoError(t, s.SetEventDescription(u, ev, 0, 61))

	_, err = s.UpdateTag(u, tag, meta.TagNameDiff{Value: "Doujin"}, chash.Zero)
	require.NoError(t, err)
}

func assertTablesEqual[R any](t *testing.T, want, got *table.Table[R]) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len(), "%s table size", want.Kind())
	for id := int64(0); id < want.Len(); id++ {
		wrec, wtok, err := want.Get(id)
		require.NoError(t, err)
		grec, gtok, err := got.Get(id)
		require.NoError(t, err)
		assert.Equal(t, wrec, grec, "%s %d record", want.Kind(), id)
		assert.Equal(t, wtok, gtok, "%s %d token", want.Kind(), id)
	}
}

func assertStoresEqual(t *testing.T, want, got *Store) {
	t.Helper()
	assertTablesEqual(t, want.artists, got.artists)
	assertTablesEqual(t, want.releases, got.releases)
	assertTablesEqual(t, want.events, got.events)
	assertTablesEqual(t, want.tags, got.tags)

	ref := meta.TrackRef{Release: 0, Num: meta.TrackNum{Disc: 1, Track: 1}}
	assert.Equal(t, want.GroupMembers(1), got.GroupMembers(1))
	assert.Equal(t, want.Discography(0), got.Discography(0))
	assert.Equal(t, want.Derivations(ref), got.Derivations(ref))
	assert.Equal(t, findByName(t, want, "南あいこ"), findByName(t, got, "南あいこ"))
	assert.Equal(t, findByName(t, want, "aiko minami"), findByName(t, got, "aiko minami"))
}

func TestReplayRebuildsEqualStore(t *testing.T) {
	mem := wal.NewMemory()
	s := New(Options{Logger: quietLogger(), AuditLog: mem})
	seedCatalog(t, s)

	got, err := Replay(mem, Options{Logger: quietLogger()})
	require.NoError(t, err)
	assertStoresEqual(t, s, got)

	// The rebuilt store is live: it keeps versioning and logging on its own.
	_, err = got.AddArtist(9, "Newcomer")
	require.NoError(t, err)
}

type staticReader []wal.Entry

func (r staticReader) Scan(fn func(wal.Entry) error) error {
	for _, e := range r {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

func TestReplayRejectsUnknownOp(t *testing.T) {
	_, err := Replay(staticReader{{Op: "mystery_op"}}, Options{Logger: quietLogger()})
	assert.ErrorIs(t, err, discant_errors.ErrBadEntry)
}

func TestReplayRejectsGarbagePayload(t *testing.T) {
	_, err := Replay(staticReader{{Op: "artist_add", Payload: []byte("{")}},
		Options{Logger: quietLogger()})
	assert.ErrorIs(t, err, discant_errors.ErrBadEntry)

	_, err = Replay(staticReader{{Op: "artist_update", Payload: []byte(`{"id":0}`)}},
		Options{Logger: quietLogger()})
	assert.ErrorIs(t, err, discant_errors.ErrBadEntry)
}

func TestReplayRejectsReorderedLog(t *testing.T) {
	mem := wal.NewMemory()
	s := New(Options{Logger: quietLogger(), AuditLog: mem})
	u := meta.UserID(1)
	id, err := s.AddArtist(u, "Aiko")
	require.NoError(t, err)
	tok, err := s.UpdateArtist(u, id, meta.ArtistMetaDataNameDiff{Value: "A"}, chash.Zero)
	require.NoError(t, err)
	_, err = s.UpdateArtist(u, id, meta.ArtistMetaDataNameDiff{Value: "B"}, tok)
	require.NoError(t, err)

	// Swapping two updates breaks the token chain.
	entries := mem.Entries()
	entries[1], entries[2] = entries[2], entries[1]
	_, err = Replay(staticReader(entries), Options{Logger: quietLogger()})
	assert.ErrorIs(t, err, discant_errors.ErrBadEntry)
	assert.ErrorIs(t, err, discant_errors.ErrStaleVersion)
}

func TestReplayFromPebbleLog(t *testing.T) {
	dir := t.TempDir()
	plog, err := walpebble.Open(dir, walpebble.Options{Logger: quietLogger(), NoSync: true})
	require.NoError(t, err)

	s := New(Options{Logger: quietLogger(), AuditLog: plog})
	seedCatalog(t, s)
	require.NoError(t, plog.Close())

	plog, err = walpebble.Open(dir, walpebble.Options{Logger: quietLogger(), NoSync: true})
	require.NoError(t, err)
	defer plog.Close()

	got, err := Replay(plog, Options{Logger: quietLogger(), AuditLog: plog})
	require.NoError(t, err)
	assertStoresEqual(t, s, got)

	// New writes land in the reopened log after the replayed ones.
	before := plog.Len()
	_, err = got.AddArtist(9, "Newcomer")
	require.NoError(t, err)
	assert.Equal(t, before+1, plog.Len())
}
