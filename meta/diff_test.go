package meta

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArtist() ArtistMetaData {
	kind := ArtistSolo
	year := uint16(1994)
	return ArtistMetaData{
		Name:      "Aiko",
		Aliases:   []StringWithLocal{{Value: "あいこ", Local: ptr(LocalID(1))}},
		Kind:      &kind,
		BirthYear: &year,
		URLs:      []URL{{URL: "https://aiko.example"}},
		Tags:      []TagID{3},
	}
}

func ptr[T any](v T) *T { return &v }

func TestApplyTouchesExactlyOneField(t *testing.T) {
	before := sampleArtist()
	rec := sampleArtist()

	ArtistMetaDataNameDiff{Value: "Aiko Minami"}.Apply(&rec)

	assert.Equal(t, "Aiko Minami", rec.Name)
	rec.Name = before.Name
	assert.Equal(t, before, rec, "no field besides Name may change")
}

func TestApplyIsTotal(t *testing.T) {
	// Apply never validates: a dangling artist id still lands in the record.
	song := Song{Title: "Glow"}
	SongArtistsDiff{Value: []ArtistID{12345}}.Apply(&song)
	assert.Equal(t, []ArtistID{12345}, song.Artists)

	// Nil pointer values clear optional fields.
	rec := sampleArtist()
	ArtistMetaDataKindDiff{}.Apply(&rec)
	assert.Nil(t, rec.Kind)
}

func TestDiffEnvelopeRoundTrip(t *testing.T) {
	group := ArtistGroup
	diffs := []ArtistMetaDataDiff{
		ArtistMetaDataNameDiff{Value: "Aiko Minami"},
		ArtistMetaDataKindDiff{Value: &group},
		ArtistMetaDataURLsDiff{Value: []URL{{URL: "https://a", Archived: ptr("https://b")}}},
	}
	for _, d := range diffs {
		data, err := jsoniter.Marshal(d)
		require.NoError(t, err)

		back, err := DecodeArtistMetaDataDiff(data)
		require.NoError(t, err, "envelope: %s", data)
		assert.Equal(t, d, back)
		assert.Equal(t, d.Digest(), back.Digest())
	}
}

func TestSongDiffRoundTripKeepsTrackRefs(t *testing.T) {
	d := SongOriginalsDiff{Value: []SongRelation{{
		Ref:  TrackRef{Release: 7, Num: TrackNum{Disc: 1, Track: 3}},
		Kind: RelationCover,
	}}}
	data, err := jsoniter.Marshal(d)
	require.NoError(t, err)

	back, err := DecodeSongDiff(data)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeReleaseDiff([]byte(`{"field":"no_such_field","value":1}`))
	assert.ErrorContains(t, err, "unknown release diff field")

	_, err = DecodeReleaseDiff([]byte(`{"field":"title","value":{"not":"a string"}}`))
	assert.ErrorContains(t, err, "bad release diff value")

	_, err = DecodeReleaseDiff([]byte(`not json`))
	assert.ErrorContains(t, err, "bad diff envelope")
}

func TestDigestSeparatesFieldsAndKinds(t *testing.T) {
	name := ArtistMetaDataNameDiff{Value: "Mirage"}
	assert.Equal(t, name.Digest(), ArtistMetaDataNameDiff{Value: "Mirage"}.Digest())

	// Same value through a different field or a different record kind must
	// not collide.
	assert.NotEqual(t, name.Digest(), EventNameDiff{Value: "Mirage"}.Digest())
	assert.NotEqual(t, name.Digest(), TagNameDiff{Value: "Mirage"}.Digest())
	assert.NotEqual(t, name.Digest(), ArtistMetaDataNameDiff{Value: "mirage"}.Digest())
	assert.NotEqual(t,
		ReleaseTitleDiff{Value: "Mirage"}.Digest(),
		SongTitleDiff{Value: "Mirage"}.Digest())
}

func TestFieldTagsAreDeclarationOrder(t *testing.T) {
	assert.Equal(t, uint32(0), ReleaseTitleDiff{}.FieldTag())
	assert.Equal(t, uint32(9), ReleaseURLsDiff{}.FieldTag())
	assert.Equal(t, uint32(5), SongDurationSecDiff{}.FieldTag())
	assert.Equal(t, "duration_sec", SongDurationSecDiff{}.FieldName())
}
