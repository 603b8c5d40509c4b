package meta

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackNumText(t *testing.T) {
	tn := TrackNum{Disc: 2, Track: 11}
	text, err := tn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2.11", string(text))

	var back TrackNum
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, tn, back)

	assert.Error(t, back.UnmarshalText([]byte("3")))
	assert.Error(t, back.UnmarshalText([]byte("x.1")))
	assert.Error(t, back.UnmarshalText([]byte("1.99999")))

	assert.True(t, TrackNum{Track: 1}.Valid())
	assert.False(t, TrackNum{Disc: 1}.Valid(), "tracks are 1-based")
}

func TestTracksMapKeysSurviveJSON(t *testing.T) {
	rel := Release{
		Title: "First Light",
		Tracks: map[TrackNum]Song{
			{Disc: 0, Track: 1}: {Title: "Dawn"},
			{Disc: 0, Track: 2}: {Title: "Noon"},
		},
	}
	data, err := jsoniter.Marshal(rel)
	require.NoError(t, err)

	var back Release
	require.NoError(t, jsoniter.Unmarshal(data, &back))
	assert.Equal(t, rel, back)
}

func TestEnumTextForms(t *testing.T) {
	kinds := []ReleaseKind{ReleaseAlbum, ReleaseEP, ReleaseSingle, ReleaseCompilation, ReleaseDemo, ReleaseOther}
	for _, k := range kinds {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var back ReleaseKind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}
	var k ReleaseKind
	assert.Error(t, k.UnmarshalText([]byte("Mixtape")))
	_, err := ReleaseKind(250).MarshalText()
	assert.Error(t, err)

	var p DatePrecision
	require.NoError(t, p.UnmarshalText([]byte("Month")))
	assert.Equal(t, PrecisionMonth, p)
	assert.Error(t, p.UnmarshalText([]byte("Decade")))

	var rel SongRelationKind
	require.NoError(t, rel.UnmarshalText([]byte("ReRelease")))
	assert.Equal(t, RelationReRelease, rel)
}

func TestIsGroup(t *testing.T) {
	var a ArtistMetaData
	assert.False(t, a.IsGroup(), "unknown kind is not a group")

	kind := ArtistGroup
	a.Kind = &kind
	assert.True(t, a.IsGroup())

	kind = ArtistSolo
	assert.False(t, a.IsGroup())
}
