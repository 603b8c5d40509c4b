package chash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumDeterministic(t *testing.T) {
	type rec struct {
		Name string
		Tags map[int]string
	}
	a := rec{Name: "Aiko", Tags: map[int]string{}}
	a.Tags[2] = "vocal"
	a.Tags[1] = "solo"

	b := rec{Name: "Aiko", Tags: map[int]string{1: "solo", 2: "vocal"}}

	assert.Equal(t, Sum(a), Sum(b), "equal values must digest equal")
	assert.NotEqual(t, Sum(a), Sum(rec{Name: "Aiko"}))
	assert.False(t, Sum(a).IsZero())
}

func TestChainOrderMatters(t *testing.T) {
	a := SumBytes([]byte("name=Aiko Minami"))
	b := SumBytes([]byte("kind=Solo"))

	ab := Chain(a, b)
	ba := Chain(b, a)
	assert.NotEqual(t, ab, ba, "chained tokens must encode history order")
	assert.NotEqual(t, ab, a)
	assert.NotEqual(t, ab, b)

	// Same fold from the zero token twice lands on the same value.
	t1 := Chain(Chain(Zero, a), b)
	t2 := Chain(Chain(Zero, a), b)
	assert.Equal(t, t1, t2)
	assert.NotEqual(t, t1, Chain(Zero, a))
}

func TestEncodingRoundTrips(t *testing.T) {
	h := SumBytes([]byte("roundtrip"))

	back, err := FromBytes(h.Bytes())
	require.NoError(t, err)
	assert.Equal(t, h, back)

	parsed, err := Parse(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)

	_, err = FromBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrBadDigest)
	_, err = Parse("not-hex")
	assert.ErrorIs(t, err, ErrBadDigest)
}

func TestTextRoundTrip(t *testing.T) {
	h := SumBytes([]byte("token"))

	text, err := h.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, h.String(), string(text))

	var back Hash128
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, h, back)

	assert.ErrorIs(t, back.UnmarshalText([]byte("xyz")), ErrBadDigest)
}
