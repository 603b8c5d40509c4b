package meta

import (
	"fmt"
	"strconv"
	"strings"
)

// Table ids are dense: the id of a record is its insertion index, ids are
// never reused and never change. Actor, location and file ids are assigned
// by outer layers and pass through the store untouched.
type (
	ArtistID  int64
	ReleaseID int64
	EventID   int64
	TagID     int64

	UserID     int64
	LocationID int64
	FileID     int64

	// LocalID indexes the locale registry the store was constructed with.
	LocalID int32
)

// TrackNum positions a song inside a release. Disc 0 means the release has
// no disc split; otherwise discs are 1-based. Tracks are 1-based.
type TrackNum struct {
	Disc  uint16
	Track uint16
}

// Valid reports whether the numbering obeys the 1-based track rule.
func (tn TrackNum) Valid() bool {
	return tn.Track >= 1
}

func (tn TrackNum) String() string {
	return fmt.Sprintf("%d.%d", tn.Disc, tn.Track)
}

// MarshalText lets TrackNum key JSON maps; the form is "disc.track".
func (tn TrackNum) MarshalText() ([]byte, error) {
	return []byte(tn.String()), nil
}

func (tn *TrackNum) UnmarshalText(text []byte) error {
	disc, track, ok := strings.Cut(string(text), ".")
	if !ok {
		return fmt.Errorf("meta: bad track number %q", text)
	}
	d, err := strconv.ParseUint(disc, 10, 16)
	if err != nil {
		return fmt.Errorf("meta: bad disc in %q: %w", text, err)
	}
	t, err := strconv.ParseUint(track, 10, 16)
	if err != nil {
		return fmt.Errorf("meta: bad track in %q: %w", text, err)
	}
	tn.Disc, tn.Track = uint16(d), uint16(t)
	return nil
}

// TrackRef names a song globally: the release it appears on plus its
// position there.
type TrackRef struct {
	Release ReleaseID `json:"release"`
	Num     TrackNum  `json:"num"`
}

func (tr TrackRef) String() string {
	return fmt.Sprintf("%d/%s", tr.Release, tr.Num)
}
