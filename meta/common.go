package meta

import (
	"fmt"
	"time"
)

// LocalizedStrings carries per-locale variants of a short text.
type LocalizedStrings map[LocalID]string

// LocalizedDocuments points at per-locale long-form documents (descriptions,
// lyrics), stored outside the catalog.
type LocalizedDocuments map[LocalID]FileID

// StringWithLocal is a text plus the locale it is written in; Local nil
// means the locale is unknown or irrelevant.
type StringWithLocal struct {
	Value string   `json:"value"`
	Local *LocalID `json:"local,omitempty"`
}

// DatePrecision says how much of a date is meaningful.
type DatePrecision uint8

const (
	PrecisionYear DatePrecision = iota
	PrecisionMonth
	PrecisionDay
)

func (p DatePrecision) String() string {
	switch p {
	case PrecisionYear:
		return "Year"
	case PrecisionMonth:
		return "Month"
	case PrecisionDay:
		return "Day"
	}
	return fmt.Sprintf("DatePrecision(%d)", uint8(p))
}

func (p DatePrecision) MarshalText() ([]byte, error) {
	if p > PrecisionDay {
		return nil, fmt.Errorf("meta: bad date precision %d", uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *DatePrecision) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Year":
		*p = PrecisionYear
	case "Month":
		*p = PrecisionMonth
	case "Day":
		*p = PrecisionDay
	default:
		return fmt.Errorf("meta: unknown date precision %q", text)
	}
	return nil
}

// DateWithPrecision is a point in time cut down to the precision actually
// known. Components below the precision are conventionally 1/zero.
type DateWithPrecision struct {
	Date      time.Time     `json:"date"`
	Precision DatePrecision `json:"precision"`
}

// Birthday is a recurring date without a year.
type Birthday struct {
	Month uint8 `json:"month"`
	Day   uint8 `json:"day"`
}

// Image references a stored picture with optional per-locale captions.
type Image struct {
	File     FileID           `json:"file"`
	Captions LocalizedStrings `json:"captions,omitempty"`
}

// URL is an external link; Archived optionally points at a snapshot of it.
type URL struct {
	URL      string  `json:"url"`
	Archived *string `json:"archived,omitempty"`
}

// ArtistKind distinguishes individual performers from groups.
type ArtistKind uint8

const (
	ArtistSolo ArtistKind = iota
	ArtistGroup
)

func (k ArtistKind) String() string {
	switch k {
	case ArtistSolo:
		return "Solo"
	case ArtistGroup:
		return "Group"
	}
	return fmt.Sprintf("ArtistKind(%d)", uint8(k))
}

func (k ArtistKind) MarshalText() ([]byte, error) {
	if k > ArtistGroup {
		return nil, fmt.Errorf("meta: bad artist kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *ArtistKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Solo":
		*k = ArtistSolo
	case "Group":
		*k = ArtistGroup
	default:
		return fmt.Errorf("meta: unknown artist kind %q", text)
	}
	return nil
}

// ArtistRole is an open enumeration: the predefined roles cover the common
// cases, any other string is a free-form role.
type ArtistRole string

const (
	RoleArranger ArtistRole = "Arranger"
	RoleVocal    ArtistRole = "Vocal"
	RoleLyricist ArtistRole = "Lyricist"
)

// Credit attributes a role on a work to an artist.
type Credit struct {
	Artist ArtistID   `json:"artist"`
	Role   ArtistRole `json:"role"`
}

// ReleaseKind classifies a release.
type ReleaseKind uint8

const (
	ReleaseAlbum ReleaseKind = iota
	ReleaseEP
	ReleaseSingle
	ReleaseCompilation
	ReleaseDemo
	ReleaseOther
)

func (k ReleaseKind) String() string {
	switch k {
	case ReleaseAlbum:
		return "Album"
	case ReleaseEP:
		return "EP"
	case ReleaseSingle:
		return "Single"
	case ReleaseCompilation:
		return "Compilation"
	case ReleaseDemo:
		return "Demo"
	case ReleaseOther:
		return "Other"
	}
	return fmt.Sprintf("ReleaseKind(%d)", uint8(k))
}

func (k ReleaseKind) MarshalText() ([]byte, error) {
	if k > ReleaseOther {
		return nil, fmt.Errorf("meta: bad release kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *ReleaseKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Album":
		*k = ReleaseAlbum
	case "EP":
		*k = ReleaseEP
	case "Single":
		*k = ReleaseSingle
	case "Compilation":
		*k = ReleaseCompilation
	case "Demo":
		*k = ReleaseDemo
	case "Other":
		*k = ReleaseOther
	default:
		return fmt.Errorf("meta: unknown release kind %q", text)
	}
	return nil
}

// SongRelationKind says how a song derives from another one.
type SongRelationKind uint8

const (
	RelationCover SongRelationKind = iota
	RelationRearrangement
	RelationRemix
	RelationReRelease
	RelationOther
)

func (k SongRelationKind) String() string {
	switch k {
	case RelationCover:
		return "Cover"
	case RelationRearrangement:
		return "Rearrangement"
	case RelationRemix:
		return "Remix"
	case RelationReRelease:
		return "ReRelease"
	case RelationOther:
		return "Other"
	}
	return fmt.Sprintf("SongRelationKind(%d)", uint8(k))
}

func (k SongRelationKind) MarshalText() ([]byte, error) {
	if k > RelationOther {
		return nil, fmt.Errorf("meta: bad song relation kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *SongRelationKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Cover":
		*k = RelationCover
	case "Rearrangement":
		*k = RelationRearrangement
	case "Remix":
		*k = RelationRemix
	case "ReRelease":
		*k = RelationReRelease
	case "Other":
		*k = RelationOther
	default:
		return fmt.Errorf("meta: unknown song relation kind %q", text)
	}
	return nil
}

// SongRelation links a song to the original work it derives from.
type SongRelation struct {
	Ref  TrackRef         `json:"ref"`
	Kind SongRelationKind `json:"kind"`
}

// ArtistMembership records an artist belonging to a group, with the roles
// carried there and an optional tenure.
type ArtistMembership struct {
	Group ArtistID           `json:"group"`
	Roles []ArtistRole       `json:"roles,omitempty"`
	Start *DateWithPrecision `json:"start,omitempty"`
	End   *DateWithPrecision `json:"end,omitempty"`
}

// DefaultLocales is the locale registry a store gets unless configured
// otherwise. LocalID 0 is the original-language slot.
var DefaultLocales = []string{"Original", "Japanese", "Chinese", "English", "German"}
