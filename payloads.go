package discant

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/discantdb/discant/chash"
	"github.com/discantdb/discant/discant_errors"
	"github.com/discantdb/discant/meta"
)

// Audit operation names. Add payloads are the seed record; the other
// payload shapes are below. Replay dispatches on these, so renaming one
// orphans every log written before the rename.
const (
	opArtistAdd       = "artist_add"
	opArtistUpdate    = "artist_update"
	opMembershipAdd   = "artist_membership_add"
	opProfileImageSet = "artist_profile_image_set"
	opArtistTagAdd    = "artist_tag_add"
	opArtistDescSet   = "artist_description_set"

	opReleaseAdd      = "release_add"
	opReleaseUpdate   = "release_update"
	opReleaseTitleSet = "release_title_set"
	opTrackAdd        = "release_track_add"
	opReleaseTagAdd   = "release_tag_add"
	opReleaseImageAdd = "release_image_add"
	opReleaseDescSet  = "release_description_set"

	opTrackUpdate    = "track_update"
	opTrackTagAdd    = "track_tag_add"
	opTrackTitleSet  = "track_title_set"
	opTrackLyricsSet = "track_lyrics_set"

	opEventAdd     = "event_add"
	opEventUpdate  = "event_update"
	opEventNameSet = "event_name_set"
	opEventDescSet = "event_description_set"

	opTagAdd    = "tag_add"
	opTagUpdate = "tag_update"
)

// updatePayload carries an OCC diff: the target row, the token the caller
// presented, and the diff envelope.
type updatePayload struct {
	ID   int64               `json:"id"`
	Tok  chash.Hash128       `json:"tok"`
	Diff jsoniter.RawMessage `json:"diff"`
}

// trackUpdatePayload is updatePayload for a song nested inside a release.
type trackUpdatePayload struct {
	Ref  meta.TrackRef       `json:"ref"`
	Tok  chash.Hash128       `json:"tok"`
	Diff jsoniter.RawMessage `json:"diff"`
}

type membershipPayload struct {
	ID         meta.ArtistID         `json:"id"`
	Membership meta.ArtistMembership `json:"membership"`
}

type trackAddPayload struct {
	Release meta.ReleaseID `json:"release"`
	Num     meta.TrackNum  `json:"num"`
	Song    meta.Song      `json:"song"`
}

type idTagPayload struct {
	ID  int64      `json:"id"`
	Tag meta.TagID `json:"tag"`
}

type idImagePayload struct {
	ID    int64      `json:"id"`
	Image meta.Image `json:"image"`
}

type idLocalStringPayload struct {
	ID    int64        `json:"id"`
	Local meta.LocalID `json:"local"`
	Value string       `json:"value"`
}

type idLocalDocPayload struct {
	ID    int64        `json:"id"`
	Local meta.LocalID `json:"local"`
	Doc   meta.FileID  `json:"doc"`
}

type refTagPayload struct {
	Ref meta.TrackRef `json:"ref"`
	Tag meta.TagID    `json:"tag"`
}

type refLocalStringPayload struct {
	Ref   meta.TrackRef `json:"ref"`
	Local meta.LocalID  `json:"local"`
	Value string        `json:"value"`
}

type refLocalDocPayload struct {
	Ref   meta.TrackRef `json:"ref"`
	Local meta.LocalID  `json:"local"`
	Doc   meta.FileID   `json:"doc"`
}

func updateBody(id int64, tok chash.Hash128, d any) ([]byte, error) {
	diff, err := jsoniter.Marshal(d)
	if err != nil {
		return nil, errors.Join(discant_errors.ErrAuditLog, err)
	}
	body, err := jsoniter.Marshal(updatePayload{ID: id, Tok: tok, Diff: diff})
	if err != nil {
		return nil, errors.Join(discant_errors.ErrAuditLog, err)
	}
	return body, nil
}

func trackUpdateBody(ref meta.TrackRef, tok chash.Hash128, d any) ([]byte, error) {
	diff, err := jsoniter.Marshal(d)
	if err != nil {
		return nil, errors.Join(discant_errors.ErrAuditLog, err)
	}
	body, err := jsoniter.Marshal(trackUpdatePayload{Ref: ref, Tok: tok, Diff: diff})
	if err != nil {
		return nil, errors.Join(discant_errors.ErrAuditLog, err)
	}
	return body, nil
}
