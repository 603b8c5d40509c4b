package discant

import (
	"errors"
	"fmt"
	"slices"

	"github.com/discantdb/discant/chash"
	"github.com/discantdb/discant/discant_errors"
	"github.com/discantdb/discant/meta"
)

// AddRelease appends a new release holding only a title.
func (s *Store) AddRelease(actor meta.UserID, title string) (meta.ReleaseID, error) {
	return s.addRelease(actor, meta.Release{Title: title})
}

func (s *Store) addRelease(actor meta.UserID, seed meta.Release) (id meta.ReleaseID, err error) {
	defer func() { observe(opReleaseAdd, err) }()
	raw, err := s.releases.Add(seed, func(int64) error {
		return s.record(actor, opReleaseAdd, seed)
	})
	if err != nil {
		return 0, err
	}
	return meta.ReleaseID(raw), nil
}

// GetRelease returns a snapshot of the record, tracks included, and its
// current version token.
func (s *Store) GetRelease(id meta.ReleaseID) (meta.Release, chash.Hash128, error) {
	return s.releases.Get(int64(id))
}

// UpdateRelease applies one single-field diff under the release's token.
func (s *Store) UpdateRelease(actor meta.UserID, id meta.ReleaseID, d meta.ReleaseDiff, presented chash.Hash128) (tok chash.Hash128, err error) {
	defer func() { observe(opReleaseUpdate, err) }()
	body, err := updateBody(int64(id), presented, d)
	if err != nil {
		return chash.Zero, err
	}
	return s.releases.Update(int64(id), presented, d, func(*meta.Release, chash.Hash128) error {
		return s.recordRaw(actor, opReleaseUpdate, body)
	})
}

// GetTrack resolves a track reference. The returned token is the owning
// release's: a song has no version of its own.
func (s *Store) GetTrack(ref meta.TrackRef) (meta.Song, chash.Hash128, error) {
	rel, tok, err := s.releases.Get(int64(ref.Release))
	if err != nil {
		return meta.Song{}, chash.Zero, refErr(err)
	}
	song, ok := rel.Tracks[ref.Num]
	if !ok {
		return meta.Song{}, chash.Zero, errNoTrack(ref)
	}
	return song, tok, nil
}

// AddTrack inserts a song at a free track position. The song's artist and
// origin references land as given; the credit and derivation indices pick
// them up immediately.
func (s *Store) AddTrack(actor meta.UserID, release meta.ReleaseID, num meta.TrackNum, song meta.Song) (err error) {
	defer func() { observe(opTrackAdd, err) }()
	if !num.Valid() {
		return errors.Join(discant_errors.ErrInvalidTrackRef,
			fmt.Errorf("track number %s", num))
	}
	ref := meta.TrackRef{Release: release, Num: num}
	return s.releases.Mutate(int64(release), func(rel *meta.Release) error {
		if _, exists := rel.Tracks[num]; exists {
			return errors.Join(discant_errors.ErrTrackExists,
				fmt.Errorf("track %s on release %d", num, release))
		}
		if err := s.record(actor, opTrackAdd, trackAddPayload{Release: release, Num: num, Song: song}); err != nil {
			return err
		}
		rel.Tracks = cloneSet(rel.Tracks, num, song)
		s.graphs.UpdateCredits(ref, nil, song.Artists)
		s.graphs.UpdateOriginals(ref, nil, song.Originals)
		return nil
	})
}

// UpdateTrack applies one single-field song diff. The presented token and
// the advanced one are the owning release's, so two writers editing
// different tracks of the same release still contend on one token.
func (s *Store) UpdateTrack(actor meta.UserID, ref meta.TrackRef, d meta.SongDiff, presented chash.Hash128) (tok chash.Hash128, err error) {
	defer func() { observe(opTrackUpdate, err) }()
	body, err := trackUpdateBody(ref, presented, d)
	if err != nil {
		return chash.Zero, err
	}
	tok, err = s.releases.UpdateFunc(int64(ref.Release), presented, d.Digest(), func(rel *meta.Release, _ chash.Hash128) error {
		song, ok := rel.Tracks[ref.Num]
		if !ok {
			return errNoTrack(ref)
		}
		if err := s.recordRaw(actor, opTrackUpdate, body); err != nil {
			return err
		}
		next := song
		d.Apply(&next)
		rel.Tracks = cloneSet(rel.Tracks, ref.Num, next)
		switch d.FieldName() {
		case "artists":
			s.graphs.UpdateCredits(ref, song.Artists, next.Artists)
		case "originals":
			s.graphs.UpdateOriginals(ref, song.Originals, next.Originals)
		}
		return nil
	})
	return tok, refErr(err)
}

// SetReleaseTitle sets the localized title for one locale.
func (s *Store) SetReleaseTitle(actor meta.UserID, id meta.ReleaseID, local meta.LocalID, title string) (err error) {
	defer func() { observe(opReleaseTitleSet, err) }()
	if err = s.validLocal(local); err != nil {
		return err
	}
	return s.releases.Mutate(int64(id), func(rel *meta.Release) error {
		if err := s.record(actor, opReleaseTitleSet, idLocalStringPayload{ID: int64(id), Local: local, Value: title}); err != nil {
			return err
		}
		rel.Titles = cloneSet(rel.Titles, local, title)
		return nil
	})
}

// AddReleaseTag attaches an existing tag; duplicates are a silent no-op.
func (s *Store) AddReleaseTag(actor meta.UserID, id meta.ReleaseID, tag meta.TagID) (err error) {
	defer func() { observe(opReleaseTagAdd, err) }()
	if err = s.validTag(tag); err != nil {
		return err
	}
	return s.releases.Mutate(int64(id), func(rel *meta.Release) error {
		if slices.Contains(rel.Tags, tag) {
			return nil
		}
		if err := s.record(actor, opReleaseTagAdd, idTagPayload{ID: int64(id), Tag: tag}); err != nil {
			return err
		}
		rel.Tags = cloneAppend(rel.Tags, tag)
		return nil
	})
}

// AddReleaseImage appends to the release's gallery.
func (s *Store) AddReleaseImage(actor meta.UserID, id meta.ReleaseID, img meta.Image) (err error) {
	defer func() { observe(opReleaseImageAdd, err) }()
	return s.releases.Mutate(int64(id), func(rel *meta.Release) error {
		if err := s.record(actor, opReleaseImageAdd, idImagePayload{ID: int64(id), Image: img}); err != nil {
			return err
		}
		rel.Images = cloneAppend(rel.Images, img)
		return nil
	})
}

// SetReleaseDescription points the locale's description at a document.
func (s *Store) SetReleaseDescription(actor meta.UserID, id meta.ReleaseID, local meta.LocalID, doc meta.FileID) (err error) {
	defer func() { observe(opReleaseDescSet, err) }()
	if err = s.validLocal(local); err != nil {
		return err
	}
	return s.releases.Mutate(int64(id), func(rel *meta.Release) error {
		if err := s.record(actor, opReleaseDescSet, idLocalDocPayload{ID: int64(id), Local: local, Doc: doc}); err != nil {
			return err
		}
		rel.Descriptions = cloneSet(rel.Descriptions, local, doc)
		return nil
	})
}

// AddTrackTag attaches an existing tag to a song; duplicates are a silent
// no-op.
func (s *Store) AddTrackTag(actor meta.UserID, ref meta.TrackRef, tag meta.TagID) (err error) {
	defer func() { observe(opTrackTagAdd, err) }()
	if err = s.validTag(tag); err != nil {
		return err
	}
	return s.mutateTrack(ref, func(song *meta.Song) error {
		if slices.Contains(song.Tags, tag) {
			return nil
		}
		if err := s.record(actor, opTrackTagAdd, refTagPayload{Ref: ref, Tag: tag}); err != nil {
			return err
		}
		song.Tags = cloneAppend(song.Tags, tag)
		return nil
	})
}

// SetTrackTitle sets a song's localized title for one locale.
func (s *Store) SetTrackTitle(actor meta.UserID, ref meta.TrackRef, local meta.LocalID, title string) (err error) {
	defer func() { observe(opTrackTitleSet, err) }()
	if err = s.validLocal(local); err != nil {
		return err
	}
	return s.mutateTrack(ref, func(song *meta.Song) error {
		if err := s.record(actor, opTrackTitleSet, refLocalStringPayload{Ref: ref, Local: local, Value: title}); err != nil {
			return err
		}
		song.Titles = cloneSet(song.Titles, local, title)
		return nil
	})
}

// SetTrackLyrics points a song's lyrics for one locale at a document.
func (s *Store) SetTrackLyrics(actor meta.UserID, ref meta.TrackRef, local meta.LocalID, doc meta.FileID) (err error) {
	defer func() { observe(opTrackLyricsSet, err) }()
	if err = s.validLocal(local); err != nil {
		return err
	}
	return s.mutateTrack(ref, func(song *meta.Song) error {
		if err := s.record(actor, opTrackLyricsSet, refLocalDocPayload{Ref: ref, Local: local, Doc: doc}); err != nil {
			return err
		}
		song.Lyrics = cloneSet(song.Lyrics, local, doc)
		return nil
	})
}

// mutateTrack resolves the song, lets fn audit and rewrite its copy, and
// swaps the copy back into the release's track map.
func (s *Store) mutateTrack(ref meta.TrackRef, fn func(song *meta.Song) error) error {
	err := s.releases.Mutate(int64(ref.Release), func(rel *meta.Release) error {
		song, ok := rel.Tracks[ref.Num]
		if !ok {
			return errNoTrack(ref)
		}
		if err := fn(&song); err != nil {
			return err
		}
		rel.Tracks = cloneSet(rel.Tracks, ref.Num, song)
		return nil
	})
	return refErr(err)
}

// refErr upgrades a release-table ErrInvalidID to ErrInvalidTrackRef, so
// every way a TrackRef can fail to resolve matches the same sentinel.
func refErr(err error) error {
	if err != nil && errors.Is(err, discant_errors.ErrInvalidID) {
		return errors.Join(discant_errors.ErrInvalidTrackRef, err)
	}
	return err
}

func errNoTrack(ref meta.TrackRef) error {
	return errors.Join(discant_errors.ErrInvalidTrackRef,
		fmt.Errorf("no track %s on release %d", ref.Num, ref.Release))
}
