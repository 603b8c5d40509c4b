package discant

import (
	"errors"
	"fmt"
	"slices"

	"github.com/discantdb/discant/chash"
	"github.com/discantdb/discant/discant_errors"
	"github.com/discantdb/discant/meta"
)

// AddArtist appends a new artist holding only a name; everything else is
// filled in by later updates. The returned id is dense and permanent.
func (s *Store) AddArtist(actor meta.UserID, name string) (meta.ArtistID, error) {
	return s.addArtist(actor, meta.ArtistMetaData{Name: name})
}

func (s *Store) addArtist(actor meta.UserID, seed meta.ArtistMetaData) (id meta.ArtistID, err error) {
	defer func() { observe(opArtistAdd, err) }()
	raw, err := s.artists.Add(seed, func(rid int64) error {
		if err := s.record(actor, opArtistAdd, seed); err != nil {
			return err
		}
		s.names.Update(meta.ArtistID(rid), nil, searchTerms(&seed))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return meta.ArtistID(raw), nil
}

// GetArtist returns a snapshot of the record and its current version token.
func (s *Store) GetArtist(id meta.ArtistID) (meta.ArtistMetaData, chash.Hash128, error) {
	return s.artists.Get(int64(id))
}

// UpdateArtist applies one single-field diff if presented still matches the
// record's token, and returns the advanced token. A concurrent writer
// having got there first surfaces as ErrStaleVersion.
func (s *Store) UpdateArtist(actor meta.UserID, id meta.ArtistID, d meta.ArtistMetaDataDiff, presented chash.Hash128) (tok chash.Hash128, err error) {
	defer func() { observe(opArtistUpdate, err) }()
	body, err := updateBody(int64(id), presented, d)
	if err != nil {
		return chash.Zero, err
	}
	return s.artists.Update(int64(id), presented, d, func(rec *meta.ArtistMetaData, _ chash.Hash128) error {
		if err := s.recordRaw(actor, opArtistUpdate, body); err != nil {
			return err
		}
		if fn := d.FieldName(); fn == "name" || fn == "aliases" {
			next := *rec
			d.Apply(&next)
			s.names.Update(id, searchTerms(rec), searchTerms(&next))
		}
		return nil
	})
}

// AddMembership records that member belongs to m.Group. The group has to
// exist and be of Group kind. Several stints in the same group may coexist,
// distinguished by their tenures. The kind check reads the group without its
// row lock, so a racing kind change does not unwind a membership that got
// past it.
func (s *Store) AddMembership(actor meta.UserID, member meta.ArtistID, m meta.ArtistMembership) (err error) {
	defer func() { observe(opMembershipAdd, err) }()
	if m.Group == member {
		return errors.Join(discant_errors.ErrInvalidRelation,
			fmt.Errorf("artist %d joining itself", member))
	}
	group, _, err := s.artists.Get(int64(m.Group))
	if err != nil {
		return errors.Join(discant_errors.ErrInvalidRelation, err)
	}
	if !group.IsGroup() {
		return errors.Join(discant_errors.ErrInvalidRelation,
			fmt.Errorf("artist %d is not a group", m.Group))
	}
	return s.commitMembership(actor, member, m)
}

// commitMembership audits and links the membership without re-judging the
// group's kind. Replay applies membership entries through here: the entry
// was validated when it was accepted, and the group's kind may have changed
// legitimately later in the log.
func (s *Store) commitMembership(actor meta.UserID, member meta.ArtistID, m meta.ArtistMembership) error {
	return s.artists.Mutate(int64(member), func(rec *meta.ArtistMetaData) error {
		if err := s.record(actor, opMembershipAdd, membershipPayload{ID: member, Membership: m}); err != nil {
			return err
		}
		before := groupsOf(rec.Memberships)
		rec.Memberships = cloneAppend(rec.Memberships, m)
		s.graphs.UpdateMemberships(member, before, groupsOf(rec.Memberships))
		return nil
	})
}

// SetProfileImage replaces the artist's profile image.
func (s *Store) SetProfileImage(actor meta.UserID, id meta.ArtistID, img meta.Image) (err error) {
	defer func() { observe(opProfileImageSet, err) }()
	return s.artists.Mutate(int64(id), func(rec *meta.ArtistMetaData) error {
		if err := s.record(actor, opProfileImageSet, idImagePayload{ID: int64(id), Image: img}); err != nil {
			return err
		}
		rec.ProfileImage = &img
		return nil
	})
}

// AddArtistTag attaches an existing tag; attaching a tag the artist already
// carries is a no-op and is not audited.
func (s *Store) AddArtistTag(actor meta.UserID, id meta.ArtistID, tag meta.TagID) (err error) {
	defer func() { observe(opArtistTagAdd, err) }()
	if err = s.validTag(tag); err != nil {
		return err
	}
	return s.artists.Mutate(int64(id), func(rec *meta.ArtistMetaData) error {
		if slices.Contains(rec.Tags, tag) {
			return nil
		}
		if err := s.record(actor, opArtistTagAdd, idTagPayload{ID: int64(id), Tag: tag}); err != nil {
			return err
		}
		rec.Tags = cloneAppend(rec.Tags, tag)
		return nil
	})
}

// SetArtistDescription points the locale's description at a document.
func (s *Store) SetArtistDescription(actor meta.UserID, id meta.ArtistID, local meta.LocalID, doc meta.FileID) (err error) {
	defer func() { observe(opArtistDescSet, err) }()
	if err = s.validLocal(local); err != nil {
		return err
	}
	return s.artists.Mutate(int64(id), func(rec *meta.ArtistMetaData) error {
		if err := s.record(actor, opArtistDescSet, idLocalDocPayload{ID: int64(id), Local: local, Doc: doc}); err != nil {
			return err
		}
		rec.Descriptions = cloneSet(rec.Descriptions, local, doc)
		return nil
	})
}

// searchTerms collects the strings the name index files an artist under.
func searchTerms(a *meta.ArtistMetaData) []string {
	terms := make([]string, 0, len(a.Aliases)+1)
	terms = append(terms, a.Name)
	for _, alias := range a.Aliases {
		terms = append(terms, alias.Value)
	}
	return terms
}

func groupsOf(ms []meta.ArtistMembership) []meta.ArtistID {
	groups := make([]meta.ArtistID, 0, len(ms))
	for _, m := range ms {
		groups = append(groups, m.Group)
	}
	return groups
}
