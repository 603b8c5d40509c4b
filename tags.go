package discant

import (
	"github.com/discantdb/discant/chash"
	"github.com/discantdb/discant/meta"
)

// AddTag registers a new tag records can point at.
func (s *Store) AddTag(actor meta.UserID, name string) (meta.TagID, error) {
	return s.addTag(actor, meta.Tag{Name: name})
}

func (s *Store) addTag(actor meta.UserID, seed meta.Tag) (id meta.TagID, err error) {
	defer func() { observe(opTagAdd, err) }()
	raw, err := s.tags.Add(seed, func(int64) error {
		return s.record(actor, opTagAdd, seed)
	})
	if err != nil {
		return 0, err
	}
	return meta.TagID(raw), nil
}

// GetTag returns a snapshot of the tag and its current version token.
func (s *Store) GetTag(id meta.TagID) (meta.Tag, chash.Hash128, error) {
	return s.tags.Get(int64(id))
}

// UpdateTag renames a tag under its token.
func (s *Store) UpdateTag(actor meta.UserID, id meta.TagID, d meta.TagDiff, presented chash.Hash128) (tok chash.Hash128, err error) {
	defer func() { observe(opTagUpdate, err) }()
	body, err := updateBody(int64(id), presented, d)
	if err != nil {
		return chash.Zero, err
	}
	return s.tags.Update(int64(id), presented, d, func(*meta.Tag, chash.Hash128) error {
		return s.recordRaw(actor, opTagUpdate, body)
	})
}
