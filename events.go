package discant

import (
	"github.com/discantdb/discant/chash"
	"github.com/discantdb/discant/meta"
)

// AddEvent appends a new event holding only a name.
func (s *Store) AddEvent(actor meta.UserID, name string) (meta.EventID, error) {
	return s.addEvent(actor, meta.Event{Name: name})
}

func (s *Store) addEvent(actor meta.UserID, seed meta.Event) (id meta.EventID, err error) {
	defer func() { observe(opEventAdd, err) }()
	raw, err := s.events.Add(seed, func(int64) error {
		return s.record(actor, opEventAdd, seed)
	})
	if err != nil {
		return 0, err
	}
	return meta.EventID(raw), nil
}

// GetEvent returns a snapshot of the record and its current version token.
func (s *Store) GetEvent(id meta.EventID) (meta.Event, chash.Hash128, error) {
	return s.events.Get(int64(id))
}

// UpdateEvent applies one single-field diff under the event's token.
func (s *Store) UpdateEvent(actor meta.UserID, id meta.EventID, d meta.EventDiff, presented chash.Hash128) (tok chash.Hash128, err error) {
	defer func() { observe(opEventUpdate, err) }()
	body, err := updateBody(int64(id), presented, d)
	if err != nil {
		return chash.Zero, err
	}
	return s.events.Update(int64(id), presented, d, func(*meta.Event, chash.Hash128) error {
		return s.recordRaw(actor, opEventUpdate, body)
	})
}

// SetEventName sets the localized name for one locale.
func (s *Store) SetEventName(actor meta.UserID, id meta.EventID, local meta.LocalID, name string) (err error) {
	defer func() { observe(opEventNameSet, err) }()
	if err = s.validLocal(local); err != nil {
		return err
	}
	return s.events.Mutate(int64(id), func(rec *meta.Event) error {
		if err := s.record(actor, opEventNameSet, idLocalStringPayload{ID: int64(id), Local: local, Value: name}); err != nil {
			return err
		}
		rec.Names = cloneSet(rec.Names, local, name)
		return nil
	})
}

// SetEventDescription points the locale's description at a document.
func (s *Store) SetEventDescription(actor meta.UserID, id meta.EventID, local meta.LocalID, doc meta.FileID) (err error) {
	defer func() { observe(opEventDescSet, err) }()
	if err = s.validLocal(local); err != nil {
		return err
	}
	return s.events.Mutate(int64(id), func(rec *meta.Event) error {
		if err := s.record(actor, opEventDescSet, idLocalDocPayload{ID: int64(id), Local: local, Doc: doc}); err != nil {
			return err
		}
		rec.Descriptions = cloneSet(rec.Descriptions, local, doc)
		return nil
	})
}
