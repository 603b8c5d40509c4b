package discant

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/discantdb/discant/discant_errors"
	"github.com/discantdb/discant/meta"
	"github.com/discantdb/discant/wal"
)

// Replay rebuilds a store by running every audit entry back through its
// normal operation path: payloads are re-validated, diffs re-hashed, tokens
// re-chained. An intact log therefore reproduces records, tokens and
// derived indices exactly. Checks against state that may legitimately have
// moved on later in the log (the group-kind check of a membership) are not
// re-run; the entry passed them when it was accepted. Entries are not
// re-recorded while replaying; the configured audit log takes over once
// replay is done.
func Replay(r wal.Reader, opts Options) (*Store, error) {
	opts.SetDefaults()
	live := opts.AuditLog
	opts.AuditLog = wal.Nop{}
	s := New(opts)

	var n uint64
	err := r.Scan(func(e wal.Entry) error {
		if err := s.apply(e); err != nil {
			return errors.Join(discant_errors.ErrBadEntry,
				fmt.Errorf("seq %d op %q", e.Seq, e.Op), err)
		}
		n++
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit = live
	s.log.Info("replayed audit log", "entries", n)
	return s, nil
}

func decode[P any](data []byte) (P, error) {
	var p P
	if err := jsoniter.Unmarshal(data, &p); err != nil {
		return p, err
	}
	return p, nil
}

func (s *Store) apply(e wal.Entry) error {
	switch e.Op {
	case opArtistAdd:
		seed, err := decode[meta.ArtistMetaData](e.Payload)
		if err != nil {
			return err
		}
		_, err = s.addArtist(e.Actor, seed)
		return err

	case opArtistUpdate:
		p, err := decode[updatePayload](e.Payload)
		if err != nil {
			return err
		}
		d, err := meta.DecodeArtistMetaDataDiff(p.Diff)
		if err != nil {
			return err
		}
		_, err = s.UpdateArtist(e.Actor, meta.ArtistID(p.ID), d, p.Tok)
		return err

	case opMembershipAdd:
		p, err := decode[membershipPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.commitMembership(e.Actor, p.ID, p.Membership)

	case opProfileImageSet:
		p, err := decode[idImagePayload](e.Payload)
		if err != nil {
			return err
		}
		return s.SetProfileImage(e.Actor, meta.ArtistID(p.ID), p.Image)

	case opArtistTagAdd:
		p, err := decode[idTagPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.AddArtistTag(e.Actor, meta.ArtistID(p.ID), p.Tag)

	case opArtistDescSet:
		p, err := decode[idLocalDocPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.SetArtistDescription(e.Actor, meta.ArtistID(p.ID), p.Local, p.Doc)

	case opReleaseAdd:
		seed, err := decode[meta.Release](e.Payload)
		if err != nil {
			return err
		}
		_, err = s.addRelease(e.Actor, seed)
		return err

	case opReleaseUpdate:
		p, err := decode[updatePayload](e.Payload)
		if err != nil {
			return err
		}
		d, err := meta.DecodeReleaseDiff(p.Diff)
		if err != nil {
			return err
		}
		_, err = s.UpdateRelease(e.Actor, meta.ReleaseID(p.ID), d, p.Tok)
		return err

	case opReleaseTitleSet:
		p, err := decode[idLocalStringPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.SetReleaseTitle(e.Actor, meta.ReleaseID(p.ID), p.Local, p.Value)

	case opTrackAdd:
		p, err := decode[trackAddPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.AddTrack(e.Actor, p.Release, p.Num, p.Song)

	case opReleaseTagAdd:
		p, err := decode[idTagPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.AddReleaseTag(e.Actor, meta.ReleaseID(p.ID), p.Tag)

	case opReleaseImageAdd:
		p, err := decode[idImagePayload](e.Payload)
		if err != nil {
			return err
		}
		return s.AddReleaseImage(e.Actor, meta.ReleaseID(p.ID), p.Image)

	case opReleaseDescSet:
		p, err := decode[idLocalDocPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.SetReleaseDescription(e.Actor, meta.ReleaseID(p.ID), p.Local, p.Doc)

	case opTrackUpdate:
		p, err := decode[trackUpdatePayload](e.Payload)
		if err != nil {
			return err
		}
		d, err := meta.DecodeSongDiff(p.Diff)
		if err != nil {
			return err
		}
		_, err = s.UpdateTrack(e.Actor, p.Ref, d, p.Tok)
		return err

	case opTrackTagAdd:
		p, err := decode[refTagPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.AddTrackTag(e.Actor, p.Ref, p.Tag)

	case opTrackTitleSet:
		p, err := decode[refLocalStringPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.SetTrackTitle(e.Actor, p.Ref, p.Local, p.Value)

	case opTrackLyricsSet:
		p, err := decode[refLocalDocPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.SetTrackLyrics(e.Actor, p.Ref, p.Local, p.Doc)

	case opEventAdd:
		seed, err := decode[meta.Event](e.Payload)
		if err != nil {
			return err
		}
		_, err = s.addEvent(e.Actor, seed)
		return err

	case opEventUpdate:
		p, err := decode[updatePayload](e.Payload)
		if err != nil {
			return err
		}
		d, err := meta.DecodeEventDiff(p.Diff)
		if err != nil {
			return err
		}
		_, err = s.UpdateEvent(e.Actor, meta.EventID(p.ID), d, p.Tok)
		return err

	case opEventNameSet:
		p, err := decode[idLocalStringPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.SetEventName(e.Actor, meta.EventID(p.ID), p.Local, p.Value)

	case opEventDescSet:
		p, err := decode[idLocalDocPayload](e.Payload)
		if err != nil {
			return err
		}
		return s.SetEventDescription(e.Actor, meta.EventID(p.ID), p.Local, p.Doc)

	case opTagAdd:
		seed, err := decode[meta.Tag](e.Payload)
		if err != nil {
			return err
		}
		_, err = s.addTag(e.Actor, seed)
		return err

	case opTagUpdate:
		p, err := decode[updatePayload](e.Payload)
		if err != nil {
			return err
		}
		d, err := meta.DecodeTagDiff(p.Diff)
		if err != nil {
			return err
		}
		_, err = s.UpdateTag(e.Actor, meta.TagID(p.ID), d, p.Tok)
		return err

	default:
		return fmt.Errorf("unknown operation")
	}
}
