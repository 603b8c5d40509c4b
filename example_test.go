package discant_test

import (
	"errors"
	"fmt"

	"github.com/discantdb/discant"
	"github.com/discantdb/discant/chash"
	"github.com/discantdb/discant/discant_errors"
	"github.com/discantdb/discant/meta"
	"github.com/discantdb/discant/wal"
)

func ExampleStore_UpdateArtist() {
	store := discant.New(discant.Options{})
	editor := meta.UserID(1)

	id, _ := store.AddArtist(editor, "Aiko")

	// The first writer through spends the record's zero token.
	_, _ = store.UpdateArtist(editor, id,
		meta.ArtistMetaDataNameDiff{Value: "Aiko Minami"}, chash.Zero)

	// A second writer still holding it gets told to refetch.
	_, err := store.UpdateArtist(editor, id,
		meta.ArtistMetaDataNameDiff{Value: "Aiko M."}, chash.Zero)

	rec, _, _ := store.GetArtist(id)
	fmt.Println(rec.Name, errors.Is(err, discant_errors.ErrStaleVersion))
	// Output: Aiko Minami true
}

func ExampleReplay() {
	logbook := wal.NewMemory()
	store := discant.New(discant.Options{AuditLog: logbook})
	editor := meta.UserID(1)

	id, _ := store.AddArtist(editor, "Aiko")
	_, _ = store.UpdateArtist(editor, id,
		meta.ArtistMetaDataNameDiff{Value: "Aiko Minami"}, chash.Zero)

	rebuilt, _ := discant.Replay(logbook, discant.Options{})
	rec, _, _ := rebuilt.GetArtist(id)
	fmt.Println(rec.Name)
	// Output: Aiko Minami
}
