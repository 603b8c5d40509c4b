package meta

// Release is a published collection of tracks: an album, EP, single and so
// on. Tracks live inside the release keyed by their position; a Song has no
// version token of its own, the release token guards the whole record
// including its tracks.
type Release struct {
	Title         string             `json:"title"`
	Kind          *ReleaseKind       `json:"kind,omitempty"`
	CatalogNumber *string            `json:"catalog_number,omitempty"`
	AlbumArtists  []ArtistID         `json:"album_artists,omitempty"`
	CoverArt      *Image             `json:"cover_art,omitempty"`
	Credits       []Credit           `json:"credits,omitempty"`
	DiscNames     []string           `json:"disc_names,omitempty"`
	Event         *EventID           `json:"event,omitempty"`
	ReleaseDate   *DateWithPrecision `json:"release_date,omitempty"`
	URLs          []URL              `json:"urls,omitempty"`

	Titles       LocalizedStrings   `json:"titles,omitempty" diff:"-"`
	Tracks       map[TrackNum]Song  `json:"tracks,omitempty" diff:"-"`
	Tags         []TagID            `json:"tags,omitempty" diff:"-"`
	Images       []Image            `json:"images,omitempty" diff:"-"`
	Descriptions LocalizedDocuments `json:"descriptions,omitempty" diff:"-"`
}

// Song is one track of a release. Artists lists the performing artists the
// discography index is built from; Credits carries the finer-grained roles.
// Originals links derived works (covers, remixes) back to their sources.
type Song struct {
	Title       string         `json:"title"`
	Artists     []ArtistID     `json:"artists,omitempty"`
	Credits     []Credit       `json:"credits,omitempty"`
	Languages   []LocalID      `json:"languages,omitempty"`
	Originals   []SongRelation `json:"originals,omitempty"`
	DurationSec *uint32        `json:"duration_sec,omitempty"`

	Tags   []TagID            `json:"tags,omitempty" diff:"-"`
	Titles LocalizedStrings   `json:"titles,omitempty" diff:"-"`
	Lyrics LocalizedDocuments `json:"lyrics,omitempty" diff:"-"`
}
