package meta

// ArtistMetaData is the catalog record of a performer, producer or group.
//
// Plain fields change through generated single-field diffs; fields tagged
// diff:"-" are managed collections, mutated only by their dedicated store
// operations. Group membership is stored on the member side; the reverse
// direction lives in the derived membership index.
type ArtistMetaData struct {
	Name            string             `json:"name"`
	Aliases         []StringWithLocal  `json:"aliases,omitempty"`
	Kind            *ArtistKind        `json:"kind,omitempty"`
	StartLocation   *LocationID        `json:"start_location,omitempty"`
	CurrentLocation *LocationID        `json:"current_location,omitempty"`
	StartDate       *DateWithPrecision `json:"start_date,omitempty"`
	EndDate         *DateWithPrecision `json:"end_date,omitempty"`
	Birthday        *Birthday          `json:"birthday,omitempty"`
	BirthYear       *uint16            `json:"birth_year,omitempty"`
	URLs            []URL              `json:"urls,omitempty"`

	ProfileImage *Image             `json:"profile_image,omitempty" diff:"-"`
	Memberships  []ArtistMembership `json:"memberships,omitempty" diff:"-"`
	Tags         []TagID            `json:"tags,omitempty" diff:"-"`
	Descriptions LocalizedDocuments `json:"descriptions,omitempty" diff:"-"`
}

// IsGroup reports whether the artist can take members.
func (a *ArtistMetaData) IsGroup() bool {
	return a.Kind != nil && *a.Kind == ArtistGroup
}
