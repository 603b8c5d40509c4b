package meta

// Event is a convention, concert or other occasion releases are tied to.
type Event struct {
	Name      string             `json:"name"`
	Location  *LocationID        `json:"location,omitempty"`
	Address   string             `json:"address,omitempty"`
	StartDate *DateWithPrecision `json:"start_date,omitempty"`
	EndDate   *DateWithPrecision `json:"end_date,omitempty"`
	URLs      []URL              `json:"urls,omitempty"`

	Names        LocalizedStrings   `json:"names,omitempty" diff:"-"`
	Descriptions LocalizedDocuments `json:"descriptions,omitempty" diff:"-"`
}
