package meta

// Tag is a label records point at by id.
type Tag struct {
	Name string `json:"name"`
}
