package versioning

// Created reports the outcome of a successful write: the identity of the
// new version row and the version number it was assigned.
type Created struct {
	ID      uint `json:"id"`
	Version uint `json:"version"`
}
