package domain

// Garment is one selectable dress record from the remote catalog.
type Garment struct {
	ID       string
	Name     string
	Style    string
	ImageURL string
}
