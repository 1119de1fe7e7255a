package pets

import "time"

// Pet representa una mascota registrada para adopción.
// Owner es nil mientras nadie la adoptó; el workflow de adopción
// es quien setea Adopted=true junto con Owner.
type Pet struct {
	ID        string
	Name      string
	Species   string
	BirthDate *time.Time
	Adopted   bool
	Owner     *string // ID del usuario adoptante
	Image     string  // path de imagen opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
