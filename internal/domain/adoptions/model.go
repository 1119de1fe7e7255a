package adoptions

import "time"

// Adoption vincula un usuario (owner) con una mascota adoptada.
// Se crea exactamente una vez por adopción exitosa y nunca se borra
// ni se modifica después.
type Adoption struct {
	ID    string
	Owner string // ID del usuario adoptante
	Pet   string // ID de la mascota adoptada

	CreatedAt time.Time
}
