package visits

import "time"

// DateLayout es el formato de fecha que aceptan los formularios de visitas.
const DateLayout = "2006-01-02"

// Visit representa una consulta veterinaria de una mascota.
type Visit struct {
	ID    int // lo asigna el storage; nunca viene del cliente
	PetID int
	VetID int

	Date        time.Time
	Description string
}

func (v Visit) IsNew() bool {
	return v.ID == 0
}
