package pets

import (
	"time"

	"petclinic-visits/internal/domain/visits"
)

// Pet representa una mascota y, durante un request, su historial de visitas.
type Pet struct {
	ID      int
	OwnerID int

	Name      string
	Type      string // dog, cat, bird, ...
	BirthDate *time.Time

	Visits []visits.Visit
}

// SetVisits reemplaza la lista en memoria por la que viene del storage.
func (p *Pet) SetVisits(vs []visits.Visit) {
	p.Visits = append([]visits.Visit(nil), vs...)
}

// AddVisit asocia la visita a la mascota y devuelve la copia asociada.
func (p *Pet) AddVisit(v visits.Visit) visits.Visit {
	v.PetID = p.ID
	p.Visits = append(p.Visits, v)
	return v
}

// History devuelve solo las visitas ya persistidas.
func (p Pet) History() []visits.Visit {
	out := make([]visits.Visit, 0, len(p.Visits))
	for _, v := range p.Visits {
		if v.IsNew() {
			continue
		}
		out = append(out, v)
	}
	return out
}
