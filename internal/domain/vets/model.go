package vets

import "strings"

// Vet es dato de referencia: se lista en cada formulario de visita.
type Vet struct {
	ID        int
	FirstName string
	LastName  string

	Specialties []string
}

func (v Vet) FullName() string {
	return strings.TrimSpace(v.FirstName + " " + v.LastName)
}
