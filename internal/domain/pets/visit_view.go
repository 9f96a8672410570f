package pets

import (
	"strconv"

	"petclinic-visits/internal/domain/vets"
	"petclinic-visits/internal/domain/visits"
)

// visitFormView es el modelo que reciben las vistas (HTML o JSON).
type visitFormView struct {
	Pet     petView             `json:"pet"`
	Vets    []vetView           `json:"vets"`
	Visit   visitView           `json:"visit"`
	Form    visits.Form         `json:"form"`
	VisitID int                 `json:"visitId,omitempty"`
	Errors  []visits.FieldError `json:"errors,omitempty"`
}

type petView struct {
	ID        int         `json:"id"`
	OwnerID   int         `json:"ownerId"`
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	BirthDate string      `json:"birthDate,omitempty"`
	Visits    []visitView `json:"visits"`
}

type vetView struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
}

type visitView struct {
	ID          int    `json:"id,omitempty"`
	PetID       int    `json:"petId"`
	VetID       int    `json:"vetId,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

func newVisitFormView(m visitForm, f visits.Form, errs []visits.FieldError, visitID int) visitFormView {
	vs := make([]vetView, 0, len(m.Vets))
	for _, v := range m.Vets {
		vs = append(vs, toVetView(v))
	}

	return visitFormView{
		Pet:     toPetView(m.Pet),
		Vets:    vs,
		Visit:   toVisitView(m.Visit),
		Form:    f,
		VisitID: visitID,
		Errors:  errs,
	}
}

// ErrorFor devuelve el primer mensaje de error del campo (para los templates).
func (v visitFormView) ErrorFor(field string) string {
	for _, e := range v.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func (v visitFormView) VetSelected(id int) bool {
	return v.Form.VetID == strconv.Itoa(id)
}

func toPetView(p Pet) petView {
	history := p.History()
	out := petView{
		ID:      p.ID,
		OwnerID: p.OwnerID,
		Name:    p.Name,
		Type:    p.Type,
		Visits:  make([]visitView, 0, len(history)),
	}
	if p.BirthDate != nil {
		out.BirthDate = p.BirthDate.Format(visits.DateLayout)
	}
	for _, v := range history {
		out.Visits = append(out.Visits, toVisitView(v))
	}
	return out
}

func toVetView(v vets.Vet) vetView {
	specs := v.Specialties
	if specs == nil {
		specs = []string{}
	}
	return vetView{ID: v.ID, Name: v.FullName(), Specialties: specs}
}

func toVisitView(v visits.Visit) visitView {
	out := visitView{
		ID:          v.ID,
		PetID:       v.PetID,
		VetID:       v.VetID,
		Description: v.Description,
	}
	if !v.Date.IsZero() {
		out.Date = v.Date.Format(visits.DateLayout)
	}
	return out
}
