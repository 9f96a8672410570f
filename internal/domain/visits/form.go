package visits

import (
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Form guarda los valores crudos enviados por el cliente.
// Solo estos tres campos se aceptan; el resto se descarta en BindForm.
type Form struct {
	Date        string `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Description string `form:"description" json:"description" validate:"required,max=255"`
	VetID       string `form:"vetId" json:"vetId" validate:"required,number"`
}

// Binding es el resultado de mapear el body a un Form.
type Binding struct {
	Form Form

	// Rejected lista campos prohibidos que vinieron en el body (id, petId).
	Rejected []string
	// Unknown lista campos que no pertenecen al formulario.
	Unknown []string
}

var formFields = map[string]func(f *Form, v string){
	"date":        func(f *Form, v string) { f.Date = v },
	"description": func(f *Form, v string) { f.Description = v },
	"vetId":       func(f *Form, v string) { f.VetID = v },
}

// La identidad y la mascota dueña salen del path o del storage, nunca del body.
var forbiddenFields = map[string]struct{}{
	"id":    {},
	"petid": {},
}

// BindForm copia al Form únicamente los campos aceptados.
func BindForm(values map[string][]string) Binding {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b Binding
	for _, k := range keys {
		name := strings.TrimSpace(k)
		if _, forbidden := forbiddenFields[strings.ToLower(name)]; forbidden {
			b.Rejected = append(b.Rejected, name)
			continue
		}
		set, ok := formFields[name]
		if !ok {
			b.Unknown = append(b.Unknown, name)
			continue
		}
		vals := values[k]
		if len(vals) == 0 {
			continue
		}
		set(&b.Form, strings.TrimSpace(vals[0]))
	}
	return b
}

// FieldError anota un error de validación sobre un campo del formulario.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result es una visita validada o la lista de errores por campo.
type Result struct {
	Visit  Visit
	Errors []FieldError
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r Result) HasError(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los errores usan el nombre del campo en el formulario (vetId, no VetID).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &FormValidator{validate: v}
}

// Validate aplica las reglas del formulario. knownVet puede ser nil
// (no se valida la referencia al veterinario).
func (fv *FormValidator) Validate(f Form, knownVet func(id int) bool) Result {
	var res Result

	if err := fv.validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			res.Errors = append(res.Errors, FieldError{Code: "invalid", Message: err.Error()})
			return res
		}
		for _, fe := range verrs {
			res.Errors = append(res.Errors, FieldError{
				Field:   fe.Field(),
				Code:    fe.Tag(),
				Message: messageFor(fe),
			})
		}
	}

	res.Visit.Description = f.Description

	if !res.HasError("date") {
		d, err := time.Parse(DateLayout, f.Date)
		if err != nil {
			res.Errors = append(res.Errors, FieldError{Field: "date", Code: "datetime", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			res.Visit.Date = d
		}
	}

	if !res.HasError("vetId") {
		id, err := strconv.Atoi(f.VetID)
		switch {
		case err != nil:
			res.Errors = append(res.Errors, FieldError{Field: "vetId", Code: "number", Message: "must be a number"})
		case knownVet != nil && !knownVet(id):
			res.Errors = append(res.Errors, FieldError{Field: "vetId", Code: "unknown_vet", Message: "must reference a listed vet"})
		default:
			res.Visit.VetID = id
		}
	}

	return res
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "number":
		return "must be a number"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
