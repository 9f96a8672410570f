package pets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"petclinic-visits/internal/domain/vets"
	"petclinic-visits/internal/domain/visits"
	"petclinic-visits/internal/middleware"
	"petclinic-visits/internal/platform/logger"
	"petclinic-visits/internal/platform/metrics"
	"petclinic-visits/internal/platform/view"

	"github.com/go-chi/chi/v5"
)

const maxFormBytes = 1 << 20

// VisitRoutesDeps agrupa lo que necesitan los handlers de formularios de visitas.
type VisitRoutesDeps struct {
	Pets      *Service
	Vets      *vets.Service
	Visits    *visits.Service
	Validator *visits.FormValidator
	Views     view.Renderer
	Log       logger.Logger
	Metrics   *metrics.Metrics // puede ser nil
}

func RegisterVisitRoutes(r chi.Router, d VisitRoutesDeps) {
	// El segmento owner no se usa en los GET; en los POST solo arma el redirect.
	r.Route("/owners/{ownerID}/pets/{petID}/visits", func(vr chi.Router) {
		vr.Get("/new", showCreateVisitFormHandler(d))
		vr.Post("/new", submitCreateVisitHandler(d))

		vr.Get("/{visitID}/edit", showEditVisitFormHandler(d))
		vr.Post("/{visitID}/edit", submitEditVisitHandler(d))
	})
}

// visitForm es el modelo por request: mascota con historial fresco,
// veterinarios y la visita sobre la que se bindea el formulario.
type visitForm struct {
	Pet   Pet
	Vets  []vets.Vet
	Visit visits.Visit
}

// loadPetWithVisit corre al inicio de cada operación. No hay cache entre
// requests: mascota, vets e historial se leen siempre del storage.
func loadPetWithVisit(ctx context.Context, d VisitRoutesDeps, petID int) (visitForm, error) {
	pet, err := d.Pets.GetByID(ctx, petID)
	if err != nil {
		return visitForm{}, err
	}

	vs, err := d.Vets.List(ctx)
	if err != nil {
		return visitForm{}, fmt.Errorf("list vets: %w", err)
	}

	history, err := d.Visits.ListByPet(ctx, petID)
	if err != nil {
		return visitForm{}, fmt.Errorf("list visits: %w", err)
	}
	pet.SetVisits(history)

	visit := pet.AddVisit(visits.Visit{})

	return visitForm{Pet: pet, Vets: vs, Visit: visit}, nil
}

// showCreateVisitFormHandler godoc
// @Summary Formulario de nueva visita
// @Description Devuelve el formulario de alta con la mascota, su historial y la lista de veterinarios. Con `Accept: application/json` devuelve el modelo en JSON.
// @Tags visits
// @Produce html,json
// @Param ownerID path string true "ID del dueño (no se usa)"
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} visitFormView
// @Failure 400 {string} string "invalid pet id"
// @Failure 404 {string} string "pet not found"
// @Router /owners/{ownerID}/pets/{petID}/visits/new [get]
func showCreateVisitFormHandler(d VisitRoutesDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := pathID(w, r, "petID", "pet")
		if !ok {
			return
		}

		m, err := loadPetWithVisit(r.Context(), d, petID)
		if err != nil {
			writeLoadError(w, r, d.Log, err)
			return
		}

		renderVisitForm(w, r, d, view.CreateOrUpdateVisitForm, newVisitFormView(m, visits.Form{}, nil, 0))
	}
}

// submitCreateVisitHandler godoc
// @Summary Registrar visita
// @Description Valida el formulario y crea la visita para la mascota. El campo `id` nunca se bindea. Con errores de validación se vuelve a renderizar el formulario (200) con las anotaciones por campo.
// @Tags visits
// @Accept x-www-form-urlencoded,mpfd,json
// @Produce html,json
// @Param ownerID path int true "ID del dueño"
// @Param petID path int true "ID de la mascota"
// @Param payload body visits.Form true "date (YYYY-MM-DD), description, vetId"
// @Success 200 {object} visitFormView "formulario con errores"
// @Success 302 {string} string "redirect a /owners/{ownerID}"
// @Failure 400 {string} string "invalid owner id / invalid pet id / invalid form body"
// @Failure 415 {string} string "unsupported media type"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID}/pets/{petID}/visits/new [post]
func submitCreateVisitHandler(d VisitRoutesDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(w, r, "ownerID", "owner")
		if !ok {
			return
		}
		petID, ok := pathID(w, r, "petID", "pet")
		if !ok {
			return
		}

		m, err := loadPetWithVisit(r.Context(), d, petID)
		if err != nil {
			writeLoadError(w, r, d.Log, err)
			return
		}

		form, res, ok := bindAndValidate(w, r, d, m)
		if !ok {
			return
		}
		if !res.Valid() {
			recordFormErrors(d.Metrics, "create", res.Errors)
			m.Visit = boundVisit(m.Visit, res.Visit)
			renderVisitForm(w, r, d, view.CreateOrUpdateVisitForm, newVisitFormView(m, form, res.Errors, 0))
			return
		}

		saved, err := d.Visits.Create(r.Context(), petID, res.Visit)
		if err != nil {
			internalError(w, r, d.Log, "create visit failed", err)
			return
		}
		d.Metrics.VisitSaved("create")

		d.Log.Info("visit created", map[string]any{
			"request_id": middleware.GetRequestID(r.Context()),
			"pet_id":     petID,
			"visit_id":   saved.ID,
		})

		http.Redirect(w, r, ownerPath(ownerID), http.StatusFound)
	}
}

// showEditVisitFormHandler godoc
// @Summary Formulario de edición de visita
// @Description Devuelve el formulario de edición. visitID queda en el modelo para el submit; la visita no se carga en este paso.
// @Tags visits
// @Produce html,json
// @Param ownerID path string true "ID del dueño (no se usa)"
// @Param petID path int true "ID de la mascota"
// @Param visitID path int true "ID de la visita"
// @Success 200 {object} visitFormView
// @Failure 400 {string} string "invalid pet id / invalid visit id"
// @Failure 404 {string} string "pet not found"
// @Router /owners/{ownerID}/pets/{petID}/visits/{visitID}/edit [get]
func showEditVisitFormHandler(d VisitRoutesDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := pathID(w, r, "petID", "pet")
		if !ok {
			return
		}
		visitID, ok := pathID(w, r, "visitID", "visit")
		if !ok {
			return
		}

		m, err := loadPetWithVisit(r.Context(), d, petID)
		if err != nil {
			writeLoadError(w, r, d.Log, err)
			return
		}

		renderVisitForm(w, r, d, view.UpdateVisitForm, newVisitFormView(m, visits.Form{}, nil, visitID))
	}
}

// submitEditVisitHandler godoc
// @Summary Actualizar visita
// @Description Valida el formulario y copia fecha, veterinario y descripción sobre la visita guardada. ID y mascota no cambian.
// @Tags visits
// @Accept x-www-form-urlencoded,mpfd,json
// @Produce html,json
// @Param ownerID path int true "ID del dueño"
// @Param petID path int true "ID de la mascota"
// @Param visitID path int true "ID de la visita"
// @Param payload body visits.Form true "date (YYYY-MM-DD), description, vetId"
// @Success 200 {object} visitFormView "formulario con errores"
// @Success 302 {string} string "redirect a /owners/{ownerID}"
// @Failure 400 {string} string "invalid owner id / invalid pet id / invalid visit id / invalid form body"
// @Failure 415 {string} string "unsupported media type"
// @Failure 404 {string} string "pet not found / visit not found"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID}/pets/{petID}/visits/{visitID}/edit [post]
func submitEditVisitHandler(d VisitRoutesDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(w, r, "ownerID", "owner")
		if !ok {
			return
		}
		petID, ok := pathID(w, r, "petID", "pet")
		if !ok {
			return
		}
		visitID, ok := pathID(w, r, "visitID", "visit")
		if !ok {
			return
		}

		m, err := loadPetWithVisit(r.Context(), d, petID)
		if err != nil {
			writeLoadError(w, r, d.Log, err)
			return
		}

		// La visita bindeada es transitoria: solo aporta los campos a copiar.
		form, res, ok := bindAndValidate(w, r, d, m)
		if !ok {
			return
		}
		if !res.Valid() {
			recordFormErrors(d.Metrics, "update", res.Errors)
			m.Visit = boundVisit(m.Visit, res.Visit)
			renderVisitForm(w, r, d, view.UpdateVisitForm, newVisitFormView(m, form, res.Errors, visitID))
			return
		}

		if _, err := d.Visits.Update(r.Context(), petID, visitID, res.Visit); err != nil {
			if errors.Is(err, visits.ErrNotFound) {
				http.Error(w, "visit not found", http.StatusNotFound)
				return
			}
			internalError(w, r, d.Log, "update visit failed", err)
			return
		}
		d.Metrics.VisitSaved("update")

		d.Log.Info("visit updated", map[string]any{
			"request_id": middleware.GetRequestID(r.Context()),
			"pet_id":     petID,
			"visit_id":   visitID,
		})

		http.Redirect(w, r, ownerPath(ownerID), http.StatusFound)
	}
}

// bindAndValidate lee el body, lo mapea con visits.BindForm y valida contra
// los vets del modelo. ok=false significa que ya se respondió.
func bindAndValidate(w http.ResponseWriter, r *http.Request, d VisitRoutesDeps, m visitForm) (visits.Form, visits.Result, bool) {
	values, err := readFormValues(w, r)
	if errors.Is(err, errUnsupportedMediaType) {
		http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
		return visits.Form{}, visits.Result{}, false
	}
	if err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return visits.Form{}, visits.Result{}, false
	}

	b := visits.BindForm(values)
	if len(b.Rejected) > 0 || len(b.Unknown) > 0 {
		d.Log.Warn("visit form: fields dropped", map[string]any{
			"request_id": middleware.GetRequestID(r.Context()),
			"rejected":   b.Rejected,
			"unknown":    b.Unknown,
		})
	}

	return b.Form, d.Validator.Validate(b.Form, vets.Index(m.Vets)), true
}

var errUnsupportedMediaType = errors.New("unsupported media type")

// readFormValues acepta urlencoded y multipart (formularios HTML) o JSON plano.
func readFormValues(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	mt := ""
	if ct := strings.TrimSpace(r.Header.Get("Content-Type")); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, errUnsupportedMediaType
		}
		mt = parsed
	}

	switch mt {
	case "", "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return r.PostForm, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormBytes); err != nil {
			return nil, err
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()
		return r.PostForm, nil
	case "application/json":
	default:
		return nil, errUnsupportedMediaType
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}

	values := url.Values{}
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
			values.Set(k, "")
		case string:
			values.Set(k, t)
		case float64:
			values.Set(k, strconv.FormatFloat(t, 'f', -1, 64))
		case bool:
			values.Set(k, strconv.FormatBool(t))
		default:
			// objetos/arrays: el campo existe pero no es un valor válido
			values.Set(k, fmt.Sprint(t))
		}
	}
	return values, nil
}

// boundVisit arma la visita a re-renderizar: lo que se pudo parsear del
// submit, asociada a la misma mascota que la visita nueva del modelo.
func boundVisit(fresh, parsed visits.Visit) visits.Visit {
	parsed.ID = fresh.ID
	parsed.PetID = fresh.PetID
	return parsed
}

func recordFormErrors(m *metrics.Metrics, op string, errs []visits.FieldError) {
	for _, e := range errs {
		m.FormRejected(op, e.Field)
	}
}

func renderVisitForm(w http.ResponseWriter, r *http.Request, d VisitRoutesDeps, name string, v visitFormView) {
	if err := d.Views.Render(w, r, http.StatusOK, name, v); err != nil {
		internalError(w, r, d.Log, "render view failed", err)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, param, label string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || n <= 0 {
		http.Error(w, "invalid "+label+" id", http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

func ownerPath(ownerID int) string {
	return "/owners/" + strconv.Itoa(ownerID)
}

func writeLoadError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "pet not found", http.StatusNotFound)
		return
	}
	internalError(w, r, log, "load visit form failed", err)
}

func internalError(w http.ResponseWriter, r *http.Request, log logger.Logger, msg string, err error) {
	log.Error(msg, map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"path":       r.URL.Path,
		"error":      err.Error(),
	})
	http.Error(w, "internal error", http.StatusInternalServerError)
}
