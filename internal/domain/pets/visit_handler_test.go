package pets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"petclinic-visits/internal/domain/vets"
	"petclinic-visits/internal/domain/visits"
	"petclinic-visits/internal/platform/logger"
	"petclinic-visits/internal/platform/view"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePets map[int]Pet

func (f fakePets) GetByID(_ context.Context, id int) (Pet, error) {
	p, ok := f[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

type fakeVets []vets.Vet

func (f fakeVets) List(context.Context) ([]vets.Vet, error) { return f, nil }

type fakeVisits struct {
	list    []visits.Visit
	listErr error
	saveErr error
	saved   []visits.Visit
}

func (f *fakeVisits) ListByPet(_ context.Context, petID int) ([]visits.Visit, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]visits.Visit, 0)
	for _, v := range f.list {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVisits) GetByID(_ context.Context, id int) (visits.Visit, error) {
	for _, v := range f.list {
		if v.ID == id {
			return v, nil
		}
	}
	return visits.Visit{}, visits.ErrNotFound
}

func (f *fakeVisits) Save(_ context.Context, v visits.Visit) (visits.Visit, error) {
	if f.saveErr != nil {
		return visits.Visit{}, f.saveErr
	}
	if v.IsNew() {
		v.ID = 100 + len(f.saved)
	}
	f.saved = append(f.saved, v)
	return v, nil
}

func testDeps(vr *fakeVisits) VisitRoutesDeps {
	return VisitRoutesDeps{
		Pets:      NewService(fakePets{5: {ID: 5, OwnerID: 4, Name: "Iggy", Type: "lizard"}}),
		Vets:      vets.NewService(fakeVets{{ID: 1, FirstName: "James", LastName: "Carter"}, {ID: 2, FirstName: "Helen", LastName: "Leary"}}),
		Visits:    visits.NewService(vr),
		Validator: visits.NewFormValidator(),
		Views:     view.MustNew(),
		Log:       logger.Nop(),
	}
}

func testRouter(d VisitRoutesDeps) http.Handler {
	r := chi.NewRouter()
	RegisterVisitRoutes(r, d)
	return r
}

func TestLoadPetWithVisit_RefreshesHistory(t *testing.T) {
	vr := &fakeVisits{list: []visits.Visit{
		{ID: 1, PetID: 5, VetID: 1, Description: "first"},
		{ID: 2, PetID: 6, VetID: 1, Description: "other pet"},
	}}
	d := testDeps(vr)

	m, err := loadPetWithVisit(context.Background(), d, 5)
	require.NoError(t, err)

	assert.Len(t, m.Vets, 2)
	assert.True(t, m.Visit.IsNew())
	assert.Equal(t, 5, m.Visit.PetID)
	require.Len(t, m.Pet.Visits, 2, "history plus the fresh visit")
	assert.Len(t, m.Pet.History(), 1)

	// sin cache: una visita nueva en storage aparece en el siguiente load
	vr.list = append(vr.list, visits.Visit{ID: 3, PetID: 5, Description: "second"})
	m, err = loadPetWithVisit(context.Background(), d, 5)
	require.NoError(t, err)
	assert.Len(t, m.Pet.History(), 2)
}

func TestLoadPetWithVisit_Errors(t *testing.T) {
	_, err := loadPetWithVisit(context.Background(), testDeps(&fakeVisits{}), 404)
	assert.ErrorIs(t, err, ErrNotFound)

	boom := errors.New("boom")
	_, err = loadPetWithVisit(context.Background(), testDeps(&fakeVisits{listErr: boom}), 5)
	assert.ErrorIs(t, err, boom)
}

func TestSubmitCreate_StorageFailureIs500(t *testing.T) {
	h := testRouter(testDeps(&fakeVisits{saveErr: errors.New("db down")}))

	form := url.Values{"date": {"2023-01-01"}, "description": {"checkup"}, "vetId": {"2"}}
	req := httptest.NewRequest(http.MethodPost, "/owners/4/pets/5/visits/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal error")
}

func TestSubmitCreate_InvalidRendersHTMLWithErrors(t *testing.T) {
	vr := &fakeVisits{}
	h := testRouter(testDeps(vr))

	form := url.Values{"date": {""}, "description": {"checkup"}, "vetId": {"2"}}
	req := httptest.NewRequest(http.MethodPost, "/owners/4/pets/5/visits/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "is required")
	assert.Contains(t, body, `value="checkup"`)
	assert.Contains(t, body, `<option value="2" selected>`)
	assert.Empty(t, vr.saved)
}

func TestSubmitCreate_RejectsBadBody(t *testing.T) {
	h := testRouter(testDeps(&fakeVisits{}))

	req := httptest.NewRequest(http.MethodPost, "/owners/4/pets/5/visits/new", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
