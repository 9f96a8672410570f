// Package seed tiene los datos de ejemplo de la clínica (vets, mascotas,
// visitas) que cualquier backend puede cargar con SEED_DATA=true.
package seed

import (
	"time"

	"petclinic-visits/internal/domain/pets"
	"petclinic-visits/internal/domain/vets"
	"petclinic-visits/internal/domain/visits"
)

type Data struct {
	Vets   []vets.Vet
	Pets   []pets.Pet
	Visits []visits.Visit
}

func Default() Data {
	return Data{
		Vets: []vets.Vet{
			{ID: 1, FirstName: "James", LastName: "Carter"},
			{ID: 2, FirstName: "Helen", LastName: "Leary", Specialties: []string{"radiology"}},
			{ID: 3, FirstName: "Linda", LastName: "Douglas", Specialties: []string{"dentistry", "surgery"}},
			{ID: 4, FirstName: "Rafael", LastName: "Ortega", Specialties: []string{"surgery"}},
			{ID: 5, FirstName: "Henry", LastName: "Stevens", Specialties: []string{"radiology"}},
			{ID: 6, FirstName: "Sharon", LastName: "Jenkins"},
		},
		Pets: []pets.Pet{
			{ID: 1, OwnerID: 1, Name: "Leo", Type: "cat", BirthDate: date("2010-09-07")},
			{ID: 2, OwnerID: 2, Name: "Basil", Type: "hamster", BirthDate: date("2012-08-06")},
			{ID: 3, OwnerID: 3, Name: "Rosy", Type: "dog", BirthDate: date("2011-04-17")},
			{ID: 4, OwnerID: 3, Name: "Jewel", Type: "dog", BirthDate: date("2010-03-07")},
			{ID: 5, OwnerID: 4, Name: "Iggy", Type: "lizard", BirthDate: date("2010-11-30")},
			{ID: 6, OwnerID: 5, Name: "George", Type: "snake", BirthDate: date("2010-01-20")},
			{ID: 7, OwnerID: 6, Name: "Samantha", Type: "cat", BirthDate: date("2012-09-04")},
			{ID: 8, OwnerID: 6, Name: "Max", Type: "cat", BirthDate: date("2012-09-04")},
			{ID: 9, OwnerID: 7, Name: "Lucky", Type: "bird", BirthDate: date("2011-08-06")},
			{ID: 10, OwnerID: 8, Name: "Mulligan", Type: "dog", BirthDate: date("2007-02-24")},
			{ID: 11, OwnerID: 9, Name: "Freddy", Type: "bird", BirthDate: date("2010-03-09")},
			{ID: 12, OwnerID: 10, Name: "Lucky", Type: "dog", BirthDate: date("2010-06-24")},
			{ID: 13, OwnerID: 10, Name: "Sly", Type: "cat", BirthDate: date("2012-06-08")},
		},
		Visits: []visits.Visit{
			{ID: 1, PetID: 7, VetID: 2, Date: *date("2013-01-01"), Description: "rabies shot"},
			{ID: 2, PetID: 8, VetID: 2, Date: *date("2013-01-02"), Description: "rabies shot"},
			{ID: 3, PetID: 8, VetID: 4, Date: *date("2013-01-03"), Description: "neutered"},
			{ID: 4, PetID: 7, VetID: 3, Date: *date("2013-01-04"), Description: "spayed"},
		},
	}
}

func date(s string) *time.Time {
	t, err := time.Parse(visits.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}
