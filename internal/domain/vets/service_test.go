package vets

import "testing"

func TestIndex(t *testing.T) {
	known := Index([]Vet{{ID: 1}, {ID: 3}})

	for id, want := range map[int]bool{1: true, 3: true, 2: false, 0: false} {
		if got := known(id); got != want {
			t.Fatalf("Index(%d) = %v, want %v", id, got, want)
		}
	}
}

func TestVet_FullName(t *testing.T) {
	v := Vet{FirstName: "Helen", LastName: "Leary"}
	if got := v.FullName(); got != "Helen Leary" {
		t.Fatalf("FullName() = %q", got)
	}
}
