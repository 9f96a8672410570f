package visits

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo   Repository
	tracer trace.Tracer
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:   repo,
		tracer: otel.Tracer("petclinic/visits"),
	}
}

func (s *Service) ListByPet(ctx context.Context, petID int) ([]Visit, error) {
	ctx, span := s.tracer.Start(ctx, "visits.ListByPet", trace.WithAttributes(attribute.Int("pet.id", petID)))
	defer span.End()

	out, err := s.repo.ListByPet(ctx, petID)
	return out, record(span, err)
}

func (s *Service) GetByID(ctx context.Context, id int) (Visit, error) {
	if id <= 0 {
		return Visit{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create persiste una visita nueva para la mascota. Cualquier ID que traiga
// in se ignora: la identidad la asigna el storage.
func (s *Service) Create(ctx context.Context, petID int, in Visit) (Visit, error) {
	ctx, span := s.tracer.Start(ctx, "visits.Create", trace.WithAttributes(attribute.Int("pet.id", petID)))
	defer span.End()

	if petID <= 0 {
		return Visit{}, record(span, ErrInvalidInput)
	}

	v := Visit{
		PetID:       petID,
		VetID:       in.VetID,
		Date:        in.Date,
		Description: in.Description,
	}

	saved, err := s.repo.Save(ctx, v)
	if err != nil {
		return Visit{}, record(span, err)
	}
	span.SetAttributes(attribute.Int("visit.id", saved.ID))
	return saved, nil
}

// Update carga la visita guardada y copia solo fecha, veterinario y
// descripción. ID y mascota se conservan.
func (s *Service) Update(ctx context.Context, petID, visitID int, in Visit) (Visit, error) {
	ctx, span := s.tracer.Start(ctx, "visits.Update", trace.WithAttributes(
		attribute.Int("pet.id", petID),
		attribute.Int("visit.id", visitID),
	))
	defer span.End()

	current, err := s.GetByID(ctx, visitID)
	if err != nil {
		return Visit{}, record(span, err)
	}
	if current.PetID != petID {
		return Visit{}, record(span, ErrNotFound)
	}

	current.Date = in.Date
	current.VetID = in.VetID
	current.Description = in.Description

	saved, err := s.repo.Save(ctx, current)
	if err != nil {
		return Visit{}, record(span, err)
	}
	return saved, nil
}

func record(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
