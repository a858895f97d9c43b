package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name       string
	Species    Species
	Breed      string
	TutorName  string
	TutorPhone string
	Notes      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Species != SpeciesDog && in.Species != SpeciesCat {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		Species:    in.Species,
		Breed:      strings.TrimSpace(in.Breed),
		TutorName:  strings.TrimSpace(in.TutorName),
		TutorPhone: strings.TrimSpace(in.TutorPhone),
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}
