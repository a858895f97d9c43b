package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRepo struct {
	byID    map[string]Pet
	created int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]Pet{}}
}

func (f *fakeRepo) Create(ctx context.Context, p Pet) error {
	f.created++
	f.byID[p.ID] = p
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := f.byID[id]
	if !ok {
		return Pet{}, errors.New("not found")
	}
	return p, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func TestCreate_OK(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	fixed := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	p, err := svc.Create(context.Background(), CreateInput{
		Name:      "  Luna ",
		Species:   SpeciesDog,
		Breed:     "Border Collie",
		TutorName: "Carla Méndez",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}
	if p.Name != "Luna" {
		t.Fatalf("name = %q, want trimmed", p.Name)
	}
	if !p.CreatedAt.Equal(fixed) || !p.UpdatedAt.Equal(fixed) {
		t.Fatalf("timestamps = %s/%s", p.CreatedAt, p.UpdatedAt)
	}
	if repo.created != 1 {
		t.Fatalf("repo.created = %d", repo.created)
	}
}

func TestCreate_Invalid(t *testing.T) {
	svc := NewService(newFakeRepo())

	if _, err := svc.Create(context.Background(), CreateInput{Name: "  ", Species: SpeciesDog}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty name: err = %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Rex", Species: "bird"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown species: err = %v", err)
	}
}

func TestGetByID_EmptyID(t *testing.T) {
	svc := NewService(newFakeRepo())
	if _, err := svc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
