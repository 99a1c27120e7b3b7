package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

// SedeUseCase CRUD de sedes.
type SedeUseCase struct {
	repo repository.SedeRepository
}

// NewSedeUseCase construye el caso de uso.
func NewSedeUseCase(repo repository.SedeRepository) *SedeUseCase {
	return &SedeUseCase{repo: repo}
}

// Create crea una sede activa.
func (uc *SedeUseCase) Create(ctx context.Context, in dto.CreateSedeRequest) (*dto.SedeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sede := &entity.Sede{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(sede); err != nil {
		return nil, err
	}
	return toSedeResponse(sede), nil
}

// GetByID obtiene una sede, o ErrNotFound si no existe.
func (uc *SedeUseCase) GetByID(ctx context.Context, id string) (*dto.SedeResponse, error) {
	sede, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}
	return toSedeResponse(sede), nil
}

// List lista sedes; onlyActive filtra las inactivas.
func (uc *SedeUseCase) List(ctx context.Context, onlyActive bool) ([]*dto.SedeResponse, error) {
	sedes, err := uc.repo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SedeResponse, 0, len(sedes))
	for _, s := range sedes {
		out = append(out, toSedeResponse(s))
	}
	return out, nil
}

// Update actualiza una sede. Campos nil no se modifican.
func (uc *SedeUseCase) Update(ctx context.Context, id string, in dto.UpdateSedeRequest) (*dto.SedeResponse, error) {
	sede, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		sede.Name = *in.Name
	}
	if in.Address != nil {
		sede.Address = *in.Address
	}
	if in.Phone != nil {
		sede.Phone = *in.Phone
	}
	if in.Active != nil {
		sede.Active = *in.Active
	}
	sede.UpdatedAt = time.Now()
	if err := uc.repo.Update(sede); err != nil {
		return nil, err
	}
	return toSedeResponse(sede), nil
}

func toSedeResponse(s *entity.Sede) *dto.SedeResponse {
	return &dto.SedeResponse{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
		Active:  s.Active,
	}
}
