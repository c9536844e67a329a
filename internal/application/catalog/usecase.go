package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jcastellanos/sweetshop-api/internal/application/dto"
	"github.com/jcastellanos/sweetshop-api/internal/domain"
	"github.com/jcastellanos/sweetshop-api/internal/domain/entity"
	"github.com/jcastellanos/sweetshop-api/internal/domain/repository"
)

// SweetUseCase casos de uso del catálogo: CRUD, búsqueda, compra,
// reposición y carga de imagen.
type SweetUseCase struct {
	repo     repository.SweetRepository
	tx       TxRunner
	uploader ImageUploader
}

// NewSweetUseCase construye el caso de uso del catálogo.
func NewSweetUseCase(repo repository.SweetRepository, tx TxRunner, uploader ImageUploader) *SweetUseCase {
	return &SweetUseCase{repo: repo, tx: tx, uploader: uploader}
}

// Create crea un dulce nuevo con stock y precio iniciales.
func (uc *SweetUseCase) Create(in dto.CreateSweetRequest) (*dto.SweetResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sweet := &entity.Sweet{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(sweet); err != nil {
		return nil, err
	}
	return toSweetResponse(sweet), nil
}

// List devuelve el catálogo completo.
func (uc *SweetUseCase) List() ([]dto.SweetResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toSweetResponses(list), nil
}

// Search filtra por nombre (substring, case-insensitive), categoría
// (igualdad case-insensitive) y rango de precio inclusivo. Los filtros
// ausentes no restringen; sin filtros equivale a List.
func (uc *SweetUseCase) Search(in dto.SearchSweetRequest) ([]dto.SweetResponse, error) {
	filter := repository.SweetFilter{
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
	}
	if in.Name != "" {
		filter.Name = &in.Name
	}
	if in.Category != "" {
		filter.Category = &in.Category
	}
	list, err := uc.repo.Search(filter)
	if err != nil {
		return nil, err
	}
	return toSweetResponses(list), nil
}

// Update sobrescribe nombre, categoría, precio y cantidad. La URL de imagen
// no viaja en el request y se preserva tal cual.
func (uc *SweetUseCase) Update(id string, in dto.UpdateSweetRequest) (*dto.SweetResponse, error) {
	if in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	sweet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, domain.ErrNotFound
	}
	sweet.Name = in.Name
	sweet.Category = in.Category
	sweet.Price = in.Price
	sweet.Quantity = in.Quantity
	sweet.UpdatedAt = time.Now()
	if err := uc.repo.Update(sweet); err != nil {
		return nil, err
	}
	return toSweetResponse(sweet), nil
}

// Delete elimina un dulce. Un id inexistente devuelve ErrNotFound en lugar
// de éxito silencioso, para que el tooling de admin detecte ids mal tecleados.
func (uc *SweetUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Purchase descuenta stock. Cantidades no positivas se rechazan antes de
// tocar la fila; la lectura con FOR UPDATE y el decremento corren en una
// sola transacción, así dos compras concurrentes no pierden actualizaciones.
func (uc *SweetUseCase) Purchase(ctx context.Context, id string, quantity int) (*dto.SweetResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Sweet
	err := uc.tx.Run(ctx, func(sweetRepo repository.SweetRepository) error {
		sweet, err := sweetRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if sweet == nil {
			return domain.ErrNotFound
		}
		if sweet.Quantity < quantity {
			return domain.ErrInsufficientStock
		}
		sweet.Quantity -= quantity
		sweet.UpdatedAt = time.Now()
		if err := sweetRepo.Update(sweet); err != nil {
			return err
		}
		updated = sweet
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSweetResponse(updated), nil
}

// Restock incrementa stock dentro de una transacción, con la misma
// validación de cantidad que Purchase.
func (uc *SweetUseCase) Restock(ctx context.Context, id string, quantity int) (*dto.SweetResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Sweet
	err := uc.tx.Run(ctx, func(sweetRepo repository.SweetRepository) error {
		sweet, err := sweetRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if sweet == nil {
			return domain.ErrNotFound
		}
		sweet.Quantity += quantity
		sweet.UpdatedAt = time.Now()
		if err := sweetRepo.Update(sweet); err != nil {
			return err
		}
		updated = sweet
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSweetResponse(updated), nil
}

// AttachImage sube los bytes al hosting externo y guarda la URL devuelta.
func (uc *SweetUseCase) AttachImage(ctx context.Context, id string, data []byte, filename string) (*dto.SweetResponse, error) {
	if len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	sweet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, domain.ErrNotFound
	}
	url, err := uc.uploader.Upload(ctx, data, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if err := uc.repo.UpdateImageURL(id, url); err != nil {
		return nil, err
	}
	sweet.ImageURL = url
	sweet.UpdatedAt = time.Now()
	return toSweetResponse(sweet), nil
}

func toSweetResponse(s *entity.Sweet) *dto.SweetResponse {
	if s == nil {
		return nil
	}
	return &dto.SweetResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		ImageURL:  s.ImageURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toSweetResponses(list []*entity.Sweet) []dto.SweetResponse {
	items := make([]dto.SweetResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSweetResponse(s))
	}
	return items
}
