package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellanos/sweetshop-api/internal/domain"
	"github.com/jcastellanos/sweetshop-api/internal/domain/entity"
	"github.com/jcastellanos/sweetshop-api/internal/domain/repository"
)

var _ repository.SweetRepository = (*SweetRepo)(nil)

const sweetColumns = `id, name, category, price, quantity, image_url, created_at, updated_at`

// SweetRepo implementación del puerto SweetRepository sobre PostgreSQL (usable con pool o tx).
type SweetRepo struct {
	q Querier
}

// NewSweetRepository construye el adaptador de persistencia para dulces. Pasar pool o tx (Querier).
func NewSweetRepository(q Querier) *SweetRepo {
	return &SweetRepo{q: q}
}

// Create persiste un dulce nuevo.
func (r *SweetRepo) Create(sweet *entity.Sweet) error {
	query := `
		INSERT INTO sweets (id, name, category, price, quantity, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity, sweet.ImageURL,
		sweet.CreatedAt, sweet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sweet: %w", err)
	}
	return nil
}

// GetByID obtiene un dulce por ID.
func (r *SweetRepo) GetByID(id string) (*entity.Sweet, error) {
	return r.getByID(id, "")
}

// GetByIDForUpdate obtiene un dulce bloqueando la fila. Solo tiene sentido
// dentro de una transacción del TxRunner: la compra concurrente espera aquí.
func (r *SweetRepo) GetByIDForUpdate(id string) (*entity.Sweet, error) {
	return r.getByID(id, " FOR UPDATE")
}

func (r *SweetRepo) getByID(id, suffix string) (*entity.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets WHERE id = $1` + suffix
	var s entity.Sweet
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sweet: %w", err)
	}
	return &s, nil
}

// List devuelve todos los dulces.
func (r *SweetRepo) List() ([]*entity.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets ORDER BY created_at DESC`
	return r.queryMany(query)
}

// Search combina los filtros presentes: nombre por ILIKE substring,
// categoría por igualdad case-insensitive y precio por rango inclusivo.
// Sin filtros devuelve lo mismo que List.
func (r *SweetRepo) Search(filter repository.SweetFilter) ([]*entity.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets WHERE 1=1`
	var args []any
	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(" AND lower(category) = lower($%d)", len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		query += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	query += ` ORDER BY created_at DESC`
	return r.queryMany(query, args...)
}

func (r *SweetRepo) queryMany(query string, args ...any) ([]*entity.Sweet, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sweets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sweet
	for rows.Next() {
		var s entity.Sweet
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sweet: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update sobrescribe nombre, categoría, precio y cantidad. No toca image_url:
// la imagen se adjunta en una operación aparte y debe sobrevivir a los edits.
func (r *SweetRepo) Update(sweet *entity.Sweet) error {
	query := `
		UPDATE sweets SET name = $2, category = $3, price = $4, quantity = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity, sweet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sweet: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateImageURL guarda la URL devuelta por el hosting de imágenes.
func (r *SweetRepo) UpdateImageURL(id, imageURL string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sweets SET image_url = $2, updated_at = now() WHERE id = $1`,
		id, imageURL,
	)
	if err != nil {
		return fmt.Errorf("update sweet image: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un dulce por ID. Un id inexistente devuelve ErrNotFound.
func (r *SweetRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sweet: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
