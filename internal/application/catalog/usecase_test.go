package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/sweetshop-api/internal/application/catalog"
	"github.com/jcastellanos/sweetshop-api/internal/application/dto"
	"github.com/jcastellanos/sweetshop-api/internal/domain"
	"github.com/jcastellanos/sweetshop-api/internal/domain/entity"
	"github.com/jcastellanos/sweetshop-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory de SweetRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeSweetRepo struct {
	byID map[string]*entity.Sweet
}

func newFakeSweetRepo() *fakeSweetRepo {
	return &fakeSweetRepo{byID: make(map[string]*entity.Sweet)}
}

func (r *fakeSweetRepo) Create(s *entity.Sweet) error {
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *fakeSweetRepo) GetByID(id string) (*entity.Sweet, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSweetRepo) GetByIDForUpdate(id string) (*entity.Sweet, error) {
	return r.GetByID(id)
}

func (r *fakeSweetRepo) List() ([]*entity.Sweet, error) {
	out := make([]*entity.Sweet, 0, len(r.byID))
	for _, s := range r.byID {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSweetRepo) Search(f repository.SweetFilter) ([]*entity.Sweet, error) {
	out := make([]*entity.Sweet, 0)
	for _, s := range r.byID {
		if f.Name != nil && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(*f.Name)) {
			continue
		}
		if f.Category != nil && !strings.EqualFold(s.Category, *f.Category) {
			continue
		}
		if f.MinPrice != nil && s.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && s.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSweetRepo) Update(s *entity.Sweet) error {
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *fakeSweetRepo) UpdateImageURL(id, url string) error {
	s, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.ImageURL = url
	return nil
}

func (r *fakeSweetRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre el mismo repo; suficiente
// para validar la lógica del usecase (la atomicidad real la prueba Postgres).
type fakeTxRunner struct {
	repo *fakeSweetRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repo repository.SweetRepository) error) error {
	return fn(tx.repo)
}

type fakeUploader struct {
	url string
	err error
}

func (u *fakeUploader) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newTestCatalog(repo *fakeSweetRepo, up *fakeUploader) *catalog.SweetUseCase {
	if up == nil {
		up = &fakeUploader{url: "https://cdn.test/sweet.png"}
	}
	return catalog.NewSweetUseCase(repo, &fakeTxRunner{repo: repo}, up)
}

func seedSweet(t *testing.T, uc *catalog.SweetUseCase, name, category string, price float64, qty int) string {
	t.Helper()
	out, err := uc.Create(dto.CreateSweetRequest{
		Name:     name,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		Quantity: qty,
	})
	require.NoError(t, err)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ValidacionDeCampos(t *testing.T) {
	uc := newTestCatalog(newFakeSweetRepo(), nil)

	_, err := uc.Create(dto.CreateSweetRequest{Name: "", Category: "chocolate"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "nombre vacío debe rechazarse")

	_, err = uc.Create(dto.CreateSweetRequest{
		Name: "Trufa", Category: "chocolate",
		Price: decimal.NewFromInt(-1),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "precio negativo debe rechazarse")

	_, err = uc.Create(dto.CreateSweetRequest{
		Name: "Trufa", Category: "chocolate",
		Price: decimal.NewFromInt(10), Quantity: -5,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "cantidad negativa debe rechazarse")
}

func TestUpdate_PreservaImagen(t *testing.T) {
	repo := newFakeSweetRepo()
	uc := newTestCatalog(repo, nil)
	id := seedSweet(t, uc, "Trufa", "chocolate", 12.50, 10)

	_, err := uc.AttachImage(context.Background(), id, []byte{0x1}, "trufa.png")
	require.NoError(t, err)

	out, err := uc.Update(id, dto.UpdateSweetRequest{
		Name: "Trufa Premium", Category: "chocolate",
		Price: decimal.NewFromFloat(15.00), Quantity: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "Trufa Premium", out.Name)
	assert.Equal(t, "https://cdn.test/sweet.png", out.ImageURL,
		"el update de datos no debe borrar la imagen ya subida")
}

func TestUpdate_IdInexistente_RetornaNotFound(t *testing.T) {
	uc := newTestCatalog(newFakeSweetRepo(), nil)

	_, err := uc.Update("no-existe", dto.UpdateSweetRequest{
		Name: "x", Category: "y", Price: decimal.NewFromInt(1),
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDelete_IdInexistente_RetornaNotFound(t *testing.T) {
	uc := newTestCatalog(newFakeSweetRepo(), nil)

	err := uc.Delete("no-existe")
	assert.True(t, errors.Is(err, domain.ErrNotFound),
		"borrar un id inexistente no debe ser un éxito silencioso")
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_FiltrosCombinados(t *testing.T) {
	repo := newFakeSweetRepo()
	uc := newTestCatalog(repo, nil)
	seedSweet(t, uc, "Trufa de cacao", "chocolate", 12.00, 5)
	seedSweet(t, uc, "Gomita ácida", "gomitas", 3.50, 50)
	seedSweet(t, uc, "Barra de chocolate", "chocolate", 8.00, 20)

	// Sin filtros: equivale a listar todo.
	all, err := uc.Search(dto.SearchSweetRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Nombre substring case-insensitive.
	byName, err := uc.Search(dto.SearchSweetRequest{Name: "CHOCO"})
	require.NoError(t, err)
	assert.Len(t, byName, 1)
	assert.Equal(t, "Barra de chocolate", byName[0].Name)

	// Categoría exacta case-insensitive + precio máximo.
	max := decimal.NewFromInt(10)
	byCat, err := uc.Search(dto.SearchSweetRequest{Category: "Chocolate", MaxPrice: &max})
	require.NoError(t, err)
	assert.Len(t, byCat, 1)
	assert.Equal(t, "Barra de chocolate", byCat[0].Name)

	// Rango de precio inclusivo.
	min := decimal.NewFromFloat(3.50)
	inRange, err := uc.Search(dto.SearchSweetRequest{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.Len(t, inRange, 2, "los bordes del rango son inclusivos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Purchase / Restock
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchase_DescuentaStock(t *testing.T) {
	repo := newFakeSweetRepo()
	uc := newTestCatalog(repo, nil)
	id := seedSweet(t, uc, "Trufa", "chocolate", 12.00, 10)

	out, err := uc.Purchase(context.Background(), id, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Quantity)

	stored, _ := repo.GetByID(id)
	assert.Equal(t, 7, stored.Quantity, "el descuento debe persistirse")
}

func TestPurchase_StockInsuficiente(t *testing.T) {
	repo := newFakeSweetRepo()
	uc := newTestCatalog(repo, nil)
	id := seedSweet(t, uc, "Trufa", "chocolate", 12.00, 2)

	_, err := uc.Purchase(context.Background(), id, 5)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	stored, _ := repo.GetByID(id)
	assert.Equal(t, 2, stored.Quantity, "una compra fallida no debe tocar el stock")
}

func TestPurchase_CantidadNoPositiva_Rechazada(t *testing.T) {
	repo := newFakeSweetRepo()
	uc := newTestCatalog(repo, nil)
	id := seedSweet(t, uc, "Trufa", "chocolate", 12.00, 10)

	_, err := uc.Purchase(context.Background(), id, 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "cantidad 0 debe rechazarse")

	_, err = uc.Purchase(context.Background(), id, -3)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "cantidad negativa debe rechazarse")
}

func TestPurchase_IdInexistente_RetornaNotFound(t *testing.T) {
	uc := newTestCatalog(newFakeSweetRepo(), nil)

	_, err := uc.Purchase(context.Background(), "no-existe", 1)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRestock_SumaStock(t *testing.T) {
	repo := newFakeSweetRepo()
	uc := newTestCatalog(repo, nil)
	id := seedSweet(t, uc, "Trufa", "chocolate", 12.00, 10)

	out, err := uc.Restock(context.Background(), id, 15)
	require.NoError(t, err)
	assert.Equal(t, 25, out.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// AttachImage
// ──────────────────────────────────────────────────────────────────────────────

func TestAttachImage_GuardaURLDevuelta(t *testing.T) {
	repo := newFakeSweetRepo()
	uc := newTestCatalog(repo, &fakeUploader{url: "https://cdn.test/nueva.png"})
	id := seedSweet(t, uc, "Trufa", "chocolate", 12.00, 10)

	out, err := uc.AttachImage(context.Background(), id, []byte{0x1, 0x2}, "trufa.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/nueva.png", out.ImageURL)

	stored, _ := repo.GetByID(id)
	assert.Equal(t, "https://cdn.test/nueva.png", stored.ImageURL)
}

func TestAttachImage_FalloDeSubida_NoGuardaNada(t *testing.T) {
	repo := newFakeSweetRepo()
	uc := newTestCatalog(repo, &fakeUploader{err: errors.New("hosting caído")})
	id := seedSweet(t, uc, "Trufa", "chocolate", 12.00, 10)

	_, err := uc.AttachImage(context.Background(), id, []byte{0x1}, "trufa.png")
	assert.True(t, errors.Is(err, domain.ErrUploadFailed))

	stored, _ := repo.GetByID(id)
	assert.Empty(t, stored.ImageURL, "un upload fallido no debe dejar URL colgada")
}

func TestAttachImage_ArchivoVacio_Rechazado(t *testing.T) {
	repo := newFakeSweetRepo()
	uc := newTestCatalog(repo, nil)
	id := seedSweet(t, uc, "Trufa", "chocolate", 12.00, 10)

	_, err := uc.AttachImage(context.Background(), id, nil, "vacio.png")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
