package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/sweetshop-api/internal/application/auth"
	"github.com/jcastellanos/sweetshop-api/internal/application/dto"
	"github.com/jcastellanos/sweetshop-api/internal/domain"
	"github.com/jcastellanos/sweetshop-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory de UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) AdminExists() (bool, error) {
	for _, u := range r.byEmail {
		if u.Role == entity.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// stubToken evita firmar JWT reales en los tests de usecase.
func stubToken(secret, userID, email, role, issuer string, expMinutes int) (string, error) {
	return "stub-token-" + role, nil
}

func newTestUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret",
		ExpMinutes: 60,
		Issuer:     "sweetshop-api-test",
	}, stubToken)
}

func registerInput(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Firstname: "Ana",
		Lastname:  "Gómez",
		Email:     email,
		Password:  "sup3r-secreta",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConRolUSER(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	out, err := uc.Register(registerInput("ana@sweetshop.test"))
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, out.Role, "el registro público siempre crea USER")
	assert.NotEmpty(t, out.UserID)
	assert.NotEmpty(t, out.Token, "el registro debe emitir token de sesión")

	stored, err := repo.GetByEmail("ana@sweetshop.test")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "sup3r-secreta", stored.PasswordHash,
		"el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("sup3r-secreta")),
		"el hash guardado debe validar contra el password original")
}

func TestRegister_EmailDuplicado_RetornaConflicto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	_, err := uc.Register(registerInput("ana@sweetshop.test"))
	require.NoError(t, err)

	_, err = uc.Register(registerInput("ana@sweetshop.test"))
	assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists),
		"registrar el mismo email dos veces debe fallar con ErrEmailAlreadyExists")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)
	_, err := uc.Register(registerInput("ana@sweetshop.test"))
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@sweetshop.test", Password: "sup3r-secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleUser, out.Role)
}

func TestLogin_EmailInexistente_RetornaUserNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@sweetshop.test", Password: "x"})
	assert.True(t, errors.Is(err, domain.ErrUserNotFound),
		"email desconocido debe distinguirse de password incorrecto")
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)
	_, err := uc.Register(registerInput("ana@sweetshop.test"))
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@sweetshop.test", Password: "otra-clave"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized),
		"password incorrecto debe retornar ErrUnauthorized")
}

// ──────────────────────────────────────────────────────────────────────────────
// Bootstrap de admins
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateFirstAdmin_SoloUnaVez(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	out, err := uc.CreateFirstAdmin(registerInput("admin@sweetshop.test"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.NotEmpty(t, out.Token, "el primer admin recibe token de sesión")

	_, err = uc.CreateFirstAdmin(registerInput("otro-admin@sweetshop.test"))
	assert.True(t, errors.Is(err, domain.ErrAdminAlreadyExists),
		"el bootstrap debe rechazarse si ya existe cualquier ADMIN")
}

func TestCreateFirstAdmin_BloqueadoPorAdminCreadoPorOtraVia(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	// Admin creado por otro admin, no por bootstrap.
	_, err := uc.CreateAdmin(registerInput("admin@sweetshop.test"))
	require.NoError(t, err)

	_, err = uc.CreateFirstAdmin(registerInput("bootstrap@sweetshop.test"))
	assert.True(t, errors.Is(err, domain.ErrAdminAlreadyExists),
		"cualquier ADMIN existente bloquea el bootstrap, sin importar su origen")
}

func TestCreateAdmin_NoEmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	out, err := uc.CreateAdmin(registerInput("admin2@sweetshop.test"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Empty(t, out.Token,
		"crear un admin desde otra sesión no debe emitir token para el nuevo admin")
}
