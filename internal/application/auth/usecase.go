package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/sweetshop-api/internal/application/dto"
	"github.com/jcastellanos/sweetshop-api/internal/domain"
	"github.com/jcastellanos/sweetshop-api/internal/domain/entity"
	"github.com/jcastellanos/sweetshop-api/internal/domain/repository"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TokenGenerator genera el token de sesión; se inyecta para poder fijarlo en tests.
type TokenGenerator func(secret, userID, email, role, issuer string, expMinutes int) (string, error)

// AuthUseCase casos de uso de autenticación: registro, login y creación de admins.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	genToken TokenGenerator
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, genToken TokenGenerator) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, genToken: genToken}
}

// Register crea una cuenta USER: hashea el password con bcrypt, persiste y
// emite token. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	return uc.createAccount(in, entity.RoleUser, true, "registro exitoso")
}

// Login verifica email/password y emite un token nuevo.
// Devuelve ErrUserNotFound si el email no existe y ErrUnauthorized si el
// password no coincide; el handler traduce cada uno a su propio mensaje.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.genToken(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	resp := toAuthResponse(user, token, "inicio de sesión exitoso")
	return resp, nil
}

// CreateFirstAdmin crea la cuenta ADMIN de bootstrap. Solo procede si no
// existe ningún ADMIN (consulta EXISTS indexada, no un scan de usuarios).
// La ruta es pública a propósito; desplegar implica deshabilitarla tras el
// primer uso.
func (uc *AuthUseCase) CreateFirstAdmin(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := uc.userRepo.AdminExists()
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAdminAlreadyExists
	}
	return uc.createAccount(in, entity.RoleAdmin, true, "primer admin creado exitosamente")
}

// CreateAdmin crea una cuenta ADMIN a pedido de otro admin. No emite token:
// quien llama ya tiene sesión propia.
func (uc *AuthUseCase) CreateAdmin(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	return uc.createAccount(in, entity.RoleAdmin, false, "admin creado exitosamente")
}

func (uc *AuthUseCase) createAccount(in dto.RegisterRequest, role string, withToken bool, message string) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token := ""
	if withToken {
		token, err = uc.genToken(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
	}
	return toAuthResponse(user, token, message), nil
}

func toAuthResponse(u *entity.User, token, message string) *dto.AuthResponse {
	return &dto.AuthResponse{
		UserID:    u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
		Role:      u.Role,
		Token:     token,
		Message:   message,
	}
}
