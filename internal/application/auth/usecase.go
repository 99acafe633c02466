package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
	"github.com/matimeline/eventmanager-api/pkg/token"
)

// AuthUseCase casos de uso de sesión: registro, login, refresh y whoami.
// Orquesta el repositorio de usuarios (credential store) y el servicio de
// tokens; la cookie la maneja el handler.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	hasher   PasswordHasher
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens *token.Service, hasher PasswordHasher) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, hasher: hasher}
}

// Register crea un usuario: hashea el password y persiste con rol "user".
// Devuelve ErrDuplicateUser si el username ya existe. El password en texto
// jamás se loggea ni se devuelve.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUser
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &model.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: hash,
		Role:         model.RoleUser,
		Email:        in.Email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica username/password y emite un token firmado.
// Usuario inexistente y password incorrecto devuelven el mismo
// ErrInvalidCredentials: la respuesta no revela si el username existía.
func (uc *AuthUseCase) Login(in dto.LoginRequest, now time.Time) (string, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}
	if err := uc.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return uc.tokens.Issue(user.Username, user.Role, now)
}

// Refresh re-deriva la identidad desde un token con firma válida (expirado
// como máximo dentro de la ventana de gracia) y emite un token nuevo.
// El sujeto extraído no es prueba de identidad: el usuario debe seguir
// existiendo en la base. Usuario borrado devuelve ErrUnauthorized (401),
// no un not-found: refresh no revela si el sujeto alguna vez existió.
func (uc *AuthUseCase) Refresh(raw string, now time.Time) (string, error) {
	subject, err := uc.tokens.Refreshable(raw, now)
	if err != nil {
		return "", err
	}
	user, err := uc.userRepo.FindByUsername(subject)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUnauthorized
	}
	return uc.tokens.Issue(user.Username, user.Role, now)
}

// WhoAmI exige un token vigente (firma + expiración) y devuelve el usuario.
func (uc *AuthUseCase) WhoAmI(raw string, now time.Time) (*dto.UserResponse, error) {
	id, err := uc.tokens.Verify(raw, now)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.FindByUsername(id.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// TokenTTL expone la vida del token para que el handler fije el Max-Age de la cookie.
func (uc *AuthUseCase) TokenTTL() time.Duration {
	return uc.tokens.TTL()
}

// ToUserResponse proyecta el usuario sin el password hash.
func ToUserResponse(u *model.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Role:      u.Role,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
