package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/matimeline/eventmanager-api/internal/application/auth"
	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
	"github.com/matimeline/eventmanager-api/pkg/token"
)

type memUserRepo struct {
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*model.User{}}
}

func (r *memUserRepo) Create(user *model.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(user *model.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) ExistsByID(id string) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

const sessionTTL = 48 * time.Hour

func newAuthUC(repo *memUserRepo) (*auth.AuthUseCase, *token.Service) {
	tokens := token.New("secret-de-test", sessionTTL, time.Hour, "eventmanager-test")
	return auth.NewAuthUseCase(repo, tokens, auth.NewBcryptHasher()), tokens
}

func registerAna(t *testing.T, uc *auth.AuthUseCase) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		Name: "Ana", Username: "ana", Password: "secreta123", Email: "ana@example.com",
	})
	require.NoError(t, err)
	return out
}

// Caso 1: el registro persiste el hash, nunca el password en texto, y asigna
// rol user.
func TestRegister_HasheaElPassword(t *testing.T) {
	repo := newMemUserRepo()
	uc, _ := newAuthUC(repo)

	out := registerAna(t, uc)
	assert.Equal(t, model.RoleUser, out.Role)

	stored, err := repo.FindByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")),
		"el hash almacenado debe verificar contra el password original")
}

// Caso 2: username repetido → ErrDuplicateUser.
func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := newAuthUC(newMemUserRepo())
	registerAna(t, uc)

	_, err := uc.Register(dto.RegisterRequest{
		Name: "Otra", Username: "ana", Password: "otra-clave", Email: "otra@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
}

// Caso 3: el login emite un token cuyo sujeto es el username.
func TestLogin_EmiteTokenDelUsuario(t *testing.T) {
	uc, tokens := newAuthUC(newMemUserRepo())
	registerAna(t, uc)

	now := time.Now()
	raw, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta123"}, now)
	require.NoError(t, err)

	id, err := tokens.Verify(raw, now)
	require.NoError(t, err)
	assert.Equal(t, "ana", id.Subject)
	assert.Equal(t, model.RoleUser, id.Role)
}

// Caso 4: usuario inexistente y password incorrecto devuelven exactamente el
// mismo error: la respuesta no revela si el username existía.
func TestLogin_ErrorUniforme(t *testing.T) {
	uc, _ := newAuthUC(newMemUserRepo())
	registerAna(t, uc)

	_, errBadPass := uc.Login(dto.LoginRequest{Username: "ana", Password: "incorrecta"}, time.Now())
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreta123"}, time.Now())

	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errBadPass, errNoUser)
}

// Caso 5: el refresh exige que el usuario del token siga existiendo.
func TestRefresh_UsuarioBorrado(t *testing.T) {
	repo := newMemUserRepo()
	uc, tokens := newAuthUC(repo)
	out := registerAna(t, uc)

	now := time.Now()
	raw, err := tokens.Issue("ana", model.RoleUser, now)
	require.NoError(t, err)

	// Con el usuario vivo el refresh funciona incluso con token vigente.
	fresh, err := uc.Refresh(raw, now)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh)

	// Usuario borrado: mismo 401 que cualquier otra sesión inválida, el
	// refresh no distingue "existió y ya no" de "nunca existió".
	require.NoError(t, repo.Delete(out.ID))
	_, err = uc.Refresh(raw, now)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 6: WhoAmI rechaza tokens expirados aunque estén en ventana de refresh.
func TestWhoAmI_TokenExpirado(t *testing.T) {
	uc, tokens := newAuthUC(newMemUserRepo())
	registerAna(t, uc)

	issuedAt := time.Now().Add(-sessionTTL - time.Minute)
	expired, err := tokens.Issue("ana", model.RoleUser, issuedAt)
	require.NoError(t, err)

	_, err = uc.WhoAmI(expired, time.Now())
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}
