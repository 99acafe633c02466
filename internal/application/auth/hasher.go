package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher capacidad de hash unidireccional + verificación.
// El algoritmo concreto es intercambiable; el resto del sistema solo ve
// este puerto.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher implementación por defecto sobre bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher con el costo por defecto de bcrypt.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash genera el hash bcrypt del password en texto.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare verifica plain contra el hash almacenado. Error = no coincide.
func (h *BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
