// Package password encapsula el hash de contraseñas (bcrypt). El resto del código
// solo conoce Hash y Verify.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmpty se devuelve al intentar hashear una contraseña vacía.
var ErrEmpty = errors.New("password: contraseña vacía")

// Hash genera el hash bcrypt de la contraseña en claro.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(h), nil
}

// Verify informa si plain corresponde al hash almacenado.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
