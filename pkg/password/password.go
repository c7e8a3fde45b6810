package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash хеширует пароль bcrypt-ом со случайной солью
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify сравнивает хеш с паролем за константное время
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
