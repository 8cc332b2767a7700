package helpers

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes of its input.
const maxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password longer than 72 bytes")

// PasswordCost is the bcrypt cost of new hashes. Set from BCRYPT_COST at startup.
var PasswordCost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored hash. An empty hash
// never matches.
func VerifyPassword(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// SetPasswordCost clamps cost to the range bcrypt accepts.
func SetPasswordCost(cost int) {
	switch {
	case cost < bcrypt.MinCost:
		PasswordCost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		PasswordCost = bcrypt.MaxCost
	default:
		PasswordCost = cost
	}
}
