package auth

// PasswordHasher abstrae el hash de passwords (bcrypt en producción).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Matches(hash, plain string) bool
}
