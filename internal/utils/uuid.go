package utils

import "github.com/google/uuid"

// UUIDGenerator produces user identifiers. Version 7 UUIDs are preferred:
// they are time-ordered, which keeps b-tree index writes on user_id local.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random v4 if the
// system clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
