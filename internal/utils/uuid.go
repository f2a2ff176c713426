package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers. Records created later
// receive lexicographically greater ids, which the store relies on as a
// tie-breaker when ordering by creation time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether s is a well-formed identifier.
func IsValidID(s string) bool {
	return uuid.Validate(s) == nil
}
