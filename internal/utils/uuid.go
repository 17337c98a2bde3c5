package utils

import "github.com/google/uuid"

// UUIDGenerator produces record identifiers. UUIDv7 keeps ids time-ordered,
// which makes the persisted collection naturally sorted by creation.
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
