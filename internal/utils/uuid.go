// Package utils holds small helpers shared by the service layer.
package utils

import "github.com/google/uuid"

// IDGenerator allocates identifiers for users, notebooks and notes.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator returns time-ordered UUIDv7 strings, so ids sort roughly by
// creation time.
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
