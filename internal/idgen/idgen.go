// Package idgen generates record identifiers of the form "<prefix><random>".
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is lowercase so identifiers stay readable in keys and URLs.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Length gives roughly 110 bits of randomness with Alphabet.
const Length = 21

// Generator produces unique record identifiers.
type Generator interface {
	New(prefix string) (string, error)
}

// NanoID is the production Generator.
type NanoID struct{}

func (NanoID) New(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}

// Func adapts a plain function to Generator.
type Func func(prefix string) (string, error)

func (f Func) New(prefix string) (string, error) {
	return f(prefix)
}
