package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingName is returned when the first or last name is blank after trimming
var ErrMissingName = errors.New("both first and last name are required")

// Greeting holds a validated, trimmed name pair
type Greeting struct {
	First string
	Last  string
}

// NewGreeting trims both names and rejects empty or whitespace-only input
func NewGreeting(first, last string) (Greeting, error) {
	g := Greeting{
		First: strings.TrimSpace(first),
		Last:  strings.TrimSpace(last),
	}

	if g.First == "" || g.Last == "" {
		return Greeting{}, ErrMissingName
	}

	return g, nil
}

// Message returns the text shown in the greeting dialog
func (g Greeting) Message() string {
	return fmt.Sprintf("Hello, %s %s!", g.First, g.Last)
}
