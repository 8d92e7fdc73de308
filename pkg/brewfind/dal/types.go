package dal

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownType is returned when a brewery type filter is not one of the
// values the directory understands.
var ErrUnknownType = errors.New("unknown brewery type")

// BreweryType is the directory's classification of a brewery. The zero value
// means no type filter.
type BreweryType string

const (
	TypeAny        BreweryType = ""
	TypeMicro      BreweryType = "micro"
	TypeNano       BreweryType = "nano"
	TypeRegional   BreweryType = "regional"
	TypeBrewpub    BreweryType = "brewpub"
	TypeLarge      BreweryType = "large"
	TypePlanning   BreweryType = "planning"
	TypeContract   BreweryType = "contract"
	TypeProprietor BreweryType = "proprietor"
	TypeClosed     BreweryType = "closed"
)

// BreweryTypes lists the filterable types in the order they are offered to users.
var BreweryTypes = []BreweryType{
	TypeMicro,
	TypeNano,
	TypeRegional,
	TypeBrewpub,
	TypeLarge,
	TypePlanning,
	TypeContract,
	TypeProprietor,
	TypeClosed,
}

// ParseBreweryType normalizes s and checks it against the known types.
// Blank input yields TypeAny.
func ParseBreweryType(s string) (BreweryType, error) {
	normalized := BreweryType(strings.ToLower(strings.TrimSpace(s)))
	if normalized == TypeAny {
		return TypeAny, nil
	}
	for _, t := range BreweryTypes {
		if t == normalized {
			return t, nil
		}
	}
	return TypeAny, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Label returns the human readable name of the type.
func (t BreweryType) Label() string {
	if t == TypeAny {
		return "All Types"
	}
	// Casers are stateful, so one is built per call.
	return cases.Title(language.English).String(string(t))
}

func (t BreweryType) String() string {
	return string(t)
}
