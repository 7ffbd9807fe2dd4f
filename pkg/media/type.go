package media

import (
	"fmt"
	"strings"
)

// Type is the kind of media a record describes
type Type int

const (
	Movie Type = iota
	TV
)

// Types lists every media type in a fixed order
var Types = []Type{Movie, TV}

var typeNames = map[Type]string{
	Movie: "movie",
	TV:    "tv",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// Valid reports whether t is one of the known media types
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType converts "movie" or "tv" (any casing) into a Type
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "m":
		return Movie, nil
	case "tv", "show", "shows", "t":
		return TV, nil
	}

	return Movie, fmt.Errorf("unknown media type %q", s)
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown media type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
