package pet

import (
	"errors"
	"fmt"
)

// Error kinds returned by the domain. Callers test them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrUnknownItem     = errors.New("unknown item")
	ErrUnknownCreature = errors.New("unknown creature")
)

// unknownName builds an ErrUnknownItem/ErrUnknownCreature error with a
// "did you mean" hint when a close candidate exists.
func unknownName(kind error, name string, candidates []string) error {
	if hint := Suggest(name, candidates); hint != "" {
		return fmt.Errorf("pet: %w %q (did you mean %q?)", kind, name, hint)
	}
	return fmt.Errorf("pet: %w %q", kind, name)
}
