package ddp

import "fmt"

// IntegrationMode selects how a solver searches the choice space.
type IntegrationMode int

const (
	// All searches every choice dimension jointly. Required when choices
	// interact through non-separable costs.
	All IntegrationMode = iota
	// Separable optimizes each choice dimension on its own.
	Separable
)

func (m IntegrationMode) String() string {
	switch m {
	case All:
		return "all"
	case Separable:
		return "separable"
	default:
		return fmt.Sprintf("IntegrationMode(%d)", int(m))
	}
}

// ParseIntegrationMode is the inverse of String.
func ParseIntegrationMode(s string) (IntegrationMode, error) {
	switch s {
	case "all":
		return All, nil
	case "separable":
		return Separable, nil
	}
	return 0, fmt.Errorf("unknown integration mode %q", s)
}
