package rootfind

// Config holds Newton iteration settings.
type Config struct {
	// Tolerance is the max-norm residual below which the iterate is accepted.
	Tolerance float64 `yaml:"tolerance" json:"tolerance"`

	// MaxIterations caps Newton steps before giving up.
	MaxIterations int `yaml:"max_iterations" json:"max_iterations"`

	// Damping scales every Newton step. 1 is the undamped method.
	Damping float64 `yaml:"damping" json:"damping"`

	// Step is the finite-difference step for the Jacobian. Zero lets gonum pick.
	Step float64 `yaml:"step" json:"step"`
}

// DefaultConfig is tight enough that repeated solves agree to the last bit.
var DefaultConfig = Config{
	Tolerance:     1e-10,
	MaxIterations: 100,
	Damping:       1,
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.Tolerance <= 0 {
		c.Tolerance = DefaultConfig.Tolerance
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = DefaultConfig.MaxIterations
	}
	if c.Damping <= 0 || c.Damping > 1 {
		c.Damping = DefaultConfig.Damping
	}
	return c
}
