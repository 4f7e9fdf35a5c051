package method

import "fmt"

// Config is an ordered property-to-specification map. Keys must be declared
// before a specification can be assigned; a declared key with a nil Spec is
// "declared but unset", which is distinct from an unknown key.
type Config struct {
	order []string
	specs map[string]*Spec
}

// NewConfig creates a Config with the given keys pre-declared.
func NewConfig(declare ...string) *Config {
	c := &Config{specs: make(map[string]*Spec)}
	c.Declare(declare...)
	return c
}

// Declare adds configuration keys to the schema. Re-declaring an existing
// key is a no-op.
func (c *Config) Declare(names ...string) {
	for _, n := range names {
		if _, ok := c.specs[n]; ok {
			continue
		}
		c.specs[n] = nil
		c.order = append(c.order, n)
	}
}

// Set assigns a specification to a declared key.
func (c *Config) Set(name string, s *Spec) error {
	if _, ok := c.specs[name]; !ok {
		return fmt.Errorf("cannot set undeclared configuration option %q", name)
	}
	c.specs[name] = s
	return nil
}

// Option returns the specification for a key and whether the key is part of
// the schema at all.
func (c *Config) Option(name string) (*Spec, bool) {
	s, ok := c.specs[name]
	return s, ok
}

// Declared returns the declared keys in declaration order.
func (c *Config) Declared() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
