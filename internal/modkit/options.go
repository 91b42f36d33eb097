package modkit

// Option mutates build configuration for a module
type Option func(*buildCfg)

type buildCfg struct {
	name   string
	prefix string
	ports  any
}

// WithName sets a module name used in logs and the api index
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts a module under a path prefix relative to /api/v1
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithPorts replaces the port set a module exposes, typically with a fake in tests
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}
