package modkit

import (
	"scoring/internal/modkit/module"
)

// Module is the common surface for API modules that can mount routes and expose ports
// keep this tiny so modules stay decoupled
type Module = module.Module

// Builder constructs a Module from shared deps and options
// modules typically expose New(deps Deps, opts ...Option) Module and may delegate to this pattern
type Builder func(Deps, ...Option) Module

// MountAll mounts every module on r in order
func MountAll(r module.Router, mods ...Module) {
	for _, m := range mods {
		m.MountRoutes(r)
	}
}
