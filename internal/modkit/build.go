package modkit

import (
	"scoring/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Ports  any
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct.
// Later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{Name: c.name, Prefix: c.prefix, Ports: c.ports}
}

// Mount registers fn under b.Prefix, or in a group when the prefix is empty
func (b Built) Mount(r httpkit.Router, fn func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, nil, fn)
}
