// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "scoring/internal/platform/net/http"
)

// Router is the platform router seam modules mount on
type Router = phttp.Router

// Module defines the minimal contract used by modkit
// keep this sibling to avoid import knots when a module also exports its own ports type
type Module interface {
	MountRoutes(r Router)
	Ports() any
	Name() string
}

// Endpoint describes one route a module serves, used by the api index
type Endpoint struct {
	Method      string `json:"method" example:"POST"`
	Path        string `json:"path" example:"/api/v1/scoring-analytics"`
	Description string `json:"description" example:"Aggregated company scores"`
}

// EndpointLister is implemented by port sets that can describe their routes
type EndpointLister interface {
	Endpoints() []Endpoint
}

// Endpoints collects the routes of every module whose ports describe them
func Endpoints(mods ...Module) []Endpoint {
	var out []Endpoint
	for _, m := range mods {
		if l, ok := PortsOf[EndpointLister](m); ok {
			out = append(out, l.Endpoints()...)
		}
	}
	return out
}
