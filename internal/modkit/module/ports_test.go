package module

import (
	"testing"
)

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string       { return m.name }
func (m fakeModule) Ports() PortSet     { return m.ports }
func (m fakeModule) MountRoutes(Router) {}

type lister []Endpoint

func (l lister) Endpoints() []Endpoint { return l }

func TestPortsOf_NilPorts(t *testing.T) {
	t.Parallel()

	if _, ok := PortsOf[EndpointLister](fakeModule{name: "nil"}); ok {
		t.Fatalf("expected ok=false when Ports() is nil")
	}
}

func TestPortsOf_DirectAndStructField(t *testing.T) {
	t.Parallel()

	direct := fakeModule{name: "direct", ports: lister{{Method: "GET", Path: "/a"}}}
	if l, ok := PortsOf[EndpointLister](direct); !ok || len(l.Endpoints()) != 1 {
		t.Fatalf("direct match failed: ok=%v", ok)
	}

	type bundle struct {
		Routes EndpointLister
		hidden EndpointLister
		N      int
	}
	nested := fakeModule{name: "nested", ports: bundle{Routes: lister{{Path: "/b"}}}}
	if l, ok := PortsOf[EndpointLister](nested); !ok || l.Endpoints()[0].Path != "/b" {
		t.Fatalf("struct field match failed: ok=%v", ok)
	}

	onlyHidden := fakeModule{name: "hidden", ports: bundle{hidden: lister{{Path: "/c"}}}}
	if _, ok := PortsOf[EndpointLister](onlyHidden); ok {
		t.Fatalf("unexported field must not match")
	}
}

func TestMustPortsOf_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = MustPortsOf[EndpointLister](fakeModule{name: "none", ports: 1})
}

func TestEndpoints_Collects(t *testing.T) {
	t.Parallel()

	got := Endpoints(
		fakeModule{ports: lister{{Method: "POST", Path: "/api/v1/scoring-analytics"}}},
		fakeModule{ports: 42},
		fakeModule{ports: lister{{Method: "GET", Path: "/api/v1/daily-analytics"}}},
	)
	if len(got) != 2 || got[1].Path != "/api/v1/daily-analytics" {
		t.Fatalf("Endpoints = %+v", got)
	}
}
