package gridgraph

import "fmt"

// Defaults (single source of truth).
const (
	// DefaultLandThreshold: values ≥ 1 are land.
	DefaultLandThreshold = 1

	// DefaultConnectivity is orthogonal adjacency.
	DefaultConnectivity = Conn4
)

const panicConnInvalid = "gridgraph: WithConnectivity: connectivity must be Conn4 or Conn8"

// options is the resolved configuration of a GridGraph.
type options struct {
	landThreshold int
	conn          Connectivity
}

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

// WithLandThreshold sets the minimum cell value considered land.
func WithLandThreshold(n int) Option {
	return func(o *options) { o.landThreshold = n }
}

// WithConnectivity selects Conn4 or Conn8 adjacency.
// Panics on any other value.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic(fmt.Sprintf("%s (got %d)", panicConnInvalid, int(c)))
	}
	return func(o *options) { o.conn = c }
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) options {
	o := options{
		landThreshold: DefaultLandThreshold,
		conn:          DefaultConnectivity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
