package boruvka

import (
	"context"
	"math"

	"github.com/katalvlaran/mrmst/coredist"
	"github.com/katalvlaran/mrmst/distance"
	"github.com/katalvlaran/mrmst/treeview"
	"github.com/katalvlaran/mrmst/unionfind"
)

// Driver runs the dual-tree Borůvka sweep loop over one TreeView. It is
// single-use: construct with NewDriver and call SpanningTree exactly once.
type Driver struct {
	tv     treeview.TreeView
	oracle distance.Oracle
	cfg    Config
	kind   treeview.Kind

	uf *unionfind.UnionFind

	pointComponent []int
	nodeComponent  []int64
	sentinelCounter int64

	coreDistance []float64

	candPoint    []int
	candNeighbor []int
	candDistance []float64

	bounds []float64

	centroids *treeview.CentroidTable // Ball-tree runs only

	edges    []Edge
	numEdges int

	degenerate *NumericDegeneracyError

	// lowerBound and pairDist are resolved once, here, to the KD or Ball
	// variant; traverse() calls them without ever branching on d.kind
	// itself.
	lowerBound func(a, b int) float64
	pairDist   func(p, q int) float64
}

// NewDriver validates cfg and tv, runs the bulk core-distance pass, seeds
// the initial candidate edges, and returns a Driver ready for its one
// SpanningTree call.
func NewDriver(tv treeview.TreeView, oracle distance.Oracle, opts ...Option) (*Driver, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := treeview.Validate(tv); err != nil {
		return nil, err
	}
	n := tv.N()
	if n == 0 {
		return nil, ErrEmptyTree
	}

	seed, err := coredist.Initialize(tv, coredist.Config{MinSamples: cfg.MinSamples, NJobs: cfg.NJobs})
	if err != nil {
		return nil, err
	}

	kind := tv.Kind()
	if kind == treeview.KD {
		coredist.ConvertToRDist(seed.CoreDistance, oracle.DistToRDist)
		coredist.ConvertToRDist(seed.CandidateDistance, oracle.DistToRDist)
	}

	uf, err := unionfind.New(n)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		tv:             tv,
		oracle:         oracle,
		cfg:            cfg,
		kind:           kind,
		uf:             uf,
		pointComponent: make([]int, n),
		nodeComponent:  make([]int64, tv.M()),
		coreDistance:   seed.CoreDistance,
		candPoint:      seed.CandidatePoint,
		candNeighbor:   seed.CandidateNeighbor,
		candDistance:   seed.CandidateDistance,
		bounds:         newBoundsState(tv.M()),
		edges:          make([]Edge, 0, n-1),
	}

	if kind == treeview.Ball {
		ct, err := treeview.BuildCentroidTable(tv, oracle)
		if err != nil {
			return nil, err
		}
		d.centroids = ct
		d.lowerBound = func(a, b int) float64 {
			return treeview.BallBound(tv, a, b, ct.Get(a, b))
		}
		d.pairDist = func(p, q int) float64 {
			return oracle.Dist(d.point(p), d.point(q))
		}
	} else {
		p := oracle.P()
		d.lowerBound = func(a, b int) float64 {
			return treeview.KDBound(tv, a, b, p)
		}
		d.pairDist = func(p, q int) float64 {
			return oracle.RDist(d.point(p), d.point(q))
		}
	}

	d.recomputeComponents()

	return d, nil
}

func (d *Driver) point(p int) []float64 {
	nf := d.tv.NumFeatures()
	raw := d.tv.RawData()

	return raw[p*nf : p*nf+nf]
}

// SpanningTree runs sweeps until every point belongs to one component,
// returning the N-1 edges found. ctx is checked once per sweep, not per
// node pair; a cancellation lands at the start of the next sweep.
func (d *Driver) SpanningTree(ctx context.Context) ([]Edge, error) {
	if d.tv.N() == 1 {
		return []Edge{}, nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		d.traverse(0, 0)
		if d.degenerate != nil {
			return nil, d.degenerate
		}

		merged, done := d.drainCandidates()
		if done {
			return append([]Edge(nil), d.edges...), nil
		}
		if !merged && !d.cfg.ApproxMinSpanTree {
			return nil, ErrUnreachable
		}

		d.recomputeComponents()
		d.resetBounds(merged)
		d.resetCandidates()
	}
}

// drainCandidates applies every currently-root component's winning
// candidate edge, in union-find component order. A pair whose endpoints
// already share a root (joined earlier in this same drain) is invalidated
// instead of re-applied. Returns whether any merge happened this sweep,
// and whether the tree is now complete.
func (d *Driver) drainCandidates() (merged bool, done bool) {
	for _, c := range d.uf.Components() {
		s, t := d.candPoint[c], d.candNeighbor[c]
		if s == -1 || t == -1 {
			continue
		}
		if d.uf.Find(s) == d.uf.Find(t) {
			d.candPoint[c] = -1
			d.candNeighbor[c] = -1
			d.candDistance[c] = math.Inf(1)

			continue
		}

		w := d.candDistance[c]
		if d.kind == treeview.KD {
			w = d.oracle.RDistToDist(w)
		}

		d.edges = append(d.edges, Edge{Source: s, Sink: t, Weight: w})
		d.numEdges++
		d.uf.Union(s, t)
		merged = true

		if d.numEdges == d.tv.N()-1 {
			return merged, true
		}
	}

	return merged, false
}
