package tennet

// Candidate describes a potential pairwise merge considered by the greedy
// engine when picking the next contraction.
type Candidate struct {
	Left       int // id of the first live tensor (always the lower id)
	Right      int // id of the second live tensor
	Shared     int // pending positive labels the merge would contract
	ResultSize int // element count of the merged tensor
}

// CostFunc ranks candidate merges: it reports whether a should be chosen
// over b. The engine evaluates candidates in ascending (Left, Right) order,
// so the plan stays deterministic even under a ranking with ties.
type CostFunc func(a, b Candidate) bool

// defaultCost prefers the pair eliminating the most axes per step, then the
// smaller merged tensor, then the lowest id pair.
func defaultCost(a, b Candidate) bool {
	if a.Shared != b.Shared {
		return a.Shared > b.Shared
	}
	if a.ResultSize != b.ResultSize {
		return a.ResultSize < b.ResultSize
	}
	if a.Left != b.Left {
		return a.Left < b.Left
	}
	return a.Right < b.Right
}

type options struct {
	outerProduct bool
	cost         CostFunc
}

// Option configures the contraction engine.
type Option func(*options)

// WithOuterProduct makes the engine resolve disconnected components by
// merging them as explicit outer products, lowest id pair first, instead of
// failing with ErrDisconnectedNetwork.
func WithOuterProduct() Option {
	return func(o *options) { o.outerProduct = true }
}

// WithCostFunc replaces the default greedy pair-selection policy. The merge
// and permutation machinery is unaffected; only the order of merges changes.
func WithCostFunc(f CostFunc) Option {
	return func(o *options) { o.cost = f }
}

func applyOptions(opts []Option) options {
	o := options{cost: defaultCost}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
