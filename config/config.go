// Package config centralizes the tunable parameters accepted by
// orchestrator.SuperimposeTopologies behind a functional-options API, the
// same shape the teacher's builder package uses to configure graph
// constructors (BuilderOption/builderConfig): a Config struct holding
// every tunable, an Option func(*Config) mutating it, and a New applying
// defaults before the supplied options run in order.
package config

import "go.uber.org/zap"

// Pair names a (left name, right name) atom pairing that must never be
// proposed as a match, regardless of type compatibility.
type Pair struct {
	Left, Right string
}

// NodePair seeds the search at a specific (left, right) atom-name pair.
// A non-empty StartingNodePairs list replaces the rarity heuristic
// entirely.
type NodePair struct {
	Left, Right string
}

// Config holds every tunable recognized by SuperimposeTopologies (spec §6).
type Config struct {
	PairChargeAtol float64
	UseCharges     bool
	UseCoords      bool

	StartingNodePairs        []NodePair
	StartingPairsHeuristics  bool
	ForceMismatch            []Pair

	DisjointComponents bool

	NetChargeFilter    bool
	NetChargeThreshold float64

	RedistributeChargesOverUnmatched bool
	PartialRingsAllowed              bool
	IgnoreChargesCompletely          bool
	IgnoreBondTypes                  bool

	AlignMolecules   bool
	LeftCoordsAreRef bool

	UseGeneralType bool
	UseOnlyElement bool

	CheckAtomNamesUnique bool

	Logger *zap.SugaredLogger
}

// Option mutates a Config during New. Option constructors never panic and
// do not validate: each stores its argument as given, except WithLogger,
// which ignores a nil logger.
type Option func(cfg *Config)

// New returns a Config initialized with spec §6's defaults, then applies
// each option in order; later options override earlier ones.
func New(opts ...Option) Config {
	cfg := Config{
		PairChargeAtol:                    0.1,
		UseCharges:                        true,
		UseCoords:                         true,
		StartingPairsHeuristics:           true,
		DisjointComponents:                true,
		NetChargeFilter:                   true,
		NetChargeThreshold:                0.1,
		RedistributeChargesOverUnmatched:  true,
		PartialRingsAllowed:               true,
		IgnoreChargesCompletely:           false,
		IgnoreBondTypes:                   true,
		AlignMolecules:                    true,
		LeftCoordsAreRef:                  true,
		UseGeneralType:                    true,
		UseOnlyElement:                    false,
		CheckAtomNamesUnique:              true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPairChargeAtol sets the per-pair |Δq| tolerance used by
// refine_against_charges.
func WithPairChargeAtol(atol float64) Option {
	return func(cfg *Config) { cfg.PairChargeAtol = atol }
}

// WithUseCharges toggles the charge-refinement post-filter.
func WithUseCharges(use bool) Option {
	return func(cfg *Config) { cfg.UseCharges = use }
}

// WithUseCoords sets Config.UseCoords. No stage of SuperimposeTopologies
// reads the field: mirror and alternative-mapping ranking always uses
// coordinates (RMSD after Kabsch alignment), whatever its value.
func WithUseCoords(use bool) Option {
	return func(cfg *Config) { cfg.UseCoords = use }
}

// WithStartingNodePairs supplies an explicit seed list, bypassing the
// rarity heuristic entirely.
func WithStartingNodePairs(pairs []NodePair) Option {
	return func(cfg *Config) { cfg.StartingNodePairs = pairs }
}

// WithStartingPairsHeuristics toggles the rarity-based seed-selection
// heuristic; false falls back to the full Cartesian product of L x R.
func WithStartingPairsHeuristics(enabled bool) Option {
	return func(cfg *Config) { cfg.StartingPairsHeuristics = enabled }
}

// WithForceMismatch supplies atom-name pairs that must never be matched.
func WithForceMismatch(pairs []Pair) Option {
	return func(cfg *Config) { cfg.ForceMismatch = pairs }
}

// WithDisjointComponents toggles whether disconnected mapping components
// survive the largest-connected-component filter.
func WithDisjointComponents(allow bool) Option {
	return func(cfg *Config) { cfg.DisjointComponents = allow }
}

// WithNetChargeFilter toggles the net-charge-balancing post-filter.
func WithNetChargeFilter(enabled bool) Option {
	return func(cfg *Config) { cfg.NetChargeFilter = enabled }
}

// WithNetChargeThreshold sets the |net charge| threshold used by the
// net-charge-balancing post-filter.
func WithNetChargeThreshold(threshold float64) Option {
	return func(cfg *Config) { cfg.NetChargeThreshold = threshold }
}

// WithRedistributeChargesOverUnmatched toggles charge redistribution
// across unmatched atoms on the sole surviving ST.
func WithRedistributeChargesOverUnmatched(enabled bool) Option {
	return func(cfg *Config) { cfg.RedistributeChargesOverUnmatched = enabled }
}

// WithPartialRingsAllowed toggles the enforce-no-partial-rings filter.
func WithPartialRingsAllowed(allowed bool) Option {
	return func(cfg *Config) { cfg.PartialRingsAllowed = allowed }
}

// WithIgnoreChargesCompletely skips all charge-based logic when true.
func WithIgnoreChargesCompletely(ignore bool) Option {
	return func(cfg *Config) { cfg.IgnoreChargesCompletely = ignore }
}

// WithIgnoreBondTypes sets the IgnoreBondTypes flag copied onto every
// SuperimposedTopology. The flag governs
// SuperimposedTopology.RemovePairsWithDifferentBonds, which
// SuperimposeTopologies itself does not call.
func WithIgnoreBondTypes(ignore bool) Option {
	return func(cfg *Config) { cfg.IgnoreBondTypes = ignore }
}

// WithAlignMolecules toggles both Kabsch alignment passes of the
// post-filter cascade: the initial one on the largest ST and the final
// coordinate-overwriting one.
func WithAlignMolecules(align bool) Option {
	return func(cfg *Config) { cfg.AlignMolecules = align }
}

// WithLeftCoordsAreRef selects which side's coordinates are treated as
// the fixed reference frame during alignment.
func WithLeftCoordsAreRef(leftIsRef bool) Option {
	return func(cfg *Config) { cfg.LeftCoordsAreRef = leftIsRef }
}

// WithUseGeneralType toggles element-level (vs. exact-type) equality
// during the search phase.
func WithUseGeneralType(useGeneral bool) Option {
	return func(cfg *Config) { cfg.UseGeneralType = useGeneral }
}

// WithUseOnlyElement, if true, skips the exact-type tightening post-filter
// entirely, leaving element-level matches as final.
func WithUseOnlyElement(onlyElement bool) Option {
	return func(cfg *Config) { cfg.UseOnlyElement = onlyElement }
}

// WithCheckAtomNamesUnique toggles the eager L-name/R-name disjointness
// validation performed before search begins.
func WithCheckAtomNamesUnique(check bool) Option {
	return func(cfg *Config) { cfg.CheckAtomNamesUnique = check }
}

// WithLogger injects a *zap.SugaredLogger for cascade narration. A nil
// logger is a no-op, leaving the default no-op logger in place.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}
