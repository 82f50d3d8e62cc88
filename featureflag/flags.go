package featureflag

type Flag string

const (
	// FlagDisableAutoExpand keeps the world bounds fixed: content
	// landing outside them stays addressable only through root-level
	// storage.
	FlagDisableAutoExpand Flag = "DISABLE_AUTO_EXPAND"

	// FlagUseHashGrid swaps the stress driver's broad phase from the
	// quadtree manager to the hash grid.
	FlagUseHashGrid Flag = "USE_HASH_GRID"

	// FlagDisableQueries runs the stress driver without the per-frame
	// query pass, isolating mutation cost.
	FlagDisableQueries Flag = "DISABLE_QUERIES"
)
