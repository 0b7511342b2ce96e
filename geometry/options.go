package geometry

// DefaultEpsilon is the tolerance used for point equality, ordering, orientation,
// and collinearity tests throughout the sweep-line engine when the caller does not
// supply an explicit options.WithEpsilon.
const DefaultEpsilon = 1e-5
