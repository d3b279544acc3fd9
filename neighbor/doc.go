// Package neighbor implements a linked-cell spatial index for point
// particles in a periodic cubic box. It finds, for every particle, the
// other particles within a cutoff radius under the minimum-image
// convention and caches the symmetric adjacency for reuse across
// simulation steps; rebuilds are amortized by a skin radius that
// tolerates some particle drift between them.
package neighbor
