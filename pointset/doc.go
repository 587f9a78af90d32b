// Package pointset answers nearest-neighbor queries over points in the plane.
//
// NaivePointSet scans every point and serves as the reference answer.
// KDTree is a 2-d tree that splits on x at even depths and on y at odd
// depths. Points whose splitting key equals the node's go right, and exact
// duplicates are stored once. A query descends the side containing the
// target first and visits the other side only when the splitting line is
// closer than the best point found so far.
//
// Complexity:
//
//   - NaivePointSet.Nearest: O(N).
//   - KDTree.Insert:         O(log N) expected, O(N) worst case.
//   - KDTree.Nearest:        O(log N) expected on well-spread points.
//
// Errors:
//
//   - ErrEmptySet: Nearest was called on a set with no points.
package pointset
