package version

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
// Pre-release versions sort before the release they precede.
func (v Version) Compare(other Version) int {
	return v.sv.Compare(&other.sv)
}

// Compare orders a and b; it has the shape check.CompareFunc expects.
func Compare(a, b Version) int {
	return a.Compare(b)
}
