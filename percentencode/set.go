package percentencode

// Set is a code-point predicate, the URL Standard's "percent-encode set".
// Logically it is the pair (explicit members, threshold): a code point c is a
// member iff c is in the explicit members, or ord(c) is greater than the
// threshold. Membership above the threshold is unconditional, which is what
// lets Union/Intersect combine thresholds pessimistically instead of
// recomputing membership for every code point above it.
//
// Set values are immutable; every mutating-looking method (Add, Sub, Union,
// Intersect) returns a new Set.
type Set struct {
	members   map[rune]struct{}
	threshold rune
}

// Contains reports whether c is a member of the set: either explicitly listed,
// or greater than the set's threshold.
func (s Set) Contains(c rune) (ok bool) {
	if c > s.threshold {
		return true
	}

	_, ok = s.members[c]

	return
}

// Add returns a new Set that is the union of s with the given explicit
// characters. The threshold is unchanged.
func (s Set) Add(chars ...rune) (out Set) {
	out = Set{
		members:   make(map[rune]struct{}, len(s.members)+len(chars)),
		threshold: s.threshold,
	}

	for c := range s.members {
		out.members[c] = struct{}{}
	}

	for _, c := range chars {
		out.members[c] = struct{}{}
	}

	return
}

// Sub returns a new Set with the given explicit characters removed from the
// explicit members. The threshold is unchanged, so characters above it
// remain members regardless of what is subtracted here.
func (s Set) Sub(chars ...rune) (out Set) {
	drop := make(map[rune]struct{}, len(chars))

	for _, c := range chars {
		drop[c] = struct{}{}
	}

	out = Set{
		members:   make(map[rune]struct{}, len(s.members)),
		threshold: s.threshold,
	}

	for c := range s.members {
		if _, dropped := drop[c]; !dropped {
			out.members[c] = struct{}{}
		}
	}

	return
}

// Union returns a Set whose membership is s.Contains(c) || other.Contains(c)
// for every c. The resulting threshold is the smaller of the two (membership
// above either threshold must be preserved unconditionally), and every
// explicit member below that threshold from both sets is carried over.
func (s Set) Union(other Set) (out Set) {
	threshold := s.threshold
	if other.threshold < threshold {
		threshold = other.threshold
	}

	out = Set{members: make(map[rune]struct{}), threshold: threshold}

	for c := range s.members {
		out.members[c] = struct{}{}
	}

	for c := range other.members {
		out.members[c] = struct{}{}
	}

	// Anything between the smaller and larger threshold is a member of the
	// set with the larger threshold unconditionally; make that explicit so
	// it survives being re-thresholded down.
	hi, lo := s, other
	if other.threshold > s.threshold {
		hi, lo = other, s
	}

	for c := lo.threshold + 1; c <= hi.threshold; c++ {
		out.members[c] = struct{}{}
	}

	return
}

// Intersect returns a Set whose membership is s.Contains(c) && other.Contains(c)
// for every c. The resulting threshold is the larger of the two, since above
// both thresholds membership is unconditionally true in both operands.
func (s Set) Intersect(other Set) (out Set) {
	threshold := s.threshold
	if other.threshold > threshold {
		threshold = other.threshold
	}

	out = Set{members: make(map[rune]struct{}), threshold: threshold}

	for c := rune(0); c <= threshold; c++ {
		if s.Contains(c) && other.Contains(c) {
			out.members[c] = struct{}{}
		}
	}

	return
}

// NewExclude constructs a Set whose explicit members are every code point in
// [0, threshold] that is NOT in exclude. Above threshold, every code point is
// a member unconditionally. This mirrors the URL Standard's style of
// defining a set as "the C0 control percent-encode set and Uxxxx, Uyyyy, ...".
func NewExclude(threshold rune, exclude ...rune) (out Set) {
	excluded := make(map[rune]struct{}, len(exclude))

	for _, c := range exclude {
		excluded[c] = struct{}{}
	}

	out = Set{members: make(map[rune]struct{}), threshold: threshold}

	for c := rune(0); c <= threshold; c++ {
		if _, skip := excluded[c]; !skip {
			out.members[c] = struct{}{}
		}
	}

	return
}

// New constructs a Set whose explicit members are exactly the given
// characters, with the given threshold (all code points above it are also
// members).
func New(threshold rune, members ...rune) (out Set) {
	out = Set{members: make(map[rune]struct{}, len(members)), threshold: threshold}

	for _, c := range members {
		out.members[c] = struct{}{}
	}

	return
}
