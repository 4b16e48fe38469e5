package easytest

// Filter returns the subtree of t whose leaves' qualified names start with
// prefix, compared segment by segment: prefix "add" keeps scope "add.ex1" but
// not scope "addendum". Branches left without matching descendants are
// dropped entirely, so seed derivation over the filtered tree never advances
// for leaves that will not run. The empty prefix is the identity filter.
func Filter(prefix string, t Test) Test {
	segments := splitName(prefix)
	if len(segments) == 0 {
		return t
	}

	kept, ok := filterNode(segments, nil, t)
	if !ok {
		return Tests()
	}
	return kept
}

func filterNode(prefix, path []string, t Test) (Test, bool) {
	switch t.kind {
	case kindUnit, kindProperty:
		if hasSegmentPrefix(path, prefix) {
			return t, true
		}
		return Test{}, false

	case kindScope:
		childPath := appendSegments(path, t.segments)
		if !compatibleSegments(childPath, prefix) {
			return Test{}, false
		}

		kept, ok := filterNode(prefix, childPath, *t.child)
		if !ok {
			return Test{}, false
		}
		return Test{kind: kindScope, segments: t.segments, child: &kept}, true

	case kindBranch:
		var kept []Test
		for _, child := range t.children {
			if k, ok := filterNode(prefix, path, child); ok {
				kept = append(kept, k)
			}
		}
		if len(kept) == 0 {
			return Test{}, false
		}
		return Test{kind: kindBranch, children: kept}, true
	}

	return Test{}, false
}

// hasSegmentPrefix reports whether path begins with every segment of prefix.
func hasSegmentPrefix(path, prefix []string) bool {
	if len(path) < len(prefix) {
		return false
	}
	for i, segment := range prefix {
		if path[i] != segment {
			return false
		}
	}
	return true
}

// compatibleSegments reports whether a leaf below path could still match
// prefix, i.e. the two agree on their common length.
func compatibleSegments(path, prefix []string) bool {
	n := min(len(path), len(prefix))
	for i := 0; i < n; i++ {
		if path[i] != prefix[i] {
			return false
		}
	}
	return true
}

func appendSegments(path, segments []string) []string {
	combined := make([]string, 0, len(path)+len(segments))
	combined = append(combined, path...)
	return append(combined, segments...)
}
