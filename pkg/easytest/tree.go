// Package easytest organizes individual checks into a named, nestable scope
// tree, runs them against a splittable random seed, and aggregates the
// outcomes into a summary. Every failure is reported together with the seed
// that reproduces it, so a prior run can be replayed byte for byte.
package easytest

import "strings"

// nodeKind discriminates the Test variants.
type nodeKind int

const (
	kindUnit nodeKind = iota
	kindProperty
	kindBranch
	kindScope
)

// Test is an immutable node in the scope tree. Leaves are individual checks,
// branches sequence children in order, and scope nodes prepend name segments
// to the qualified name of every leaf underneath them. Construction has no
// side effects; nothing runs until a runner entry point walks the tree.
type Test struct {
	kind     nodeKind
	segments []string // kindScope
	child    *Test    // kindScope
	children []Test   // kindBranch
	unit     func(*T) // kindUnit
	prop     *property
}

// Scope prepends name to the qualified path of every leaf under t. A dot in
// name is a nesting separator, so Scope("a.b", t) is observably identical to
// Scope("a", Scope("b", t)). This holds for a literal "." inside a
// user-supplied name too, which cannot be distinguished from nesting.
func Scope(name string, t Test) Test {
	return Test{kind: kindScope, segments: splitName(name), child: &t}
}

// Tests sequences children; execution order is the given order.
func Tests(children ...Test) Test {
	return Test{kind: kindBranch, children: children}
}

// UnitTest builds a leaf that runs fn exactly once. An un-scoped leaf has an
// empty qualified name, rendered as "(unnamed)".
func UnitTest(fn func(t *T)) Test {
	return Test{kind: kindUnit, unit: fn}
}

func splitName(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, ".")
}

func joinName(segments []string) string {
	if len(segments) == 0 {
		return "(unnamed)"
	}
	return strings.Join(segments, ".")
}
