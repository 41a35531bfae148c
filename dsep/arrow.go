package dsep

// Arrow denotes the direction of one edge along a Path: ArrowRight means
// "v_{i-1} -> v_i", ArrowLeft means "v_{i-1} <- v_i". ArrowNone is the
// sentinel head/tail arrow of a fresh single-vertex path.
type Arrow int

const (
	// ArrowNone is the sentinel arrow before a path has any edges.
	ArrowNone Arrow = iota
	// ArrowRight is a directed edge pointing away from the path's start.
	ArrowRight
	// ArrowLeft is a directed edge pointing toward the path's start.
	ArrowLeft
)

// String renders the arrow as "->", "<-", or "none".
func (a Arrow) String() string {
	switch a {
	case ArrowRight:
		return "->"
	case ArrowLeft:
		return "<-"
	default:
		return "none"
	}
}

// tripleOpen classifies the (a1, v, a2) triple around an internal path
// vertex per spec.md §4.C's table. vInW reports whether v is in the
// conditioning set; vHasDescendantInW reports whether any descendant of
// v is in the conditioning set (relevant only to the collider row). A
// head sentinel (a1 == ArrowNone) is always open.
func tripleOpen(a1, a2 Arrow, vInW, vHasDescendantInW bool) bool {
	if a1 == ArrowNone {
		return true
	}
	switch {
	case a1 == ArrowRight && a2 == ArrowRight:
		return !vInW
	case a1 == ArrowLeft && a2 == ArrowRight:
		return !vInW
	case a1 == ArrowRight && a2 == ArrowLeft:
		// Collider: conditioning on v, or on any descendant of v, opens it.
		return vInW || vHasDescendantInW
	case a1 == ArrowLeft && a2 == ArrowLeft:
		return !vInW
	default:
		return true
	}
}

// isCollider reports whether (a1, a2) forms a collider (-> v <-) at the
// middle vertex.
func isCollider(a1, a2 Arrow) bool {
	return a1 == ArrowRight && a2 == ArrowLeft
}
