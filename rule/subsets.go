package rule

import "github.com/go-causalid/causalid/variable"

// nonEmptySubsets enumerates every non-empty subset of s. The result is
// exponential in s.Len(), which is acceptable here for the same reason
// path enumeration is: rule bindings are only ever searched over the
// small conditioning/do sets of a single statement, not the whole graph.
func nonEmptySubsets(s variable.Set) []variable.Set {
	elems := s.Slice()
	if len(elems) == 0 {
		return nil
	}

	var out []variable.Set
	for mask := 1; mask < (1 << len(elems)); mask++ {
		sub := variable.Empty()
		for i, v := range elems {
			if mask&(1<<i) != 0 {
				sub = sub.Add(v)
			}
		}
		out = append(out, sub)
	}
	return out
}
