/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// This file implements the matching engine: a bounded simulation of the
// nondeterministic finite automaton described by the compiled elements.
// The simulation tracks every pattern position simultaneously reachable
// after each input character, so there is no backtracking, no recursion and
// no exponential case: O(len(pattern) * len(input)) time, O(len(pattern))
// working memory.
package wildcard

// frontier is the set of pattern positions reachable at one string offset.
// Duplicate suppression is O(1): each position records the stamp of the last
// frontier generation it was added under, and membership is a stamp equality
// check. The stamp is advanced on reset instead of clearing the array, which
// keeps per-character cost proportional to the live frontier rather than the
// pattern length.
type frontier struct {
	positions []int
	visited   []int // visited[pos] == stamp iff pos is in the frontier
	stamp     int
}

func newFrontier(n int) *frontier {
	return &frontier{
		positions: make([]int, 0, n),
		visited:   make([]int, n),
	}
}

// reset empties the frontier and keys it to a new generation. Stamps must be
// positive and strictly increasing per frontier; the zero value of visited
// then never collides.
func (f *frontier) reset(stamp int) {
	f.positions = f.positions[:0]
	f.stamp = stamp
}

func (f *frontier) add(pos int) {
	if f.visited[pos] == f.stamp {
		return
	}
	f.visited[pos] = f.stamp
	f.positions = append(f.positions, pos)
}

func (f *frontier) contains(pos int) bool {
	return f.visited[pos] == f.stamp
}

// IsMatch reports whether s matches the compiled pattern. Each call owns its
// frontier state, so concurrent calls against the same Compiled value do not
// interact.
func (c *Compiled) IsMatch(s string) bool {
	if c.matchAll {
		return true
	}

	n := len(c.elements)
	current := newFrontier(n + 1)
	next := newFrontier(n + 1)

	current.reset(1)
	current.add(0)

	offset := 0
	for _, r := range s {
		offset++
		r = c.norm(r)
		next.reset(offset + 1)

		// anySequenceElement appends to current while it is being drained
		// (its consume-nothing transition), so the loop re-reads the length.
		for i := 0; i < len(current.positions); i++ {
			pos := current.positions[i]
			if pos == n {
				// Pattern exhausted with input left; this branch is dead.
				continue
			}
			c.elements[pos].step(r, pos, current, next)
		}

		if len(next.positions) == 0 {
			return false
		}
		current, next = next, current
	}

	// End of string: let trailing wildcards close out with zero characters.
	// The frontier may grow while being drained here too.
	for i := 0; i < len(current.positions); i++ {
		pos := current.positions[i]
		if pos == n {
			continue
		}
		c.elements[pos].stepEnd(pos, current)
	}

	return current.contains(n)
}
