package grammar

import (
	"fmt"

	"github.com/projectdiscovery/gologger"
)

// freshNamer hands out variable names guaranteed never to collide with a
// starting set of existing names: any injection V -> V_fresh that never
// collides with existing variables works.
type freshNamer struct {
	used    map[string]bool
	counter int
}

func newFreshNamer(existing map[string]bool) *freshNamer {
	used := make(map[string]bool, len(existing))
	for k := range existing {
		used[k] = true
	}

	return &freshNamer{used: used}
}

func (f *freshNamer) next() string {
	for {
		f.counter++
		name := fmt.Sprintf("X%d", f.counter)
		if !f.used[name] {
			f.used[name] = true

			return name
		}
	}
}

// ToWCNF converts g to Weak Chomsky Normal Form in three passes:
// split bodies longer than two symbols into a binary chain via fresh
// variables; eliminate unit productions (with useless-symbol removal before
// and after, mirroring the "remove useless, eliminate unit, remove useless
// again" order); then lift any terminal remaining in a binary body into its
// own fresh single-terminal variable. Bodies of length 0 or 1 survive
// untouched, which is what makes this "weak" rather than strict CNF: ε and
// unary-terminal productions are allowed to stand.
// Complexity: O(|P|^2) dominated by unit-production elimination.
func (g *CFG) ToWCNF() *CFG {
	existing := make(map[string]bool)
	for _, v := range g.Variables() {
		existing[v] = true
	}
	fresh := newFreshNamer(existing)

	prods := splitLongBodies(g.Productions, fresh)
	prods = removeUseless(prods, g.Start)
	prods = eliminateUnits(prods)
	prods = removeUseless(prods, g.Start)
	prods = liftTerminals(prods, fresh)

	gologger.Debug().Msgf("grammar: ToWCNF introduced %d fresh variables, %d productions", fresh.counter, len(prods))

	return &CFG{Start: g.Start, Productions: prods}
}

func splitLongBodies(in []Production, fresh *freshNamer) []Production {
	out := make([]Production, 0, len(in))
	for _, p := range in {
		if len(p.Body) <= 2 {
			out = append(out, p)

			continue
		}
		head := p.Head
		body := p.Body
		for len(body) > 2 {
			y := fresh.next()
			out = append(out, Production{Head: head, Body: []Sym{body[0], Var(y)}})
			head = y
			body = body[1:]
		}
		out = append(out, Production{Head: head, Body: body})
	}

	return out
}

// eliminateUnits removes productions of the form A -> B (a single variable
// body) by inlining every non-unit production reachable from B through a
// chain of unit productions directly under A. Cycles in the unit-production
// graph are harmless: reach(A) is a set, so it absorbs a cycle without
// looping.
func eliminateUnits(in []Production) []Production {
	reach := make(map[string]map[string]bool)
	addReach := func(a string) map[string]bool {
		if r, ok := reach[a]; ok {
			return r
		}
		r := map[string]bool{a: true}
		reach[a] = r

		return r
	}
	for _, p := range in {
		addReach(p.Head)
		if isUnit(p) {
			addReach(p.Body[0].Name)
		}
	}

	changed := true
	for changed {
		changed = false
		for _, p := range in {
			if !isUnit(p) {
				continue
			}
			a, b := p.Head, p.Body[0].Name
			ra, rb := reach[a], reach[b]
			for c := range rb {
				if !ra[c] {
					ra[c] = true
					changed = true
				}
			}
		}
	}

	seen := make(map[string]bool)
	var out []Production
	add := func(head string, body []Sym) {
		key := head + "->" + bodyKey(body)
		if !seen[key] {
			seen[key] = true
			out = append(out, Production{Head: head, Body: body})
		}
	}
	for _, p := range in {
		if isUnit(p) {
			continue
		}
		add(p.Head, p.Body)
	}
	for a, closure := range reach {
		for c := range closure {
			if c == a {
				continue
			}
			for _, p := range in {
				if p.Head == c && !isUnit(p) {
					add(a, p.Body)
				}
			}
		}
	}

	return out
}

func isUnit(p Production) bool {
	return len(p.Body) == 1 && p.Body[0].IsVariable()
}

func bodyKey(body []Sym) string {
	key := ""
	for _, s := range body {
		if s.IsTerminal() {
			key += "t:" + s.Name + ","
		} else {
			key += "v:" + s.Name + ","
		}
	}

	return key
}

// removeUseless drops symbols that either can never derive a terminal
// string (non-generating) or are never reachable from start, the standard
// two-pass useless-symbol elimination.
func removeUseless(in []Production, start string) []Production {
	generating := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for _, p := range in {
			if generating[p.Head] {
				continue
			}
			ok := true
			for _, s := range p.Body {
				if s.IsVariable() && !generating[s.Name] {
					ok = false

					break
				}
			}
			if ok {
				generating[p.Head] = true
				changed = true
			}
		}
	}

	var gen []Production
	for _, p := range in {
		if !generating[p.Head] {
			continue
		}
		bad := false
		for _, s := range p.Body {
			if s.IsVariable() && !generating[s.Name] {
				bad = true

				break
			}
		}
		if !bad {
			gen = append(gen, p)
		}
	}

	byHead := make(map[string][]Production)
	for _, p := range gen {
		byHead[p.Head] = append(byHead[p.Head], p)
	}
	reachable := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, p := range byHead[v] {
			for _, s := range p.Body {
				if s.IsVariable() && !reachable[s.Name] {
					reachable[s.Name] = true
					queue = append(queue, s.Name)
				}
			}
		}
	}

	var out []Production
	for _, p := range gen {
		if reachable[p.Head] {
			out = append(out, p)
		}
	}

	return out
}

// liftTerminals replaces any terminal occurring in a binary body with a
// fresh variable whose sole production rewrites it back to that terminal,
// so every surviving binary body is purely (variable, variable).
func liftTerminals(in []Production, fresh *freshNamer) []Production {
	termVar := make(map[string]string)
	out := make([]Production, 0, len(in))
	for _, p := range in {
		if len(p.Body) != 2 {
			out = append(out, p)

			continue
		}
		newBody := make([]Sym, 2)
		for i, s := range p.Body {
			if s.IsTerminal() {
				v, ok := termVar[s.Name]
				if !ok {
					v = fresh.next()
					termVar[s.Name] = v
					out = append(out, Production{Head: v, Body: []Sym{s}})
				}
				newBody[i] = Var(v)
			} else {
				newBody[i] = s
			}
		}
		out = append(out, Production{Head: p.Head, Body: newBody})
	}

	return out
}
