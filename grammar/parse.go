package grammar

import (
	"strings"
	"unicode"
)

// classify reports whether a token spells a variable (leading upper-case
// letter) or a terminal (anything else).
func classify(tok string) Sym {
	r := []rune(tok)[0]
	if unicode.IsUpper(r) {
		return Var(tok)
	}

	return Term(tok)
}

func isVariableToken(tok string) bool {
	r := []rune(tok)[0]

	return unicode.IsUpper(r)
}

// ParseCFG reads the line-oriented "LHS -> BODY" production format: one
// production per non-empty line, whitespace-separated body tokens, an empty
// body written as `$` denoting epsilon. The grammar's start symbol is the
// head of the first production.
// Complexity: O(input size).
func ParseCFG(text string) (*CFG, error) {
	g := &CFG{}
	for _, line := range splitNonEmptyLines(text) {
		head, bodyText, err := splitProduction(line)
		if err != nil {
			return nil, err
		}
		var body []Sym
		if bodyText != "$" {
			for _, tok := range strings.Fields(bodyText) {
				body = append(body, classify(tok))
			}
		}
		if g.Start == "" {
			g.Start = head
		}
		g.Productions = append(g.Productions, Production{Head: head, Body: body})
	}
	if len(g.Productions) == 0 {
		return nil, ErrEmptyGrammar
	}

	return g, nil
}

// ParseECFG reads the same line format as ParseCFG, but BODY is a `|`
// separated alternation of whitespace-separated token sequences, compiled
// into a Regex (Union of Concat-of-Lit terms). Duplicate LHS across lines is
// a syntax error: a variable may own at most one right-hand side.
// Complexity: O(input size).
func ParseECFG(text string) (*ECFG, error) {
	e := &ECFG{Productions: make(map[string]Regex)}
	for _, line := range splitNonEmptyLines(text) {
		head, bodyText, err := splitProduction(line)
		if err != nil {
			return nil, err
		}
		if _, dup := e.Productions[head]; dup {
			return nil, ErrGrammarSyntax
		}
		var rhs Regex
		for _, alt := range strings.Split(bodyText, "|") {
			alt = strings.TrimSpace(alt)
			var r Regex
			if alt == "" || alt == "$" {
				r = Epsilon()
			} else {
				for _, tok := range strings.Fields(alt) {
					lit := Lit(classify(tok))
					if r == nil {
						r = lit
					} else {
						r = Concat(r, lit)
					}
				}
			}
			if rhs == nil {
				rhs = r
			} else {
				rhs = Union(rhs, r)
			}
		}
		if e.Start == "" {
			e.Start = head
		}
		e.Productions[head] = rhs
	}
	if len(e.Productions) == 0 {
		return nil, ErrEmptyGrammar
	}

	return e, nil
}

func splitNonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

func splitProduction(line string) (head, body string, err error) {
	parts := strings.SplitN(line, "->", 2)
	if len(parts) != 2 {
		return "", "", ErrGrammarSyntax
	}
	head = strings.TrimSpace(parts[0])
	body = strings.TrimSpace(parts[1])
	if head == "" || strings.ContainsAny(head, " \t") || !isVariableToken(head) {
		return "", "", ErrGrammarSyntax
	}

	return head, body, nil
}
