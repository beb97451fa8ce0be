package grammar

// SymKind distinguishes a grammar symbol's role in a production body.
type SymKind uint8

const (
	// Terminal symbols label graph edges; Variable symbols name other
	// productions.
	KindTerminal SymKind = iota
	KindVariable
)

// Sym is one symbol of a production body: either a terminal (an alphabet
// letter the underlying graph's edges carry) or a variable (another
// production's head). Two Sym values are equal iff both Kind and Name match,
// so Sym is usable as a map key.
type Sym struct {
	Kind SymKind
	Name string
}

// Term builds a terminal symbol.
func Term(name string) Sym { return Sym{Kind: KindTerminal, Name: name} }

// Var builds a variable symbol.
func Var(name string) Sym { return Sym{Kind: KindVariable, Name: name} }

// IsTerminal reports whether s is a terminal symbol.
func (s Sym) IsTerminal() bool { return s.Kind == KindTerminal }

// IsVariable reports whether s is a variable symbol.
func (s Sym) IsVariable() bool { return s.Kind == KindVariable }
