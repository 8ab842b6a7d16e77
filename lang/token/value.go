package token

// Value carries the payload produced by the scanner for a single token: its
// source position, its verbatim lexeme, and for STRING and NUMBER tokens the
// interpreted literal value.
type Value struct {
	Raw    string // verbatim lexeme text
	Pos    Pos
	String string  // interpreted string literal value (STRING only)
	Number float64 // interpreted numeric value (NUMBER only)
}
