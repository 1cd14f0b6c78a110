package scan

// Kind names one of the grouping symbol pairs the scanner tracks.
type Kind uint8

const (
	Paren Kind = iota
	Bracket
	Brace
)

var pairs = [...]struct {
	name        string
	open, close rune
}{
	Paren:   {name: "paren", open: '(', close: ')'},
	Bracket: {name: "bracket", open: '[', close: ']'},
	Brace:   {name: "brace", open: '{', close: '}'},
}

func (k Kind) Open() rune {
	return pairs[k].open
}

func (k Kind) Close() rune {
	return pairs[k].close
}

func (k Kind) String() string {
	return pairs[k].name
}

func openedBy(r rune) (Kind, bool) {
	switch r {
	case '(':
		return Paren, true
	case '[':
		return Bracket, true
	case '{':
		return Brace, true
	default:
		return 0, false
	}
}

func isClosing(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}
