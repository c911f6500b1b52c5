package parser

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// Lexer tokenizes move script input.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
	cfg     *config.Config
}

// Character classification table
var chTab [256]TokenType

func init() {
	initLexTables()
}

// initLexTables initializes the character classification table.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r'} {
		chTab[c] = Whitespace
	}
	chTab['\n'] = Newline
	chTab['#'] = Comment

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
}

// isWordChar reports whether c may continue a word ("castle-left", "WP5").
func isWordChar(c byte) bool {
	return chTab[c] == Alpha || chTab[c] == Digit || c == '-' || c == '_'
}

// NewLexer creates a new lexer for the given reader.
// If cfg is nil, a default config is created.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if len(line) == 0 {
			return false
		}
		// Final line without a newline still ends a command.
		line += "\n"
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.lineNum
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	// Need a new line?
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	start := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		for chTab[l.currentChar()] == Whitespace {
			l.advance()
		}
		return &Token{Type: NoToken}

	case Newline:
		return &Token{Type: EndOfLine, Column: start + 1}

	case Comment:
		// Skip to the newline, which still ends the command.
		for l.pos < len(l.line) && l.currentChar() != '\n' {
			l.advance()
		}
		return &Token{Type: NoToken}

	case Alpha:
		for l.pos < len(l.line) && isWordChar(l.currentChar()) {
			l.advance()
		}
		return &Token{Type: WordToken, Text: l.line[start:l.pos], Column: start + 1}

	case Digit:
		for chTab[l.currentChar()] == Digit {
			l.advance()
		}
		return &Token{Type: NumberToken, Text: l.line[start:l.pos], Column: start + 1}

	default:
		if l.cfg.Verbosity >= config.MoveLog {
			fmt.Fprintf(l.cfg.LogFile, "Unknown character %q on line %d.\n", ch, l.lineNum)
		}
		return &Token{Type: ErrorToken, Text: string(ch), Column: start + 1}
	}
}
