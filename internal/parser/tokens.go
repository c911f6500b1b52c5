// Package parser provides lexing and parsing of move scripts: plain text
// files holding one "<piece> <direction> [steps]" command per line.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	WordToken
	NumberToken
	EndOfLine
	ErrorToken

	// Internal tokens used for identification
	Whitespace
	Alpha
	Digit
	Comment
	Newline
	NoToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:    "end of file",
	WordToken:   "word",
	NumberToken: "number",
	EndOfLine:   "end of line",
	ErrorToken:  "invalid character",
	Whitespace:  "WHITESPACE",
	Alpha:       "ALPHA",
	Digit:       "DIGIT",
	Comment:     "COMMENT",
	Newline:     "NEWLINE",
	NoToken:     "NO_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the source text of words, numbers and invalid characters
	Text string

	// Line and column for error reporting (1-based)
	Line   int
	Column int
}

// describe names the token for error messages.
func (t *Token) describe() string {
	switch t.Type {
	case WordToken, NumberToken:
		return t.Type.String() + " " + quote(t.Text)
	case ErrorToken:
		return "character " + quote(t.Text)
	}
	return t.Type.String()
}

func quote(s string) string {
	return "\"" + s + "\""
}
