package parser

import (
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Line is one parsed command with its source line number.
type Line struct {
	Number  int
	Command notation.Command
}

// Script is a parsed move script.
type Script struct {
	Name  string
	Lines []Line
}

// Parser parses move script input into commands.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	name         string
}

// NewParser creates a new parser for the given reader. name is used in
// error messages. If cfg is nil, a default config is created.
func NewParser(r io.Reader, name string, cfg *config.Config) *Parser {
	return &Parser{
		lexer: NewLexer(r, cfg),
		name:  name,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseLine parses the next command, skipping blank and comment-only
// lines. It returns nil, nil at end of input. After an error the rest of
// the offending line is skipped, so parsing may continue.
func (p *Parser) ParseLine() (*Line, error) {
	if p.currentToken == nil {
		p.nextToken()
	}
	for p.currentToken.Type == EndOfLine {
		p.nextToken()
	}
	if p.currentToken.Type == EOFToken {
		return nil, nil
	}

	line, err := p.parseCommand()
	if err != nil {
		p.skipToEndOfLine()
		return nil, err
	}
	return line, nil
}

// ParseAll parses every command, stopping at the first error.
func (p *Parser) ParseAll() (*Script, error) {
	script := &Script{Name: p.name}
	for {
		line, err := p.ParseLine()
		if err != nil {
			return script, err
		}
		if line == nil {
			return script, nil
		}
		script.Lines = append(script.Lines, *line)
	}
}

// parseCommand parses: piece direction [steps] end-of-line.
func (p *Parser) parseCommand() (*Line, error) {
	lineNum := p.currentToken.Line

	piece := p.currentToken
	if piece.Type != WordToken {
		return nil, p.syntaxError(piece, "piece identity")
	}
	p.nextToken()

	dirTok := p.currentToken
	if dirTok.Type != WordToken {
		return nil, p.syntaxError(dirTok, "direction code")
	}
	if _, err := notation.Lookup(dirTok.Text); err != nil {
		return nil, p.syntaxError(dirTok, "direction code")
	}
	p.nextToken()

	steps := 1
	stepsTok := p.currentToken
	if stepsTok.Type == NumberToken {
		n, err := strconv.Atoi(stepsTok.Text)
		if err != nil {
			return nil, p.syntaxError(stepsTok, "step count")
		}
		steps = n
		p.nextToken()
	}

	if end := p.currentToken; end.Type != EndOfLine && end.Type != EOFToken {
		return nil, p.syntaxError(end, "end of line")
	}

	cmd, err := notation.NewCommand(piece.Text, dirTok.Text, steps)
	if err != nil {
		return nil, &errors.ParseError{
			Err:    err,
			File:   p.name,
			Line:   lineNum,
			Column: stepsTok.Column,
		}
	}
	return &Line{Number: lineNum, Command: cmd}, nil
}

// syntaxError builds a ParseError at the token.
func (p *Parser) syntaxError(got *Token, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     p.name,
		Line:     got.Line,
		Column:   got.Column,
		Expected: expected,
		Got:      got.describe(),
	}
}

// skipToEndOfLine discards tokens up to the next line.
func (p *Parser) skipToEndOfLine() {
	for p.currentToken.Type != EndOfLine && p.currentToken.Type != EOFToken {
		p.nextToken()
	}
}

// ParseScript parses a whole script from r.
func ParseScript(r io.Reader, name string) (*Script, error) {
	return NewParser(r, name, nil).ParseAll()
}

// ParseCommand parses a single command typed at a prompt.
func ParseCommand(text string) (notation.Command, error) {
	p := NewParser(strings.NewReader(text), "", nil)
	line, err := p.ParseLine()
	if err != nil {
		return notation.Command{}, err
	}
	if line == nil {
		return notation.Command{}, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "piece identity", Got: "end of line"}
	}
	return line.Command, nil
}
