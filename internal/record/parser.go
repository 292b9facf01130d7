package record

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/amazons-go/internal/config"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
)

// Parser parses record input into Record structures.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	filename     string
	cfg          *config.Config
}

// NewParser creates a new parser for the given reader. If cfg is nil,
// warnings are discarded.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	lexer := NewLexer(r, cfg)
	return &Parser{
		lexer: lexer,
		cfg:   lexer.cfg,
	}
}

// SetFilename names the input in error messages.
func (p *Parser) SetFilename(name string) {
	p.filename = name
}

func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseRecord parses a single record from the input. It returns nil, nil
// when the input is exhausted.
func (p *Parser) ParseRecord() (*Record, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	prefix := p.parseOptCommentList()
	if p.currentToken.Type == ErrorToken {
		return nil, p.tokenError(p.currentToken)
	}
	if p.currentToken.Type == EOFToken {
		return nil, nil
	}

	rec := New()
	rec.StartLine = p.currentToken.Line

	if err := p.parseOptTagList(rec); err != nil {
		return nil, err
	}
	rec.PrefixComment = append(prefix, p.parseOptCommentList()...)

	result, err := p.parseMoveList(rec)
	if err != nil {
		return rec, err
	}
	rec.EndLine = p.lexer.LineNumber()

	if result != "" {
		switch tagged := rec.GetTag(ResultTag); tagged {
		case "", "?":
			rec.SetTag(ResultTag, result)
		case result:
		default:
			fmt.Fprintf(p.cfg.LogFile, "Result tag %s does not match terminating result %s on line %d.\n",
				tagged, result, rec.EndLine)
		}
	}
	return rec, nil
}

// parseOptTagList parses zero or more tag pairs.
func (p *Parser) parseOptTagList(rec *Record) error {
	for {
		switch p.currentToken.Type {
		case TagToken:
			name := p.currentToken.Text
			p.nextToken()
			if p.currentToken.Type != StringToken {
				return p.unexpected(p.currentToken, "tag value for "+name)
			}
			rec.SetTag(name, p.currentToken.Text)
			p.nextToken()
		case StringToken:
			return p.unexpected(p.currentToken, "tag name")
		default:
			return nil
		}
	}
}

// parseMoveList reads moves up to the terminating result, the next record's
// tags or the end of input. It returns the result token's text, if any.
func (p *Parser) parseMoveList(rec *Record) (string, error) {
	for {
		tok := p.currentToken
		switch tok.Type {
		case MoveNumber:
			p.checkMoveNumber(rec, tok)
			p.nextToken()
		case MoveToken:
			rec.Moves = append(rec.Moves, Entry{Move: tok.Move, Line: tok.Line})
			p.nextToken()
		case CommentToken:
			if n := len(rec.Moves); n > 0 {
				rec.Moves[n-1].Comments = append(rec.Moves[n-1].Comments, tok.Text)
			} else {
				rec.PrefixComment = append(rec.PrefixComment, tok.Text)
			}
			p.nextToken()
		case ResultToken:
			p.nextToken()
			return tok.Text, nil
		case TagToken, EOFToken:
			return "", nil
		case ErrorToken:
			return "", p.tokenError(tok)
		default:
			return "", p.unexpected(tok, "move")
		}
	}
}

// checkMoveNumber warns when a move number does not match the move that
// follows it. Numbers are only advisory.
func (p *Parser) checkMoveNumber(rec *Record, tok *Token) {
	if want := len(rec.Moves)/2 + 1; tok.MoveNum != want {
		fmt.Fprintf(p.cfg.LogFile, "Move number %d on line %d, expected %d.\n", tok.MoveNum, tok.Line, want)
	}
}

// parseOptCommentList parses zero or more comments.
func (p *Parser) parseOptCommentList() []string {
	var comments []string
	for p.currentToken.Type == CommentToken {
		comments = append(comments, p.currentToken.Text)
		p.nextToken()
	}
	return comments
}

// ParseAll parses all records from the input. On error the records read
// before the bad one are returned with it.
func (p *Parser) ParseAll() ([]*Record, error) {
	var records []*Record

	for {
		rec, err := p.ParseRecord()
		if err != nil {
			return records, amzerrors.Wrapf(err, "record %d", len(records)+1)
		}
		if rec == nil {
			return records, nil
		}
		records = append(records, rec)
	}
}

// Parse reads every record from r.
func Parse(r io.Reader) ([]*Record, error) {
	return NewParser(r, nil).ParseAll()
}

func (p *Parser) tokenError(tok *Token) error {
	err := tok.Err
	if err == nil {
		err = amzerrors.ErrParseFailure
	}
	return &amzerrors.ParseError{
		Err:    err,
		File:   p.filename,
		Line:   tok.Line,
		Column: tok.Column,
		Got:    strconv.Quote(tok.Text),
	}
}

func (p *Parser) unexpected(tok *Token, expected string) error {
	got := tok.Type.String()
	if tok.Text != "" {
		got = strconv.Quote(tok.Text)
	}
	return &amzerrors.ParseError{
		Err:      amzerrors.ErrParseFailure,
		File:     p.filename,
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: expected,
		Got:      got,
	}
}
