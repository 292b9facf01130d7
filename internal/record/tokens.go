package record

import "github.com/lgbarn/amazons-go/internal/amazons"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	TagToken
	StringToken
	CommentToken
	MoveNumber
	MoveToken
	ResultToken
	ErrorToken
	noToken
)

var tokenTypeNames = [...]string{
	EOFToken:     "EOF",
	TagToken:     "TAG",
	StringToken:  "STRING",
	CommentToken: "COMMENT",
	MoveNumber:   "MOVE_NUMBER",
	MoveToken:    "MOVE",
	ResultToken:  "RESULT",
	ErrorToken:   "ERROR",
	noToken:      "NO_TOKEN",
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

	// Text is the tag name, string, comment or result, or the raw text of
	// a move or bad input.
	Text string

	Move    amazons.Move // For MoveToken
	MoveNum int          // For MoveNumber
	Err     error        // For ErrorToken

	// Line and column (both 1-based) where the token starts
	Line   int
	Column int
}
