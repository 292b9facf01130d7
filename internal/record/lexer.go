package record

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/amazons-go/internal/amazons"
	"github.com/lgbarn/amazons-go/internal/config"
	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
)

// Character classes.
type charClass int

const (
	otherChar charClass = iota
	whitespace
	tagStart
	tagEnd
	doubleQuote
	commentStart
	commentEnd
	lineComment
	escape
	dot
	star
	digit
	column
)

var chTab [256]charClass

func init() {
	for _, c := range []byte{' ', '\t', '\r', '\n', '\f'} {
		chTab[c] = whitespace
	}
	chTab['['] = tagStart
	chTab[']'] = tagEnd
	chTab['"'] = doubleQuote
	chTab['{'] = commentStart
	chTab['}'] = commentEnd
	chTab[';'] = lineComment
	chTab['%'] = escape
	chTab['.'] = dot
	chTab['*'] = star
	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = digit
	}
	for c := byte(amazons.ColBase); c <= amazons.LastCol; c++ {
		chTab[c] = column
	}
}

// isMoveChar reports whether c can appear in move text.
func isMoveChar(c byte) bool {
	switch chTab[c] {
	case column, digit:
		return true
	}
	return c == '-' || c == '(' || c == ')'
}

// Lexer tokenizes game record input.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
	cfg     *config.Config
}

// NewLexer creates a new lexer for the given reader. Warnings go to
// cfg.LogFile; if cfg is nil they are discarded.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfigBuilder().WithLog(io.Discard).Build()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// LineNumber returns the number of the line being read.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		l.eof = true
		return false
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

func (l *Lexer) warnf(format string, args ...interface{}) {
	if l.cfg.LogFile != nil && l.cfg.Verbosity > 0 {
		fmt.Fprintf(l.cfg.LogFile, format, args...)
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		if l.pos >= len(l.line) {
			if !l.readLine() {
				return &Token{Type: EOFToken, Line: l.lineNum}
			}
			continue
		}

		start := l.pos
		line := l.lineNum
		token := l.getNextSymbol()
		if token.Type == noToken {
			continue
		}
		if token.Line == 0 {
			token.Line = line
			token.Column = start + 1
		}
		return token
	}
}

// getNextSymbol identifies the symbol at the current position.
func (l *Lexer) getNextSymbol() *Token {
	ch := l.currentChar()
	start := l.pos
	l.advance()

	switch chTab[ch] {
	case whitespace:
		for chTab[l.currentChar()] == whitespace && l.pos < len(l.line) {
			l.advance()
		}
		return &Token{Type: noToken}

	case tagStart:
		return l.gatherTag()

	case tagEnd, dot:
		return &Token{Type: noToken}

	case doubleQuote:
		return l.gatherString()

	case commentStart:
		return l.gatherComment()

	case commentEnd:
		l.warnf("Unmatched comment end on line %d.\n", l.lineNum)
		return &Token{Type: noToken}

	case lineComment:
		text := strings.TrimSpace(l.line[l.pos:])
		l.pos = len(l.line)
		return &Token{Type: CommentToken, Text: text}

	case escape:
		// A '%' in the first column hides the whole line.
		if start == 0 {
			l.pos = len(l.line)
			return &Token{Type: noToken}
		}

	case star:
		return &Token{Type: ResultToken, Text: Unfinished}

	case digit:
		return l.gatherNumeric(start)

	case column:
		return l.gatherMove(start)
	}

	return l.errorToken(start, amzerrors.ErrParseFailure)
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() *Token {
	for chTab[l.currentChar()] == whitespace && l.pos < len(l.line) {
		l.advance()
	}

	start := l.pos
	for l.pos < len(l.line) {
		ch := l.currentChar()
		if ch == '_' || chTab[ch] == digit || (ch|0x20 >= 'a' && ch|0x20 <= 'z') {
			l.advance()
		} else {
			break
		}
	}
	if l.pos == start {
		return l.errorToken(start, amzerrors.ErrParseFailure)
	}
	return &Token{Type: TagToken, Text: l.line[start:l.pos]}
}

// gatherString gathers a quoted string. Backslash escapes the next byte.
func (l *Lexer) gatherString() *Token {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return &Token{Type: StringToken, Text: sb.String()}
		case ch == '\n' || ch == '\r':
		default:
			sb.WriteByte(ch)
		}
	}

	l.warnf("Missing closing quote on line %d.\n", l.lineNum)
	return &Token{Type: StringToken, Text: sb.String()}
}

// gatherComment gathers a brace comment, which may span lines. Line breaks
// inside become single spaces.
func (l *Lexer) gatherComment() *Token {
	startLine := l.lineNum
	startCol := l.pos
	var parts []string

	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			parts = append(parts, l.line[l.pos:l.pos+end])
			l.pos += end + 1
			return &Token{
				Type:   CommentToken,
				Text:   strings.Join(strings.Fields(strings.Join(parts, " ")), " "),
				Line:   startLine,
				Column: startCol,
			}
		}
		parts = append(parts, l.line[l.pos:])
		if !l.readLine() {
			return &Token{
				Type:   ErrorToken,
				Text:   "{",
				Err:    amzerrors.Wrap(amzerrors.ErrParseFailure, "unterminated comment"),
				Line:   startLine,
				Column: startCol,
			}
		}
	}
}

// gatherNumeric reads a move number ("12." or "12...") or a result.
func (l *Lexer) gatherNumeric(start int) *Token {
	rest := l.line[start:]
	for _, res := range []string{WhiteWins, BlackWins} {
		if strings.HasPrefix(rest, res) && (len(rest) == len(res) || chTab[rest[len(res)]] == whitespace) {
			l.pos = start + len(res)
			return &Token{Type: ResultToken, Text: res}
		}
	}

	for chTab[l.currentChar()] == digit && l.pos < len(l.line) {
		l.advance()
	}
	n, err := strconv.Atoi(l.line[start:l.pos])
	if err != nil {
		return l.errorToken(start, amzerrors.ErrParseFailure)
	}
	for chTab[l.currentChar()] == dot && l.pos < len(l.line) {
		l.advance()
	}
	return &Token{Type: MoveNumber, MoveNum: n, Text: l.line[start:l.pos]}
}

// gatherMove reads a move in "from-to(spear)" form.
func (l *Lexer) gatherMove(start int) *Token {
	for l.pos < len(l.line) && isMoveChar(l.currentChar()) {
		l.advance()
	}
	text := l.line[start:l.pos]
	m, ok := amazons.ParseMove(text)
	if !ok {
		return &Token{
			Type:   ErrorToken,
			Text:   text,
			Err:    amzerrors.ErrMalformedMove,
			Column: start + 1,
			Line:   l.lineNum,
		}
	}
	return &Token{Type: MoveToken, Text: text, Move: m}
}

// errorToken consumes the rest of the offending word.
func (l *Lexer) errorToken(start int, err error) *Token {
	for l.pos < len(l.line) && chTab[l.currentChar()] != whitespace {
		l.advance()
	}
	return &Token{
		Type:   ErrorToken,
		Text:   strings.TrimSpace(l.line[start:l.pos]),
		Err:    err,
		Line:   l.lineNum,
		Column: start + 1,
	}
}
