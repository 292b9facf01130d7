// Package matching selects game records by their tags and by the
// positions they pass through.
package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	amzerrors "github.com/lgbarn/amazons-go/internal/errors"
	"github.com/lgbarn/amazons-go/internal/record"
)

// TagOperator represents comparison operators for tag matching.
type TagOperator int

const (
	OpEqual TagOperator = iota
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpContains // case-insensitive substring
	OpRegex
)

// operators in the order ParseCriterion tries them; two-character
// spellings come first.
var operators = []struct {
	text string
	op   TagOperator
}{
	{"<=", OpLessOrEqual},
	{">=", OpGreaterOrEqual},
	{"<>", OpNotEqual},
	{"!=", OpNotEqual},
	{"<", OpLessThan},
	{">", OpGreaterThan},
	{"=", OpEqual},
	{"~", OpRegex},
}

// playerTag is a pseudo tag matching either player.
const playerTag = "_Player"

// TagCriterion is a single tag test.
type TagCriterion struct {
	TagName  string
	Value    string
	Operator TagOperator
	regex    *regexp.Regexp
}

// TagMatcher tests records against tag criteria. All criteria must match.
type TagMatcher struct {
	criteria []*TagCriterion
}

// NewTagMatcher creates an empty tag matcher, which matches everything.
func NewTagMatcher() *TagMatcher {
	return &TagMatcher{}
}

// AddCriterion adds a criterion. Only OpRegex can fail, on a bad pattern.
func (tm *TagMatcher) AddCriterion(tagName, value string, op TagOperator) error {
	c := &TagCriterion{TagName: tagName, Value: value, Operator: op}
	if op == OpRegex {
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("tag %s pattern %q: %v: %w", tagName, value, err, amzerrors.ErrInvalidConfig)
		}
		c.regex = re
	}
	if op == OpContains {
		c.Value = strings.ToLower(value)
	}
	tm.criteria = append(tm.criteria, c)
	return nil
}

// AddPlayerCriterion matches records where either player's name contains
// name.
func (tm *TagMatcher) AddPlayerCriterion(name string) {
	tm.AddCriterion(playerTag, name, OpContains) //nolint:errcheck // OpContains cannot fail
}

// ParseCriterion parses a line such as `Date >= "2024.01.01"` or
// `White ~ "^amazons"`. A bare value compares for equality.
func (tm *TagMatcher) ParseCriterion(line string) error {
	line = strings.TrimSpace(line)
	end := strings.IndexAny(line, " \t<>=!~")
	if end <= 0 {
		return fmt.Errorf("criterion %q: %w", line, amzerrors.ErrInvalidConfig)
	}

	name := line[:end]
	rest := strings.TrimSpace(line[end:])
	op := OpEqual
	for _, o := range operators {
		if strings.HasPrefix(rest, o.text) {
			op = o.op
			rest = strings.TrimSpace(rest[len(o.text):])
			break
		}
	}
	if unquoted, err := strconv.Unquote(rest); err == nil {
		rest = unquoted
	}
	return tm.AddCriterion(name, rest, op)
}

// CriteriaCount returns the number of criteria.
func (tm *TagMatcher) CriteriaCount() int {
	return len(tm.criteria)
}

// MatchRecord reports whether rec satisfies every criterion.
func (tm *TagMatcher) MatchRecord(rec *record.Record) bool {
	for _, c := range tm.criteria {
		if !c.match(rec) {
			return false
		}
	}
	return true
}

func (c *TagCriterion) match(rec *record.Record) bool {
	if c.TagName == playerTag {
		return c.matchValue(rec.White()) || c.matchValue(rec.Black())
	}
	value, ok := rec.Tags[c.TagName]
	if c.TagName == record.ResultTag {
		value, ok = rec.Result(), true
	}
	if !ok {
		return c.Operator == OpNotEqual
	}
	return c.matchValue(value)
}

func (c *TagCriterion) matchValue(value string) bool {
	switch c.Operator {
	case OpEqual:
		return strings.EqualFold(value, c.Value)
	case OpNotEqual:
		return !strings.EqualFold(value, c.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(value), c.Value)
	case OpRegex:
		return c.regex.MatchString(value)
	}

	order := compareValues(value, c.Value)
	switch c.Operator {
	case OpLessThan:
		return order < 0
	case OpLessOrEqual:
		return order <= 0
	case OpGreaterThan:
		return order > 0
	case OpGreaterOrEqual:
		return order >= 0
	}
	return false
}

// compareValues orders two tag values: as dates (YYYY.MM.DD, missing
// parts count as 1) when both are dates, else as numbers when both are
// numbers, else as case-folded strings.
func compareValues(a, b string) int {
	if da, db := parseDate(a), parseDate(b); da > 0 && db > 0 {
		return sign(da - db)
	}
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// parseDate encodes a YYYY.MM.DD date as YYYYMMDD, or returns 0.
func parseDate(s string) int {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 100 || year > 3000 {
		return 0
	}
	date := year * 10000
	for i, scale := range []int{100, 1} {
		n := 1
		if i+1 < len(parts) {
			if v, err := strconv.Atoi(parts[i+1]); err == nil && v >= 1 && v <= 31 {
				n = v
			}
		}
		date += n * scale
	}
	return date
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
