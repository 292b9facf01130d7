package matching

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/amazons-go/internal/record"
)

// GameFilter combines tag and position matching. A record must satisfy
// both kinds of criteria when both are present.
type GameFilter struct {
	TagMatcher      *TagMatcher
	PositionMatcher *PositionMatcher
	negate          bool
}

// NewGameFilter creates a filter that matches every record.
func NewGameFilter() *GameFilter {
	return &GameFilter{
		TagMatcher:      NewTagMatcher(),
		PositionMatcher: NewPositionMatcher(),
	}
}

// LoadCriteria reads criteria, one per line. Lines starting with
// "Position" name a position to search for; the rest are tag criteria as
// accepted by ParseCriterion. Blank lines and lines starting with '#' are
// skipped.
//
//	White ~ "^amazons"
//	Date >= "2024.01.01"
//	Position "3W6/10/10/10/10/10/10/10/10/6B3 b"
func (gf *GameFilter) LoadCriteria(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var err error
		if rest, ok := strings.CutPrefix(line, record.PositionTag+" "); ok {
			err = gf.PositionMatcher.AddPosition(strings.Trim(strings.TrimSpace(rest), `"`), "")
		} else {
			err = gf.TagMatcher.ParseCriterion(line)
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}

// AddPlayerFilter matches records where either player's name contains
// name.
func (gf *GameFilter) AddPlayerFilter(name string) {
	gf.TagMatcher.AddPlayerCriterion(name)
}

// AddResultFilter matches records with the given result.
func (gf *GameFilter) AddResultFilter(result string) {
	gf.TagMatcher.AddCriterion(record.ResultTag, result, OpEqual) //nolint:errcheck // OpEqual cannot fail
}

// AddPositionFilter matches records passing through a position.
func (gf *GameFilter) AddPositionFilter(text string) error {
	return gf.PositionMatcher.AddPosition(text, "")
}

// SetNegate inverts the filter: records that fail the criteria match.
func (gf *GameFilter) SetNegate(negate bool) {
	gf.negate = negate
}

// HasCriteria reports whether any criteria are set.
func (gf *GameFilter) HasCriteria() bool {
	return gf.TagMatcher.CriteriaCount() > 0 || gf.PositionMatcher.PositionCount() > 0
}

// MatchRecord reports whether rec passes the filter.
func (gf *GameFilter) MatchRecord(rec *record.Record) bool {
	matched := gf.TagMatcher.MatchRecord(rec)
	if matched && gf.PositionMatcher.PositionCount() > 0 {
		_, matched = gf.PositionMatcher.MatchRecord(rec)
	}
	return matched != gf.negate
}
