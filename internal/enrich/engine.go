// Package enrich attaches venue, CCF-grade and citation signals to papers
// via heuristic matching against ordered venue tables.
package enrich

import (
	"context"
	"strings"

	"github.com/paperscope/paperscope/internal/model"
)

// Engine enriches papers with publication-venue and citation information.
// Venue detection is first-match: the conference table is scanned before the
// journal table, in declaration order, and the first abbreviation found as a
// substring of the title or abstract wins.
type Engine struct {
	tables    model.VenueTables
	citations CitationSource
}

// NewEngine creates an enrichment engine. A nil citation source disables
// citation lookup.
func NewEngine(tables model.VenueTables, citations CitationSource) *Engine {
	if citations == nil {
		citations = DisabledCitations{}
	}
	return &Engine{
		tables:    tables,
		citations: citations,
	}
}

// Enrich returns a copy of the paper with venue fields populated when a
// known venue matches, and the citation count filled in when the configured
// source knows it. The input is never mutated.
func (e *Engine) Enrich(ctx context.Context, p model.Paper) model.Paper {
	text := strings.ToUpper(p.Title) + " " + strings.ToUpper(p.Abstract)

	if rule, venueType, ok := e.matchVenue(text); ok {
		p.Venue = rule.Abbr
		p.VenueType = venueType
		p.CCFGrade = rule.CCF
		p.IsPrestigious = rule.Prestigious || rule.CCF == model.CCFGradeA
	}

	if p.CitationCount == nil {
		if count, ok := e.citations.Count(ctx, p); ok {
			p.CitationCount = &count
		}
	}

	return p
}

// EnrichAll enriches a batch, preserving order.
func (e *Engine) EnrichAll(ctx context.Context, papers []model.Paper) []model.Paper {
	out := make([]model.Paper, 0, len(papers))
	for _, p := range papers {
		out = append(out, e.Enrich(ctx, p))
	}
	return out
}

func (e *Engine) matchVenue(upperText string) (model.VenueRule, model.VenueType, bool) {
	for _, rule := range e.tables.Conferences {
		if ruleMatches(rule, upperText) {
			return rule, model.VenueConference, true
		}
	}
	for _, rule := range e.tables.Journals {
		if ruleMatches(rule, upperText) {
			return rule, model.VenueJournal, true
		}
	}
	return model.VenueRule{}, "", false
}

func ruleMatches(rule model.VenueRule, upperText string) bool {
	if strings.Contains(upperText, strings.ToUpper(rule.Abbr)) {
		return true
	}
	for _, alias := range rule.Aliases {
		if strings.Contains(upperText, strings.ToUpper(alias)) {
			return true
		}
	}
	return false
}
