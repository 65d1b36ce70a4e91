package scoring

import (
	"strings"

	"sohoconnect/models"
)

// Subscore bands. Total is always the sum of the four components.
const (
	budgetMax    = 30
	authorityMax = 25
	needMax      = 25
	timelineMax  = 20
)

// budgetRanges maps explicit budget brackets to points (0-30). Alternative
// formats are accepted for flexibility with older forms.
var budgetRanges = map[string]int{
	"under-500":  5,
	"500-1000":   10,
	"1000-2500":  18,
	"2500-5000":  25,
	"over-5000":  30,
	"low":        5,
	"medium":     15,
	"high":       30,
	"enterprise": 30,
}

// authorityLevels maps role enums to points (0-25).
var authorityLevels = map[string]int{
	"owner":          25,
	"ceo":            25,
	"founder":        25,
	"decision-maker": 25,
	"director":       22,
	"head":           22,
	"manager":        18,
	"influencer":     15,
	"staff":          10,
	"researcher":     5,
	"other":          8,
}

// timelineUrgency maps timeline brackets to points (0-20).
var timelineUrgency = map[string]int{
	"urgent":     20,
	"asap":       20,
	"immediate":  20,
	"this-week":  20,
	"soon":       15,
	"this-month": 15,
	"month":      10,
	"next-month": 10,
	"1-3-months": 10,
	"planning":   5,
	"exploring":  3,
	"someday":    3,
}

// urgencyKeywords are scanned in free text for need scoring. Ordered so
// repeated signals add with diminishing returns.
var urgencyKeywords = []string{
	"urgent", "asap", "immediately", "deadline", "this week", "right away", "launch",
}

// Missing optional inputs fall back to the lowest band rather than erroring.
const (
	budgetDefault    = 5
	authorityDefault = 5 // unrecognized roles fail open, not closed
	timelineDefault  = 3
)

// CalculateBANT scores a single lead submission. It is pure: each submission
// is scored independently with no stored prior state, and it is total over
// its input domain.
func CalculateBANT(data models.QuoteFormData) models.BANTScore {
	budget := scoreBudget(data.Budget)
	authority := scoreAuthority(data.Authority, data.JobTitle)
	need := scoreNeed(len(data.Services), data.AdditionalNotes+" "+data.ProjectDescription)
	timeline := scoreTimeline(data.Timeline)

	total := budget + authority + need + timeline
	total = clamp(total, 0, 100)

	return models.BANTScore{
		Budget:    budget,
		Authority: authority,
		Need:      need,
		Timeline:  timeline,
		Total:     total,
		Tier:      TierFor(total),
	}
}

func scoreBudget(budget string) int {
	if budget == "" {
		return budgetDefault
	}
	if pts, ok := budgetRanges[strings.ToLower(budget)]; ok {
		return clamp(pts, 0, budgetMax)
	}
	return budgetDefault
}

func scoreAuthority(authority, jobTitle string) int {
	pts := 0
	if authority != "" {
		if v, ok := authorityLevels[strings.ToLower(authority)]; ok {
			pts = v
		}
	}

	// A job title can only raise the score, never lower an explicit enum.
	if jobTitle != "" {
		title := strings.ToLower(jobTitle)
		switch {
		case strings.Contains(title, "ceo") || strings.Contains(title, "owner") || strings.Contains(title, "founder"):
			pts = max(pts, 25)
		case strings.Contains(title, "director") || strings.Contains(title, "head"):
			pts = max(pts, 22)
		case strings.Contains(title, "manager"):
			pts = max(pts, 18)
		}
	}

	if pts == 0 {
		pts = authorityDefault
	}
	return clamp(pts, 0, authorityMax)
}

// scoreNeed combines the service count with urgency signals in free text.
// Both contributions are monotone with diminishing returns and the result
// is capped at the band maximum.
func scoreNeed(serviceCount int, freeText string) int {
	pts := serviceCount * 5
	if pts > 15 {
		pts = 15
	}

	text := strings.ToLower(freeText)
	bonus := []int{5, 3, 2} // first keyword counts most
	hits := 0
	for _, kw := range urgencyKeywords {
		if strings.Contains(text, kw) {
			if hits < len(bonus) {
				pts += bonus[hits]
			}
			hits++
		}
	}

	return clamp(pts, 0, needMax)
}

func scoreTimeline(timeline string) int {
	if timeline == "" {
		return timelineDefault
	}
	if pts, ok := timelineUrgency[strings.ToLower(timeline)]; ok {
		return clamp(pts, 0, timelineMax)
	}
	return timelineDefault
}

// TierFor maps a total score to a lead tier. Boundaries: hot >= 70,
// warm 40-69, cold < 40. No hysteresis.
func TierFor(total int) models.LeadTier {
	switch {
	case total >= 70:
		return models.TierHot
	case total >= 40:
		return models.TierWarm
	default:
		return models.TierCold
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
