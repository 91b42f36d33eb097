package seed

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// Categories are the business categories with their base score bands
var Categories = []struct {
	Name     string
	Min, Max int
}{
	{"electricians", 70, 100},
	{"plumbers", 65, 95},
	{"painters", 50, 85},
	{"carpenters", 60, 90},
	{"hvac_technicians", 75, 100},
	{"landscapers", 40, 75},
	{"roofers", 55, 85},
	{"masons", 60, 90},
	{"plumbing_contractors", 70, 100},
	{"electrical_contractors", 72, 100},
	{"general_contractors", 65, 95},
	{"welders", 68, 98},
	{"auto_mechanics", 55, 85},
	{"locksmiths", 50, 80},
}

// SizeModifiers shift the category score per company size
var SizeModifiers = []struct {
	Size string
	Mod  int
}{
	{"small", -15},
	{"medium", -5},
	{"large", 5},
	{"enterprise", 15},
}

// EventTypes double as daily score contexts
var EventTypes = []string{
	"LOGIN", "BID_SUBMITTED", "JOB_ACCEPTED", "SELF_PURCHASE_CANCEL",
	"INVOICE_DOWNLOAD", "TENDER_DELETE", "INACTIVE_30D",
}

// Columns per table, matching the generated row layout
var (
	BusinessColumns = []string{"business_id", "business_name", "company_id", "category", "company_size", "score", "created_at"}
	DailyColumns    = []string{"day", "company_id", "user_id", "score_context", "total_points", "decay_points", "events_count"}
	ChurnColumns    = []string{"company_id", "event_time", "event_type", "score_points", "total_score"}
)

// Generator produces synthetic rows from its own random source; not safe for concurrent use
type Generator struct {
	rnd *rand.Rand
	now time.Time
}

// NewGenerator seeds a generator; equal seeds and stream ids give equal rows
func NewGenerator(seed, stream uint64, now time.Time) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, stream)), now: now}
}

// between returns an int in [lo, hi]
func (g *Generator) between(lo, hi int) int { return lo + g.rnd.IntN(hi-lo+1) }

// BusinessScore builds one business_scores row.
// score = category band + size modifier, clamped to [-100, 100], with a 5% chance of a 20..50 penalty
func (g *Generator) BusinessScore(id uint64, companies int) []any {
	cat := Categories[g.rnd.IntN(len(Categories))]
	size := SizeModifiers[g.rnd.IntN(len(SizeModifiers))]

	score := clamp(g.between(cat.Min, cat.Max)+size.Mod, -100, 100)
	if g.between(1, 100) <= 5 {
		score = max(-100, score-g.between(20, 50))
	}

	daysAgo := g.between(0, 60)
	created := g.now.Add(-time.Duration(daysAgo)*24*time.Hour - time.Duration(g.rnd.IntN(86400))*time.Second).
		UTC().Truncate(time.Second)

	return []any{
		id,
		"Business " + strconv.FormatUint(id, 10),
		uint32(g.between(1, companies)),
		cat.Name,
		size.Size,
		int16(score),
		created,
	}
}

// DailyScores builds one row per company and context for day.
// Companies in the first churnShare of ids only lose points
func (g *Generator) DailyScores(day time.Time, companies, users int, churnShare float64) [][]any {
	churnCut := int(float64(companies) * churnShare)
	out := make([][]any, 0, companies*len(EventTypes))
	for c := 1; c <= companies; c++ {
		for _, sc := range EventTypes {
			if g.rnd.IntN(3) == 0 {
				continue
			}
			events := g.between(1, 20)
			var total int64
			for range events {
				total += int64(Points(g.rnd, c <= churnCut, sc))
			}
			out = append(out, []any{
				day,
				uint32(c),
				uint64(g.between(1, users)),
				sc,
				total,
				-abs64(total) / 10,
				uint64(events),
			})
		}
	}
	return out
}

// ChurnEvent builds one churn_events row over the last year
func (g *Generator) ChurnEvent(companies int, churnCut int) []any {
	company := g.between(1, companies)
	event := EventTypes[g.rnd.IntN(len(EventTypes))]
	points := Points(g.rnd, company <= churnCut, event)
	return []any{
		uint32(company),
		g.now.Add(-time.Duration(g.rnd.IntN(365)*24) * time.Hour).UTC().Truncate(time.Second),
		event,
		int32(points),
		int64(points * g.between(1, 50)),
	}
}

// Points scores one event: churning companies only lose points, healthy ones only gain
func Points(rnd *rand.Rand, churn bool, event string) int {
	in := func(lo, hi int) int { return lo + rnd.IntN(hi-lo+1) }
	if churn {
		switch event {
		case "SELF_PURCHASE_CANCEL", "TENDER_DELETE", "INACTIVE_30D":
			return -in(10, 25)
		case "LOGIN", "BID_SUBMITTED":
			return -in(2, 12)
		default:
			return -in(1, 6)
		}
	}
	switch event {
	case "JOB_ACCEPTED":
		return in(15, 30)
	case "INVOICE_DOWNLOAD":
		return in(10, 20)
	case "LOGIN", "BID_SUBMITTED":
		return in(3, 13)
	default:
		return in(1, 6)
	}
}

func clamp(v, lo, hi int) int { return max(lo, min(hi, v)) }

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
