package brief

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// otherBucket collects observations whose topic is not in the
// configured topic list.
const otherBucket = "Other"

// Generator renders briefs from a fixed configuration.
type Generator struct {
	cfg Config

	// now is swappable for tests.
	now func() time.Time
}

// New builds a Generator around the given configuration.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg, now: time.Now}
}

// Assessment is the evaluation attached to one observation.
type Assessment struct {
	Observation Observation
	Impact      string // "positive", "negative", or "mixed/unclear"
	SignalScore int    // 0..5
	Reason      string
}

// Bootstrap renders the research scope, priority sources, watchlists,
// and the daily workflow checklist. Pure formatting.
func (g *Generator) Bootstrap() string {
	var b strings.Builder
	b.WriteString("Financial Analysis AI Agent - Daily Bootstrap\n\n")

	b.WriteString("Tracked topics:\n")
	for _, topic := range g.cfg.Topics {
		fmt.Fprintf(&b, "- %s\n", topic)
	}

	b.WriteString("\nPriority source set:\n")
	for _, src := range g.cfg.Sources {
		fmt.Fprintf(&b, "- %s\n", src)
	}

	b.WriteString("\nMajor companies to monitor:\n")
	for _, topic := range g.cfg.Topics {
		if companies, ok := g.cfg.Watchlist[topic]; ok {
			fmt.Fprintf(&b, "- %s: %s\n", topic, strings.Join(companies, ", "))
		}
	}

	b.WriteString("\nWorkflow:\n")
	b.WriteString("1) Collect 3-8 high-signal observations per topic from x.com + financial press.\n")
	b.WriteString("2) Reject rumor-only claims without filings, contracts, guidance, or regulator actions.\n")
	b.WriteString("3) Classify impact: positive / negative / mixed.\n")
	b.WriteString("4) Rank by signal strength and opportunity cost.\n")
	b.WriteString("5) Produce a short watchlist and what to ignore.")
	return b.String()
}

// Analyze groups observations by topic and renders one bullet per
// observation, prioritized sources first within each topic. Unknown
// topics land in the Other bucket; unknown companies are reported,
// never dropped.
func (g *Generator) Analyze(observations []Observation) string {
	now := g.now().UTC().Format("2006-01-02 15:04 UTC")
	var b strings.Builder
	fmt.Fprintf(&b, "Daily Frontier Research Brief (%s)\n\n", now)
	b.WriteString("Principles: skeptical, concise, capital-scarce, opportunity-cost aware.\n")

	if len(observations) == 0 {
		b.WriteString("\nNo observations supplied.")
		return b.String()
	}

	buckets := g.group(observations)
	for _, topic := range append(append([]string{}, g.cfg.Topics...), otherBucket) {
		items, ok := buckets[topic]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", topic)
		for _, a := range items {
			obs := a.Observation
			fmt.Fprintf(&b, "- %s -> %s (signal %d/5)\n", obs.Company, strings.ToUpper(a.Impact), a.SignalScore)
			fmt.Fprintf(&b, "  Why: %s.\n", a.Reason)
			fmt.Fprintf(&b, "  Source: %s (%s)\n", obs.Source, obs.URL)
		}
	}

	b.WriteString("\nAction filter:\n")
	b.WriteString("- Focus only on items with signal >=3 and clear positive/negative direction.\n")
	b.WriteString("- Ignore narrative-only items without earnings, regulation, supply, or contract implications.")
	return b.String()
}

// group assesses each observation and buckets the results by topic,
// ordered by source priority (unprioritized sources last), ties
// broken by signal score descending.
func (g *Generator) group(observations []Observation) map[string][]Assessment {
	known := make(map[string]bool, len(g.cfg.Topics))
	for _, t := range g.cfg.Topics {
		known[t] = true
	}

	buckets := make(map[string][]Assessment)
	for _, obs := range observations {
		topic := obs.Topic
		if !known[topic] {
			topic = otherBucket
		}
		buckets[topic] = append(buckets[topic], g.Assess(obs))
	}

	for topic, items := range buckets {
		sort.SliceStable(items, func(i, j int) bool {
			ri, rj := g.sourceRank(items[i].Observation.Source), g.sourceRank(items[j].Observation.Source)
			if ri != rj {
				return ri < rj
			}
			return items[i].SignalScore > items[j].SignalScore
		})
		buckets[topic] = items
	}
	return buckets
}

// Assess classifies the impact of one observation and scores its
// signal strength.
func (g *Generator) Assess(obs Observation) Assessment {
	impact, impactReason := g.classifyImpact(obs.Summary)
	score, signalReason := g.signalScore(obs.Summary, obs.Source)
	return Assessment{
		Observation: obs,
		Impact:      impact,
		SignalScore: score,
		Reason:      impactReason + "; " + signalReason,
	}
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// classifyImpact compares positive vs negative cue hits in a summary.
func (g *Generator) classifyImpact(summary string) (impact, reason string) {
	text := normalize(summary)
	var posHits, negHits []string
	for _, cue := range g.cfg.PositiveCues {
		if strings.Contains(text, cue) {
			posHits = append(posHits, cue)
		}
	}
	for _, cue := range g.cfg.NegativeCues {
		if strings.Contains(text, cue) {
			negHits = append(negHits, cue)
		}
	}
	switch {
	case len(posHits) > len(negHits):
		return "positive", "positive cues: " + strings.Join(posHits, ", ")
	case len(negHits) > len(posHits):
		return "negative", "negative cues: " + strings.Join(negHits, ", ")
	default:
		return "mixed/unclear", "insufficient directional evidence"
	}
}

// signalScore rewards hard catalysts in the summary (capped at 3)
// plus source quality: +1 for the fast-signal source, +2 for a
// prioritized financial press source.
func (g *Generator) signalScore(summary, source string) (score int, reason string) {
	text := normalize(summary)
	var reasons []string

	var cueHits []string
	for _, cue := range g.cfg.HighSignalCues {
		if strings.Contains(text, cue) {
			cueHits = append(cueHits, cue)
		}
	}
	if len(cueHits) > 0 {
		n := len(cueHits)
		if n > 3 {
			n = 3
		}
		score += n
		reasons = append(reasons, "hard catalysts: "+strings.Join(cueHits, ", "))
	}

	if rank := g.sourceRank(source); rank < len(g.cfg.Sources) {
		if strings.Contains(sourceKeyword(g.cfg.Sources[rank]), "x.com") {
			score++
			reasons = append(reasons, "fast signal source (x.com)")
		} else {
			score += 2
			reasons = append(reasons, "high-credibility financial source")
		}
	}

	if len(reasons) == 0 {
		return score, "limited specificity"
	}
	return score, strings.Join(reasons, "; ")
}

// sourceRank returns the priority index of the first configured
// source matching the observation's source string, or len(Sources)
// when nothing matches.
func (g *Generator) sourceRank(source string) int {
	s := normalize(source)
	for i, src := range g.cfg.Sources {
		if strings.Contains(s, sourceKeyword(src)) {
			return i
		}
	}
	return len(g.cfg.Sources)
}

// sourceKeyword reduces a configured source URL to the token matched
// against observation source strings: the host label for long names
// ("reuters", "bloomberg"), the full host for short ones ("x.com",
// "ft.com").
func sourceKeyword(src string) string {
	host := normalize(src)
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimSuffix(strings.SplitN(host, "/", 2)[0], "/")
	host = strings.TrimPrefix(host, "www.")
	label := strings.SplitN(host, ".", 2)[0]
	if len(label) <= 2 {
		return host
	}
	return label
}
