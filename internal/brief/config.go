// Package brief turns a list of research observations into a
// categorized, prioritized daily brief. Watchlists and source
// priorities are explicit configuration passed in at construction,
// scoped to a single invocation.
package brief

// Config holds the watchlists, source priorities, and cue sets the
// generator works from.
type Config struct {
	// Topics in the order they appear in the brief. Observations
	// with an unlisted topic land in an "Other" bucket at the end.
	Topics []string

	// Watchlist maps a topic to the companies monitored for it.
	// Observations about unlisted companies are still reported.
	Watchlist map[string][]string

	// Sources in priority order. Observations from unlisted sources
	// sort after all prioritized ones within their topic.
	Sources []string

	// Cue sets drive impact classification and signal scoring.
	PositiveCues   []string
	NegativeCues   []string
	HighSignalCues []string
}

// DefaultConfig returns the frontier-tech research scope.
func DefaultConfig() Config {
	return Config{
		Topics: []string{
			"AI software",
			"AI hardware",
			"AI infrastructure",
			"Space exploration",
			"Critical minerals",
			"Rare earth elements",
			"Robotics",
		},
		Watchlist: map[string][]string{
			"AI software":         {"Microsoft", "Alphabet", "Meta", "Adobe", "Salesforce", "Palantir"},
			"AI hardware":         {"NVIDIA", "AMD", "Intel", "TSMC", "ASML", "Samsung Electronics"},
			"AI infrastructure":   {"Amazon", "Microsoft", "Alphabet", "Oracle", "Arista Networks", "Vertiv"},
			"Space exploration":   {"Rocket Lab", "Boeing", "Northrop Grumman", "Lockheed Martin", "Maxar"},
			"Critical minerals":   {"Rio Tinto", "BHP", "Glencore", "Freeport-McMoRan", "MP Materials"},
			"Rare earth elements": {"MP Materials", "Lynas Rare Earths", "China Northern Rare Earth Group"},
			"Robotics":            {"ABB", "Fanuc", "Yaskawa", "Teradyne", "Rockwell Automation"},
		},
		Sources: []string{
			"https://x.com/",
			"https://www.reuters.com/",
			"https://www.bloomberg.com/",
			"https://www.ft.com/",
			"https://www.wsj.com/",
			"https://www.cnbc.com/",
		},
		PositiveCues: []string{
			"beats", "beat", "surge", "growth", "contract win", "expands",
			"approved", "funding secured", "margin expansion", "record revenue",
		},
		NegativeCues: []string{
			"miss", "delay", "lawsuit", "probe", "recall", "export ban",
			"downgrade", "cuts guidance", "cash burn", "dilution",
		},
		HighSignalCues: []string{
			"earnings", "guidance", "regulatory", "export control",
			"long-term contract", "production ramp", "capex",
			"supply agreement", "government award",
		},
	}
}
