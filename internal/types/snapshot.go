package types

// NameCount is a single row of a frequency table.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PairCount is the co-occurrence count for an unordered skill pair.
// Pairs are stored once under canonical ordering: First < Second.
type PairCount struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Count  int    `json:"count"`
}

// MarketSnapshot is an ephemeral aggregate view of the current dataset.
// It is recomputed on every load and never persisted.
type MarketSnapshot struct {
	Total          int                    `json:"total"`
	Companies      []NameCount            `json:"companies"`
	TopSkills      []NameCount            `json:"top_skills"`
	SkillsByDomain map[Domain][]NameCount `json:"skills_by_domain"`
	SkillPairs     []PairCount            `json:"skill_pairs"`
	Categories     []NameCount            `json:"categories"`
	Domains        []NameCount            `json:"domains"`
}
