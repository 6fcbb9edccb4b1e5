package ingredients

import "slices"

// DefaultThreshold is the fuzzy score at which two names are considered the
// same ingredient.
const DefaultThreshold = 85

// Mention is one occurrence of an ingredient in a recipe, as supplied by the
// extraction collaborator. Quantity zero means "unspecified amount".
type Mention struct {
	RawName        string  `json:"raw_name"`
	NormalizedName string  `json:"normalized_name"`
	Quantity       float64 `json:"quantity"`
	RawUnit        string  `json:"raw_unit"`
	RecipeRef      string  `json:"recipe_ref"`
}

// Group collects mentions judged to be the same ingredient. The canonical
// name is the first-seen normalized mention; groups are never merged or
// re-clustered after creation.
type Group struct {
	Canonical  string
	Members    []Mention
	RecipeRefs []string
}

func (g *Group) add(m Mention) {
	g.Members = append(g.Members, m)
	if m.RecipeRef != "" && !slices.Contains(g.RecipeRefs, m.RecipeRef) {
		g.RecipeRefs = append(g.RecipeRefs, m.RecipeRef)
	}
}

// Grouper clusters mentions in arrival order. Each mention is compared only
// against the canonical name of each existing group, never against every
// member. That keeps group counts predictable but means membership is not
// transitive; that trade-off is intentional and relied on downstream, so
// don't "fix" it here.
type Grouper struct {
	resolver  *Resolver
	threshold int
	groups    []*Group
}

func NewGrouper(resolver *Resolver, threshold int) *Grouper {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Grouper{resolver: resolver, threshold: threshold}
}

// Assign places the mention in the best-matching existing group, or creates
// a new one. Synonym-class equality with a canonical name wins immediately
// over any fuzzy score; otherwise the highest-scoring group at or above the
// threshold wins, earliest group first on ties.
func (g *Grouper) Assign(m Mention) *Group {
	if m.NormalizedName == "" {
		m.NormalizedName = Normalize(m.RawName)
	}

	best := -1
	bestScore := 0
	for i, grp := range g.groups {
		if g.resolver.SameClass(m.NormalizedName, grp.Canonical) {
			grp.add(m)
			return grp
		}
		if score := Similarity(m.NormalizedName, grp.Canonical); score >= g.threshold && score > bestScore {
			best, bestScore = i, score
		}
	}

	if best >= 0 {
		g.groups[best].add(m)
		return g.groups[best]
	}

	grp := &Group{Canonical: m.NormalizedName}
	grp.add(m)
	g.groups = append(g.groups, grp)
	return grp
}

// Groups returns all groups in creation order.
func (g *Grouper) Groups() []*Group {
	return g.groups
}
