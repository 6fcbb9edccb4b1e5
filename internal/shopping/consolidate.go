package shopping

import (
	"context"
	"log/slog"

	"plateplanner/internal/ingredients"
	"plateplanner/internal/units"
)

// Consolidator sums a group's quantities into per-dimension subtotals. The
// conversion strategy is fixed at construction: full conversion via the
// factor tables, or exact-unit-only sums when the tables are unavailable.
type Consolidator struct {
	converter *units.Converter
}

// NewConsolidator consolidates with full cross-unit conversion.
func NewConsolidator(converter *units.Converter) *Consolidator {
	return &Consolidator{converter: converter}
}

// NewExactUnitConsolidator consolidates without converting: quantities are
// summed only within the same exact unit. This is the degraded mode used
// when the factor table's backing resource is unavailable; the list is
// still produced, just with more and smaller subtotals.
func NewExactUnitConsolidator() *Consolidator {
	return &Consolidator{}
}

// Degraded reports whether this consolidator runs without conversion.
func (c *Consolidator) Degraded() bool {
	return c.converter == nil
}

type partition struct {
	dimension units.Dimension
	token     string // set for unknown-dimension and exact-unit partitions
	mentions  []ingredients.Mention
	unitOf    []units.Unit
}

// Consolidate produces the ordered subtotals for a group's members.
// Mentions are partitioned by dimension; within a dimension everything is
// converted into the partition's most frequent unit (first-seen wins ties)
// and summed. Unknown units are never summed across distinct raw tokens.
// Zero quantities count as "unspecified" and are excluded from sums.
func (c *Consolidator) Consolidate(ctx context.Context, members []ingredients.Mention) []Subtotal {
	if len(members) == 0 {
		return nil
	}

	parts := c.partition(members)

	subtotals := make([]Subtotal, 0, len(parts))
	for _, p := range parts {
		subtotals = append(subtotals, c.sum(ctx, p))
	}
	return subtotals
}

func (c *Consolidator) partition(members []ingredients.Mention) []*partition {
	var parts []*partition
	index := make(map[string]*partition)

	for _, m := range members {
		u := units.Normalize(m.RawUnit)

		// One partition per dimension, except unknown and degraded
		// mode, which partition per exact unit token.
		key := string(u.Dimension)
		token := ""
		if u.Dimension == units.Unknown || c.Degraded() {
			key = string(u.Dimension) + "/" + u.Token
			token = u.Token
		}

		p, ok := index[key]
		if !ok {
			p = &partition{dimension: u.Dimension, token: token}
			index[key] = p
			parts = append(parts, p)
		}
		p.mentions = append(p.mentions, m)
		p.unitOf = append(p.unitOf, u)
	}
	return parts
}

func (c *Consolidator) sum(ctx context.Context, p *partition) Subtotal {
	display := p.displayUnit()

	var total float64
	for i, m := range p.mentions {
		if m.Quantity <= 0 {
			continue
		}
		u := p.unitOf[i]
		if u.Token == display.Token {
			total += m.Quantity
			continue
		}
		converted, err := c.converter.Convert(m.Quantity, u, display)
		if err != nil {
			// Same dimension, so only a missing factor gets here.
			slog.WarnContext(ctx, "skipping unconvertible quantity",
				"ingredient", m.RawName, "unit", u.Token, "target", display.Token)
			continue
		}
		total += converted
	}

	return Subtotal{Dimension: display.Dimension, Unit: display.Token, Amount: total}
}

// displayUnit picks the unit the partition's total is expressed in: the most
// frequent unit, ties broken by the unit seen first.
func (p *partition) displayUnit() units.Unit {
	if p.token != "" || len(p.unitOf) == 1 {
		return p.unitOf[0]
	}

	counts := make(map[string]int)
	for _, u := range p.unitOf {
		counts[u.Token]++
	}

	best := p.unitOf[0]
	for _, u := range p.unitOf[1:] {
		if counts[u.Token] > counts[best.Token] {
			best = u
		}
	}
	return best
}
