// Package statcalc implements the stat-point and size calculators behind
// the flavor commands. Tables cover the Eeveelution line only.
package statcalc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"ocbot/utils"
)

const (
	speciesStatCutoff = 85
	kindCutoff        = 85
)

// StatNames orders the six stats the way the base tables do.
var StatNames = [6]string{"HP", "Attack", "Defense", "Sp. Attack", "Sp. Defense", "Speed"}

var speciesOrder = []string{
	"Eevee",
	"Vaporeon",
	"Jolteon",
	"Flareon",
	"Espeon",
	"Umbreon",
	"Leafeon",
	"Glaceon",
	"Sylveon",
}

var baseStats = map[string][6]float64{
	"Eevee":    {55, 55, 50, 45, 65, 55},
	"Vaporeon": {130, 65, 60, 110, 95, 65},
	"Jolteon":  {65, 65, 60, 110, 95, 130},
	"Flareon":  {65, 130, 60, 95, 110, 65},
	"Espeon":   {65, 65, 60, 130, 95, 110},
	"Umbreon":  {95, 65, 110, 60, 130, 65},
	"Leafeon":  {65, 110, 130, 60, 65, 95},
	"Glaceon":  {65, 60, 110, 130, 95, 65},
	"Sylveon":  {95, 65, 65, 110, 130, 60},
}

// Kind is a character tier; its value is the stat-point budget.
type Kind int

const (
	KindBasic           Kind = 11
	KindMiddle          Kind = 15
	KindFinal           Kind = 20
	KindHybridLegendary Kind = 25
	KindPureLegendary   Kind = 30
)

var kindOrder = []Kind{KindBasic, KindMiddle, KindFinal, KindHybridLegendary, KindPureLegendary}

var kindNames = map[Kind]string{
	KindBasic:           "Basic",
	KindMiddle:          "Middle",
	KindFinal:           "Final",
	KindHybridLegendary: "Hybrid Legendary",
	KindPureLegendary:   "Pure Legendary",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Points is the total stat-point budget for the tier.
func (k Kind) Points() int { return int(k) }

// Kinds lists the tiers from weakest to strongest.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// ParseKind fuzzy-matches an argument against the tier names.
func ParseKind(argument string) (Kind, error) {
	names := make([]string, len(kindOrder))
	for i, kind := range kindOrder {
		names[i] = kindNames[kind]
	}

	match, ok := utils.BestFuzzyMatch(argument, names, kindCutoff)
	if !ok {
		return 0, fmt.Errorf("invalid kind string: %s", argument)
	}
	return kindOrder[match.Index], nil
}

// SpeciesBaseStats resolves a species via fuzzy match and returns its base
// stat spread.
func SpeciesBaseStats(argument string) ([6]float64, string, bool) {
	match, ok := utils.BestFuzzyMatch(argument, speciesOrder, speciesStatCutoff)
	if !ok {
		return [6]float64{}, "", false
	}
	name := speciesOrder[match.Index]
	return baseStats[name], name, true
}

// ParseStatString accepts a species name (fuzzy) or six space-separated
// numbers. An empty argument means a flat spread.
func ParseStatString(argument string) ([6]float64, error) {
	if strings.TrimSpace(argument) != "" {
		if stats, _, ok := SpeciesBaseStats(argument); ok {
			return stats, nil
		}
	}

	fields := strings.Fields(argument)
	if len(fields) == 0 {
		return [6]float64{1, 1, 1, 1, 1, 1}, nil
	}
	if len(fields) != 6 {
		return [6]float64{}, fmt.Errorf("invalid stat string: %s", argument)
	}

	var stats [6]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return [6]float64{}, fmt.Errorf("invalid stat string: %s", argument)
		}
		if value <= 0 {
			return [6]float64{}, fmt.Errorf("stat values must be positive: %s", argument)
		}
		stats[i] = value
	}
	return stats, nil
}

// DistributePoints splits the tier's point budget across the six stats in
// proportion to the weights, largest remainder first, at least one point
// per stat.
func DistributePoints(weights [6]float64, kind Kind) [6]int {
	budget := kind.Points()

	var total float64
	for _, w := range weights {
		total += w
	}

	var points [6]int
	var fractions [6]float64

	assigned := 0
	for i, w := range weights {
		exact := float64(budget) * w / total
		points[i] = int(exact)
		fractions[i] = exact - float64(points[i])
		if points[i] < 1 {
			points[i] = 1
			fractions[i] = 0
		}
		assigned += points[i]
	}

	// Hand out what the truncation left over, biggest fraction first.
	// Ties fall back to table order, which keeps the result deterministic.
	order := []int{0, 1, 2, 3, 4, 5}
	sort.SliceStable(order, func(i, j int) bool {
		return fractions[order[i]] > fractions[order[j]]
	})
	for _, i := range order {
		if assigned >= budget {
			break
		}
		points[i]++
		assigned++
	}

	// Over-assignment happens when the minimum-one rule fires; claw back
	// from the largest buckets.
	for assigned > budget {
		largest := 0
		for i := range points {
			if points[i] > points[largest] {
				largest = i
			}
		}
		if points[largest] <= 1 {
			break
		}
		points[largest]--
		assigned--
	}

	return points
}

// FormatDistribution renders a point spread as "HP 3 / Attack 2 / ...".
func FormatDistribution(points [6]int) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%s %d", StatNames[i], p)
	}
	return strings.Join(parts, " / ")
}
