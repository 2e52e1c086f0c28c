package statcalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ocbot/utils"
)

const (
	speciesSizeCutoff = 90

	metersPerInch = 0.0254
	metersPerFoot = 0.3048
)

// speciesHeights is the canonical adult height per species, in meters.
var speciesHeights = map[string]float64{
	"Eevee":    0.3,
	"Vaporeon": 1.0,
	"Jolteon":  0.8,
	"Flareon":  0.9,
	"Espeon":   0.9,
	"Umbreon":  1.0,
	"Leafeon":  1.0,
	"Glaceon":  0.8,
	"Sylveon":  1.0,
}

// SpeciesHeight resolves a species via fuzzy match and returns its
// canonical height in meters.
func SpeciesHeight(argument string) (float64, string, bool) {
	match, ok := utils.BestFuzzyMatch(argument, speciesOrder, speciesSizeCutoff)
	if !ok {
		return 0, "", false
	}
	name := speciesOrder[match.Index]
	return speciesHeights[name], name, true
}

// ParseSize converts a free-form height argument to meters. Accepted
// forms: a species name (fuzzy), feet-and-inches (5'11", 5 ft 11),
// bare inches (71"), or meters (1.8, 1.8m).
func ParseSize(argument string) (float64, error) {
	argument = strings.TrimSpace(argument)
	if argument == "" {
		return 0, fmt.Errorf("invalid size string: %s", argument)
	}

	if height, _, ok := SpeciesHeight(argument); ok {
		return height, nil
	}

	if strings.Contains(argument, "'") || strings.Contains(argument, "ft") {
		return parseFeetInches(argument)
	}

	if strings.Contains(argument, `"`) {
		inches, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(argument, `"`, "")), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid size string: %s", argument)
		}
		return inches * metersPerInch, nil
	}

	meters, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(argument, "m")), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size string: %s", argument)
	}
	return meters, nil
}

func parseFeetInches(argument string) (float64, error) {
	var feetPart, inchPart string
	switch {
	case strings.Contains(argument, "'"):
		parts := strings.SplitN(argument, "'", 2)
		feetPart, inchPart = parts[0], parts[1]
	case strings.Contains(argument, "ft"):
		parts := strings.SplitN(argument, "ft", 2)
		feetPart, inchPart = parts[0], parts[1]
	}

	feet, err := strconv.ParseFloat(strings.TrimSpace(feetPart), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size string: %s", argument)
	}

	inches := 0.0
	inchPart = strings.TrimSpace(strings.ReplaceAll(inchPart, `"`, ""))
	inchPart = strings.TrimSpace(strings.TrimSuffix(inchPart, "in"))
	if inchPart != "" {
		inches, err = strconv.ParseFloat(inchPart, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid size string: %s", argument)
		}
	}

	return (feet*12 + inches) * metersPerInch, nil
}

// FormatFeetInches renders meters as a conventional height, e.g. 5'11".
func FormatFeetInches(meters float64) string {
	totalInches := meters / metersPerInch
	feet := int(totalInches) / 12
	inches := int(math.Round(totalInches)) % 12
	if math.Round(totalInches) >= float64((feet+1)*12) {
		feet++
		inches = 0
	}
	return fmt.Sprintf(`%d'%d"`, feet, inches)
}
