package recommend

import (
	"strconv"
	"strings"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	"github.com/felixgeelhaar/homewhisper/internal/interview"
)

// Phrase tables map option values to the wording used in result summaries.
var (
	locationPhrases = map[string]string{
		"downtown": "downtown areas",
		"suburbs":  "suburban communities",
		"rural":    "rural settings",
	}
	buildingAgePhrases = map[string]string{
		"new":    "newly constructed",
		"medium": "moderately aged",
		"old":    "established, older",
	}
	featurePhrases = map[string]string{
		"garden":  "private outdoor space",
		"parking": "dedicated parking",
		"smart":   "smart home technology",
		"pool":    "swimming facilities",
	}
	demographicPhrases = map[string]string{
		"young":    "young professionals",
		"families": "family households",
		"seniors":  "senior residents",
	}
	householdPhrases = map[string]string{
		"singles":  "predominantly single residents",
		"couples":  "couples without children",
		"families": "families with children",
		"mixed":    "a mix of different household types",
	}
	importancePhrases = map[int]string{
		1: "not very important",
		2: "slightly important",
		3: "moderately important",
		4: "quite important",
		5: "extremely important",
	}
	amenityPhrases = map[string]string{
		"restaurants": "dining options",
		"malls":       "shopping centers",
		"parks":       "parks and recreation areas",
		"schools":     "educational institutions",
		"gyms":        "fitness facilities",
	}
	developmentPhrases = map[string]string{
		"yes":     "comfortable with",
		"limited": "accepting of limited",
		"no":      "not interested in",
	}
	transportPhrases = map[string]string{
		"subway": "subway/metro lines",
		"bus":    "bus routes",
		"bike":   "bike paths",
		"car":    "car-friendly infrastructure",
		"walk":   "walkable streets",
	}
	transportImportancePhrases = map[string]string{
		"very":     "very important",
		"somewhat": "somewhat important",
		"not":      "not a priority",
	}
	smartFeaturePhrases = map[string]string{
		"thermostat": "climate control systems",
		"security":   "security monitoring",
		"lights":     "automated lighting",
		"voice":      "voice control assistants",
		"appliances": "connected appliances",
	}
	futureProofPhrases = map[string]string{
		"fully":   "fully prepared",
		"partial": "somewhat ready",
		"basic":   "equipped with basic capabilities",
	}
)

// FormatCurrency renders a budget, or "your budget" when none was given.
func FormatCurrency(v float64, ok bool) string {
	if !ok || v == 0 {
		return "your budget"
	}
	return interview.FormatCurrency(v)
}

// FormatImportance maps a 1-5 rating to words.
func FormatImportance(v float64, ok bool) string {
	if !ok || v == 0 {
		return "somewhat important"
	}
	if v == float64(int(v)) {
		if p, found := importancePhrases[int(v)]; found {
			return p
		}
	}
	return "important"
}

// FormatLocation describes the preferred location.
func FormatLocation(v string) string { return lookup(locationPhrases, v, "various locations") }

// FormatBuildingAge describes the preferred building age.
func FormatBuildingAge(v string) string { return lookup(buildingAgePhrases, v, "") }

// FormatFeatures lists the desired home features.
func FormatFeatures(vs []string) string { return list(featurePhrases, vs, "various amenities") }

// FormatDemographics lists the preferred age groups.
func FormatDemographics(vs []string) string {
	return list(demographicPhrases, vs, "a diverse population")
}

// FormatHouseholdType describes the preferred household mix.
func FormatHouseholdType(v string) string {
	return lookup(householdPhrases, v, "various household compositions")
}

// FormatAmenities lists the desired nearby amenities.
func FormatAmenities(vs []string) string { return list(amenityPhrases, vs, "various local amenities") }

// FormatDevelopmentComfort describes the tolerance for construction.
func FormatDevelopmentComfort(v string) string {
	return lookup(developmentPhrases, v, "selective about")
}

// FormatTransportation lists the needed transport modes.
func FormatTransportation(vs []string) string {
	return list(transportPhrases, vs, "various transportation options")
}

// FormatTransportImportance describes how much planned transit matters.
func FormatTransportImportance(v string) string {
	return lookup(transportImportancePhrases, v, "a consideration")
}

// FormatSmartFeatures lists the smart home features of interest.
func FormatSmartFeatures(vs []string) string {
	return list(smartFeaturePhrases, vs, "various smart technologies")
}

// FormatFutureProof describes the desired tech readiness.
func FormatFutureProof(v string) string { return lookup(futureProofPhrases, v, "adaptable") }

func lookup(table map[string]string, v, fallback string) string {
	if p, ok := table[v]; ok {
		return p
	}
	return fallback
}

// list maps each value through table, keeping unknown values verbatim.
func list(table map[string]string, vs []string, fallback string) string {
	if len(vs) == 0 {
		return fallback
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		if p, ok := table[v]; ok {
			out[i] = p
		} else {
			out[i] = v
		}
	}
	return strings.Join(out, ", ")
}

func choice(answers domain.AnswerSet, id string) string {
	v, _ := answers[id].Choice()
	return v
}

func values(answers domain.AnswerSet, id string) []string {
	v, _ := answers[id].Values()
	return v
}

func number(answers domain.AnswerSet, id string) (float64, bool) {
	return answers[id].Number()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
