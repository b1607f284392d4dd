// Package recommend produces the canned result content shown after a
// section is submitted and the mock area comparison shown for all answers.
// Nothing here scores real listings; the text is fixed and only the phrases
// describing the user's choices vary.
package recommend

import (
	"fmt"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
)

// SectionResult is the results page for one submitted section.
type SectionResult struct {
	Section        domain.Section `json:"section" yaml:"section"`
	Title          string         `json:"title" yaml:"title"`
	Summary        string         `json:"summary" yaml:"summary"`
	Recommendation string         `json:"recommendation" yaml:"recommendation"`
}

// ForSection builds the results page for section from its answers.
func ForSection(section domain.Section, answers domain.AnswerSet) SectionResult {
	r := SectionResult{Section: section}

	switch section {
	case domain.SectionBasic:
		budget, ok := number(answers, "budget")
		r.Title = "Your Ideal Home Profile"
		r.Summary = fmt.Sprintf("Based on your budget of %s and preference for %s, we've analyzed the best options for you. You're looking for a %s property with features like %s.",
			FormatCurrency(budget, ok),
			FormatLocation(choice(answers, "location")),
			FormatBuildingAge(choice(answers, "buildingAge")),
			FormatFeatures(values(answers, "features")))
		r.Recommendation = "We recommend exploring properties in the northern part of the Downtown area, where you'll find the best mix of your desired features within your budget range. These properties typically offer good value retention and match your preference for amenities."

	case domain.SectionDemographics:
		r.Title = "Neighborhood Demographics"
		r.Summary = fmt.Sprintf("You're interested in areas with %s and prefer neighborhoods with %s. The demographic projections are %s to you.",
			FormatDemographics(values(answers, "ageGroups")),
			FormatHouseholdType(choice(answers, "householdType")),
			FormatImportance(number(answers, "futureProjections")))
		r.Recommendation = "Based on your preferences, the Riverdale district would be an excellent match. It has a growing population of your preferred demographic groups and is projected to maintain this trend over the next 20 years according to city planning data."

	case domain.SectionConstruction:
		r.Title = "Development & Green Space"
		r.Summary = fmt.Sprintf("Access to green spaces is %s for you, and you want to be near amenities like %s. You've indicated that you're %s with ongoing construction.",
			FormatImportance(number(answers, "greenSpace")),
			FormatAmenities(values(answers, "amenities")),
			FormatDevelopmentComfort(choice(answers, "development")))
		r.Recommendation = "The Westgate area matches your preferences well. It has extensive parks and green spaces, while also featuring your desired amenities. The area has a moderate amount of planned development that shouldn't be disruptive based on your comfort level with construction."

	case domain.SectionTransportation:
		commute := "an unspecified number of"
		if v, ok := number(answers, "commuteTime"); ok {
			commute = formatNumber(v)
		}
		r.Title = "Mobility & Transportation"
		r.Summary = fmt.Sprintf("You need access to %s and prefer a maximum commute time of %s minutes. Future transportation improvements are %s to you.",
			FormatTransportation(values(answers, "transportTypes")),
			commute,
			FormatTransportImportance(choice(answers, "futureTransport")))
		r.Recommendation = "The Oakridge neighborhood offers excellent transportation options matching your preferences. The area is well-connected with your preferred transit types and has several planned improvements that will further enhance mobility in the coming years."

	case domain.SectionSmartHome:
		r.Title = "Smart Home Technology Profile"
		r.Summary = fmt.Sprintf("You're interested in smart home features like %s and rate the importance of smart technology as %s. You want a home that's %s for future technology.",
			FormatSmartFeatures(values(answers, "smartFeatures")),
			FormatImportance(number(answers, "smartImportance")),
			FormatFutureProof(choice(answers, "futureProof")))
		r.Recommendation = "The newly developed TechRidge properties would be perfect for your smart home preferences. These homes come with many of your desired features pre-installed and have infrastructure ready for future upgrades. The neighborhood also has advanced fiber connectivity and smart city initiatives."

	default:
		r.Title = "Your Results"
		r.Summary = "Thank you for sharing your preferences with us."
		r.Recommendation = "Based on your selections, we've compiled some initial recommendations. For more detailed insights, please contact our specialists."
	}

	return r
}

// ForProgress builds the results page of every completed section in menu
// order.
func ForProgress(progress domain.ProgressTable) []SectionResult {
	var out []SectionResult
	for _, s := range domain.DataSections() {
		p := progress[s]
		if !p.Completed {
			continue
		}
		out = append(out, ForSection(s, p.Answers))
	}
	return out
}
