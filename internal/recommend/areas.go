package recommend

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
)

// Area is one mock neighborhood of the full recommendation.
type Area struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	KeyPoints   []string `json:"key_points" yaml:"key_points"`
	Score       int      `json:"score" yaml:"score"`

	AveragePrice   int      `json:"average_price" yaml:"average_price"`
	CommuteMinutes int      `json:"commute_minutes" yaml:"commute_minutes"`
	Access         string   `json:"access" yaml:"access"`
	Evenings       string   `json:"evenings" yaml:"evenings"`
	Development    string   `json:"development" yaml:"development"`
	Projects       []string `json:"projects" yaml:"projects"`
	InternetSpeed  string   `json:"internet_speed" yaml:"internet_speed"`
	TechReadiness  int      `json:"tech_readiness" yaml:"tech_readiness"`
}

// Metric is one axis of the area comparison chart, scored 0-100 per area.
type Metric struct {
	Name   string         `json:"name" yaml:"name"`
	Scores map[string]int `json:"scores" yaml:"scores"`
}

// PriceRow is the monthly price of one unit size per area.
type PriceRow struct {
	Unit   string         `json:"unit" yaml:"unit"`
	Prices map[string]int `json:"prices" yaml:"prices"`
}

// Area ids in display order.
const (
	AreaWestside = "westside"
	AreaDowntown = "downtown"
	AreaEastside = "eastside"
	AreaSuburbs  = "suburbs"
)

// AreaIDs returns the area ids in display order.
func AreaIDs() []string {
	return []string{AreaWestside, AreaDowntown, AreaEastside, AreaSuburbs}
}

// Areas returns the mock neighborhoods in display order.
func Areas() []Area {
	return []Area{
		{
			ID:          AreaWestside,
			Name:        "Westside",
			Description: "The Westside area offers the perfect balance of urban amenities and green spaces. With excellent schools, diverse dining options, and well-maintained parks, it's ideal for families and professionals alike. The area is experiencing moderate growth with several new developments planned that will enhance the neighborhood without disrupting its character.",
			KeyPoints: []string{
				"92% match with your amenity preferences",
				"Excellent green spaces and parks",
				"Strong future development outlook",
				"Great transportation options",
			},
			Score:          93,
			AveragePrice:   550000,
			CommuteMinutes: 20,
			Access:         "excellent parks and recreational facilities",
			Evenings:       "peaceful parks and trails",
			Development:    "thoughtful",
			Projects:       []string{"Westside Commons Park Expansion (2024-2025)", "Neighborhood Retail Hub (2025)"},
			InternetSpeed:  "1 Gbps",
			TechReadiness:  88,
		},
		{
			ID:          AreaDowntown,
			Name:        "Downtown",
			Description: "Downtown offers a vibrant urban experience with countless restaurants, cultural venues, and shopping destinations within walking distance. The area features excellent public transportation and is ideal for those who prefer a car-free lifestyle. While housing prices are higher, the convenience and amenities justify the premium for many residents.",
			KeyPoints: []string{
				"98% match with your transportation preferences",
				"Highest concentration of restaurants and entertainment",
				"Excellent walkability score",
				"Modern high-rise apartments with views",
			},
			Score:          82,
			AveragePrice:   650000,
			CommuteMinutes: 10,
			Access:         "countless restaurants and shops",
			Evenings:       "vibrant city atmosphere",
			Development:    "substantial",
			Projects:       []string{"Central Transit Hub Expansion (2025-2027)", "Riverfront Mixed-Use Development (2024-2026)"},
			InternetSpeed:  "1.5 Gbps",
			TechReadiness:  92,
		},
		{
			ID:          AreaEastside,
			Name:        "Eastside",
			Description: "The Eastside is an up-and-coming area that offers excellent value for money. With a mix of historic homes and new developments, it appeals to a diverse population. The area is seeing significant investment in public spaces and transportation infrastructure, making it a smart choice for those looking to buy in an area with appreciation potential.",
			KeyPoints: []string{
				"90% match with your price range preferences",
				"Strong community feel with local events",
				"Improving transportation options",
				"Good mix of historic charm and modern amenities",
			},
			Score:          76,
			AveragePrice:   480000,
			CommuteMinutes: 25,
			Access:         "a growing arts scene and local markets",
			Evenings:       "emerging restaurant scene",
			Development:    "promising",
			Projects:       []string{"Eastside Arts District Revitalization (2024-2026)", "New Community Center & Library (2025)"},
			InternetSpeed:  "900 Mbps",
			TechReadiness:  73,
		},
		{
			ID:          AreaSuburbs,
			Name:        "Suburbs",
			Description: "The suburban areas offer spacious homes with yards, good schools, and a peaceful environment. While commute times are longer, many residents find the trade-off worthwhile for the extra space and quieter surroundings. Recent improvements in cycling infrastructure have made it easier to combine suburban living with active transportation options.",
			KeyPoints: []string{
				"95% match with your budget preferences",
				"Largest homes and lots for the price",
				"Excellent school districts",
				"Quieter, family-friendly neighborhoods",
			},
			Score:          68,
			AveragePrice:   420000,
			CommuteMinutes: 35,
			Access:         "spacious homes and good schools",
			Evenings:       "quiet suburban setting",
			Development:    "steady",
			Projects:       []string{"Expanded Shopping Center (2025)", "Community Sports Complex (2026)"},
			InternetSpeed:  "650 Mbps",
			TechReadiness:  65,
		},
	}
}

// AreaByID looks up a mock neighborhood.
func AreaByID(id string) (Area, bool) {
	for _, a := range Areas() {
		if a.ID == strings.ToLower(id) {
			return a, true
		}
	}
	return Area{}, false
}

// Metrics returns the area comparison chart data.
func Metrics() []Metric {
	row := func(name string, w, d, e, s int) Metric {
		return Metric{Name: name, Scores: map[string]int{
			AreaWestside: w, AreaDowntown: d, AreaEastside: e, AreaSuburbs: s,
		}}
	}
	return []Metric{
		row("Price Match", 80, 60, 90, 95),
		row("Amenities", 92, 95, 75, 60),
		row("Transportation", 85, 98, 82, 65),
		row("Future Growth", 90, 85, 70, 75),
		row("Demographics", 88, 78, 85, 80),
	}
}

// Prices returns monthly rents per unit size.
func Prices() []PriceRow {
	row := func(unit string, w, d, e, s int) PriceRow {
		return PriceRow{Unit: unit, Prices: map[string]int{
			AreaWestside: w, AreaDowntown: d, AreaEastside: e, AreaSuburbs: s,
		}}
	}
	return []PriceRow{
		row("Studio", 1850, 2200, 1650, 1450),
		row("1-Bedroom", 2400, 2800, 2100, 1900),
		row("2-Bedroom", 3200, 3800, 2900, 2500),
		row("3-Bedroom", 4200, 5000, 3700, 3200),
	}
}

// Full is the aggregate recommendation over all answers.
type Full struct {
	Selected Area       `json:"selected" yaml:"selected"`
	Areas    []Area     `json:"areas" yaml:"areas"`
	Metrics  []Metric   `json:"metrics" yaml:"metrics"`
	Prices   []PriceRow `json:"prices" yaml:"prices"`
	Journey  []string   `json:"journey" yaml:"journey"`
	Story    string     `json:"story" yaml:"story"`
}

// FullRecommendation assembles the aggregate view with areaID selected.
// An unknown id selects the first area.
func FullRecommendation(answers domain.AnswerSet, areaID string) Full {
	areas := Areas()
	selected, ok := AreaByID(areaID)
	if !ok {
		selected = areas[0]
	}
	return Full{
		Selected: selected,
		Areas:    areas,
		Metrics:  Metrics(),
		Prices:   Prices(),
		Journey:  Journey(selected, answers),
		Story:    Story(selected.Name, answers),
	}
}

// Journey is the four-paragraph "day in your new home" narrative.
func Journey(area Area, answers domain.AnswerSet) []string {
	household := "your ideal neighborhood demographics"
	if v := choice(answers, "householdType"); v != "" {
		household = FormatHouseholdType(v)
	}
	amenities := "local amenities"
	if vs := values(answers, "amenities"); len(vs) > 0 {
		amenities = FormatAmenities(vs)
	}
	transport := "transportation"
	if vs := values(answers, "transportTypes"); len(vs) > 0 {
		transport = FormatTransportation(vs[:1])
	}
	smart := "modern technology amenities"
	if vs := values(answers, "smartFeatures"); len(vs) > 0 {
		smart = FormatSmartFeatures(vs)
	}

	return []string{
		fmt.Sprintf("Imagine waking up in your new home in %s, where your preferences for %s and %s are perfectly matched.",
			area.Name, household, amenities),
		fmt.Sprintf("Your commute to work takes just %d minutes using your preferred %s option, and you have easy access to %s.",
			area.CommuteMinutes, transport, area.Access),
		fmt.Sprintf("In the evenings, you can enjoy the %s, and your home is equipped with the smart features you value most, including %s.",
			area.Evenings, smart),
		fmt.Sprintf("With %s development planned for the future, your property investment is well-positioned to grow in value while maintaining the lifestyle elements that matter most to you.",
			area.Development),
	}
}

// Story is the longer narrative shown under the area details.
func Story(areaName string, answers domain.AnswerSet) string {
	lifestyle := "urban"
	if v := choice(answers, "location"); v != "" {
		lifestyle = map[string]string{"downtown": "urban", "suburbs": "suburban", "rural": "rural"}[v]
	}
	family := "small"
	if v := choice(answers, "householdType"); v == "families" {
		family = "growing"
	}
	budget := "moderate"
	if v, ok := number(answers, "budget"); ok && v > 0 {
		budget = FormatCurrency(v, true)
	}

	return fmt.Sprintf("Based on your preferences for a %s lifestyle and %s family size, let me paint a picture of your life in %s. "+
		"Imagine starting your day in a home that perfectly matches your %s budget while exceeding your expectations. "+
		"The neighborhood seamlessly blends modern amenities with a strong sense of community, making it an ideal place for your lifestyle.\n\n"+
		"Your daily routine would be enhanced by the area's strategic location and thoughtfully designed infrastructure. "+
		"The community here shares your values and interests, creating an environment where you'll feel right at home from day one.\n\n"+
		"Looking ahead, %s's development plans and property value trends suggest this could be not just a home, "+
		"but a wise investment in your future. The area's growth aligns perfectly with your long-term goals.",
		lifestyle, family, areaName, budget, areaName)
}
