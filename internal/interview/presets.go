package interview

import (
	"github.com/felixgeelhaar/homewhisper/internal/domain"
	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
)

// Catalog returns every questionnaire section in menu order.
func Catalog() []Section {
	return []Section{
		BasicSection(),
		DemographicsSection(),
		ConstructionSection(),
		TransportationSection(),
		SmartHomeSection(),
	}
}

// Lookup returns the catalog entry for a data section.
func Lookup(id domain.Section) (Section, error) {
	for _, s := range Catalog() {
		if s.ID == id {
			return s, nil
		}
	}
	return Section{}, errs.NewSectionUnknownError(string(id))
}

// QuestionsFor returns the fixed question sequence of a data section.
func QuestionsFor(id domain.Section) ([]Question, error) {
	s, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return s.Questions, nil
}

// BasicSection returns the basic housing questions
func BasicSection() Section {
	return Section{
		ID:          domain.SectionBasic,
		Title:       "Basic Housing Questions",
		MenuTitle:   "Basic Questions",
		Description: "Tell us about your ideal home preferences",
		Questions: []Question{
			{
				ID:      "budget",
				Type:    QuestionTypeSlider,
				Text:    "What is your budget range?",
				Min:     100000,
				Max:     1500000,
				Step:    50000,
				Default: 500000,
			},
			{
				ID:   "location",
				Type: QuestionTypeSelect,
				Text: "What location are you considering?",
				Options: []Option{
					{Value: "downtown", Label: "Downtown"},
					{Value: "suburbs", Label: "Suburbs"},
					{Value: "rural", Label: "Rural Areas"},
				},
			},
			{
				ID:   "features",
				Type: QuestionTypeCheckbox,
				Text: "What features are important to you?",
				Options: []Option{
					{Value: "garden", Label: "Garden/Yard"},
					{Value: "parking", Label: "Parking"},
					{Value: "smart", Label: "Smart Home Features"},
					{Value: "pool", Label: "Swimming Pool"},
				},
			},
			{
				ID:   "buildingAge",
				Type: QuestionTypeRadio,
				Text: "Do you prefer new or older buildings?",
				Options: []Option{
					{Value: "new", Label: "New Construction (< 5 years)"},
					{Value: "medium", Label: "Medium Age (5-20 years)"},
					{Value: "old", Label: "Older Properties (> 20 years)"},
				},
			},
		},
	}
}

// DemographicsSection returns the neighborhood demographics questions
func DemographicsSection() Section {
	return Section{
		ID:          domain.SectionDemographics,
		Title:       "Demographics & Population",
		MenuTitle:   "Demographics",
		Description: "Explore neighborhood demographics",
		Questions: []Question{
			{
				ID:   "ageGroups",
				Type: QuestionTypeCheckbox,
				Text: "Which age demographics are important to you?",
				Options: []Option{
					{Value: "young", Label: "Young Adults (20-35)"},
					{Value: "families", Label: "Families (35-50)"},
					{Value: "seniors", Label: "Seniors (50+)"},
				},
			},
			{
				ID:   "householdType",
				Type: QuestionTypeRadio,
				Text: "What household types do you want to live around?",
				Options: []Option{
					{Value: "singles", Label: "Singles"},
					{Value: "couples", Label: "Couples without children"},
					{Value: "families", Label: "Families with children"},
					{Value: "mixed", Label: "Mixed demographics"},
				},
			},
			{
				ID:      "futureProjections",
				Type:    QuestionTypeSlider,
				Text:    "How important are future demographic projections to you?",
				Min:     1,
				Max:     5,
				Step:    1,
				Default: 3,
			},
		},
	}
}

// ConstructionSection returns the development and green space questions
func ConstructionSection() Section {
	return Section{
		ID:          domain.SectionConstruction,
		Title:       "Construction & Development",
		MenuTitle:   "Development",
		Description: "Learn about area construction and amenities",
		Questions: []Question{
			{
				ID:      "greenSpace",
				Type:    QuestionTypeSlider,
				Text:    "How important is access to green spaces?",
				Min:     1,
				Max:     5,
				Step:    1,
				Default: 3,
			},
			{
				ID:   "amenities",
				Type: QuestionTypeCheckbox,
				Text: "Which amenities do you want nearby?",
				Options: []Option{
					{Value: "restaurants", Label: "Restaurants"},
					{Value: "malls", Label: "Shopping Malls"},
					{Value: "parks", Label: "Parks"},
					{Value: "schools", Label: "Schools"},
					{Value: "gyms", Label: "Fitness Centers"},
				},
			},
			{
				ID:   "development",
				Type: QuestionTypeRadio,
				Text: "Are you comfortable with ongoing construction nearby?",
				Options: []Option{
					{Value: "yes", Label: "Yes, I want to be in a developing area"},
					{Value: "limited", Label: "Limited construction is fine"},
					{Value: "no", Label: "No, I prefer established areas"},
				},
			},
		},
	}
}

// TransportationSection returns the mobility questions
func TransportationSection() Section {
	return Section{
		ID:          domain.SectionTransportation,
		Title:       "Transportation Options",
		MenuTitle:   "Transportation",
		Description: "Discover mobility options",
		Questions: []Question{
			{
				ID:   "transportTypes",
				Type: QuestionTypeCheckbox,
				Text: "Which transportation options do you need?",
				Options: []Option{
					{Value: "subway", Label: "Subway/Metro"},
					{Value: "bus", Label: "Bus Lines"},
					{Value: "bike", Label: "Bike Paths"},
					{Value: "car", Label: "Car-friendly Roads"},
					{Value: "walk", Label: "Walkable Areas"},
				},
			},
			{
				ID:      "commuteTime",
				Type:    QuestionTypeSlider,
				Text:    "What's your maximum acceptable commute time?",
				Min:     10,
				Max:     60,
				Step:    5,
				Default: 30,
			},
			{
				ID:   "futureTransport",
				Type: QuestionTypeRadio,
				Text: "How important are planned transportation improvements?",
				Options: []Option{
					{Value: "very", Label: "Very important"},
					{Value: "somewhat", Label: "Somewhat important"},
					{Value: "not", Label: "Not important"},
				},
			},
		},
	}
}

// SmartHomeSection returns the smart home technology questions
func SmartHomeSection() Section {
	return Section{
		ID:          domain.SectionSmartHome,
		Title:       "Smart Home Technology",
		MenuTitle:   "Smart Home",
		Description: "Explore technology features",
		Questions: []Question{
			{
				ID:   "smartFeatures",
				Type: QuestionTypeCheckbox,
				Text: "Which smart home features interest you?",
				Options: []Option{
					{Value: "thermostat", Label: "Smart Thermostats"},
					{Value: "security", Label: "Security Systems"},
					{Value: "lights", Label: "Smart Lighting"},
					{Value: "voice", Label: "Voice Assistants"},
					{Value: "appliances", Label: "Smart Appliances"},
				},
			},
			{
				ID:      "smartImportance",
				Type:    QuestionTypeSlider,
				Text:    "How important is smart home technology to you?",
				Min:     1,
				Max:     5,
				Step:    1,
				Default: 3,
			},
			{
				ID:   "futureProof",
				Type: QuestionTypeRadio,
				Text: "Do you want a home that's ready for future tech?",
				Options: []Option{
					{Value: "fully", Label: "Fully future-proofed"},
					{Value: "partial", Label: "Partially ready"},
					{Value: "basic", Label: "Basic setup is fine"},
				},
			},
		},
	}
}
