package domain

import (
	"fmt"
	"strings"
)

// Section identifies a questionnaire topic or the main menu.
// This is a value object drawn from a fixed, closed set.
type Section string

// Sections known to the wizard.
const (
	SectionMain           Section = "main"
	SectionBasic          Section = "basic-questions"
	SectionDemographics   Section = "demographics"
	SectionConstruction   Section = "construction"
	SectionTransportation Section = "transportation"
	SectionSmartHome      Section = "smart-home"

	// TargetResults is a navigation target, not a data-bearing section.
	TargetResults Section = "results"
)

// dataSections lists the data-bearing sections in menu order.
var dataSections = []Section{
	SectionBasic,
	SectionDemographics,
	SectionConstruction,
	SectionTransportation,
	SectionSmartHome,
}

// DataSections returns the five data-bearing sections in menu order.
func DataSections() []Section {
	out := make([]Section, len(dataSections))
	copy(out, dataSections)
	return out
}

// SectionCount is the number of data-bearing sections.
const SectionCount = 5

// ParseSection converts s into a Section. It accepts the data sections,
// "main" and "results".
func ParseSection(s string) (Section, error) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	switch {
	case sec == SectionMain, sec == TargetResults, sec.IsData():
		return sec, nil
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// IsData reports whether s carries answers.
func (s Section) IsData() bool {
	for _, d := range dataSections {
		if s == d {
			return true
		}
	}
	return false
}

// Index returns the menu position of a data section, or -1.
func (s Section) Index() int {
	for i, d := range dataSections {
		if s == d {
			return i
		}
	}
	return -1
}

// String returns the string representation
func (s Section) String() string {
	return string(s)
}
