package domain

// SectionProgress records completion and answers for one section.
type SectionProgress struct {
	Completed bool      `json:"completed" yaml:"completed"`
	Answers   AnswerSet `json:"answers" yaml:"answers"`
}

// Clone returns a deep copy.
func (p SectionProgress) Clone() SectionProgress {
	return SectionProgress{Completed: p.Completed, Answers: p.Answers.Clone()}
}

// Equal compares two section records.
func (p SectionProgress) Equal(other SectionProgress) bool {
	return p.Completed == other.Completed && p.Answers.Equal(other.Answers)
}

// ProgressTable maps every data section to its progress record.
// A table built with NewProgressTable is always fully populated.
type ProgressTable map[Section]SectionProgress

// NewProgressTable returns a table with every data section present,
// not completed and without answers.
func NewProgressTable() ProgressTable {
	t := make(ProgressTable, SectionCount)
	for _, s := range dataSections {
		t[s] = SectionProgress{Answers: AnswerSet{}}
	}
	return t
}

// Clone returns a deep copy.
func (t ProgressTable) Clone() ProgressTable {
	out := make(ProgressTable, len(t))
	for s, p := range t {
		out[s] = p.Clone()
	}
	return out
}

// Equal compares two tables section by section.
func (t ProgressTable) Equal(other ProgressTable) bool {
	if len(t) != len(other) {
		return false
	}
	for s, p := range t {
		q, ok := other[s]
		if !ok || !p.Equal(q) {
			return false
		}
	}
	return true
}

// CompletedCount returns how many data sections are completed.
func (t ProgressTable) CompletedCount() int {
	n := 0
	for _, s := range dataSections {
		if t[s].Completed {
			n++
		}
	}
	return n
}

// Navigation is the transient record of which view is displayed.
type Navigation struct {
	CurrentSection Section
	ShowResults    bool
}

// HomeNavigation is the navigation state after a fresh load.
func HomeNavigation() Navigation {
	return Navigation{CurrentSection: SectionMain}
}
