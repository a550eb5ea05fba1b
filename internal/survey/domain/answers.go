package domain

import (
	"errors"

	matching "github.com/wedifit/wedifit-services/api/internal/matching/domain"
)

// The four primary survey axes. Each is a two-valued enumeration and maps
// onto one character of the derived type code.
type (
	PhotoBudgetStance string
	GuestScale        string
	CeremonyStyle     string
	PrepStyle         string
)

const (
	PhotoBudgetEmotional PhotoBudgetStance = "emotional"
	PhotoBudgetPractical PhotoBudgetStance = "practical"

	GuestScaleLarge   GuestScale = "large"
	GuestScalePrivate GuestScale = "private"

	CeremonyClassic CeremonyStyle = "classic"
	CeremonyModern  CeremonyStyle = "modern"

	PrepLead     PrepStyle = "lead"
	PrepDelegate PrepStyle = "delegate"
)

// Answers is the mutable per-session survey record. Fields are updated one
// by one while the user walks the wizard and consumed once at submission.
type Answers struct {
	PhotoBudget PhotoBudgetStance
	GuestCount  GuestScale
	Style       CeremonyStyle
	PrepStyle   PrepStyle

	// Moods holds selected mood-image identifiers. The current flow allows
	// at most one; selecting a second replaces the first.
	Moods []string

	// Budgets in 만원 units, one per vendor category.
	BudgetStudio int
	BudgetDress  int
	BudgetMakeup int
}

// DefaultAnswers returns the pre-filled survey record a fresh session
// starts from.
func DefaultAnswers() Answers {
	return Answers{
		PhotoBudget:  PhotoBudgetEmotional,
		GuestCount:   GuestScaleLarge,
		Style:        CeremonyClassic,
		PrepStyle:    PrepLead,
		BudgetStudio: 150,
		BudgetDress:  200,
		BudgetMakeup: 100,
	}
}

// Budget freezes the three slider values into a BudgetInfo.
func (a Answers) Budget() matching.BudgetInfo {
	return matching.BudgetInfo{
		Studio: a.BudgetStudio,
		Dress:  a.BudgetDress,
		Makeup: a.BudgetMakeup,
	}
}

// Step identifies the wizard position. The flow is strictly linear.
type Step int

const (
	StepDecision Step = iota + 1 // 4 primary-axis questions
	StepMood                     // mood-image selection
	StepBudget                   // budget sliders
	StepResult                   // reachable only via Submit
)

var (
	// ErrInvalidTransition is returned for forward/backward moves the
	// linear wizard does not allow.
	ErrInvalidTransition = errors.New("survey: invalid step transition")
	// ErrAlreadySubmitted guards the finalized result against re-edits.
	ErrAlreadySubmitted = errors.New("survey: already submitted")
	// ErrMoodRequired blocks advancing past the mood step with nothing
	// selected.
	ErrMoodRequired = errors.New("survey: at least one mood image must be selected")
)

// Survey is the wizard state for one session: current step, the working
// answers, and - after submit - the finalized persona and budget.
type Survey struct {
	Step    Step
	Answers Answers
	Result  *PersonaResult
	Budget  *matching.BudgetInfo
}

// NewSurvey starts a wizard at the decision step with default answers.
func NewSurvey() Survey {
	return Survey{Step: StepDecision, Answers: DefaultAnswers()}
}

// Submitted reports whether the persona and budget have been finalized.
func (s *Survey) Submitted() bool {
	return s.Result != nil
}

// Next advances one step. The result step is never reachable this way;
// only Submit moves the wizard there.
func (s *Survey) Next() error {
	switch s.Step {
	case StepDecision:
		s.Step = StepMood
		return nil
	case StepMood:
		if len(s.Answers.Moods) == 0 {
			return ErrMoodRequired
		}
		s.Step = StepBudget
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Back moves one step backwards. The result step is terminal.
func (s *Survey) Back() error {
	switch s.Step {
	case StepMood:
		s.Step = StepDecision
		return nil
	case StepBudget:
		s.Step = StepMood
		return nil
	default:
		return ErrInvalidTransition
	}
}

// ToggleMood selects or deselects a mood image. Selecting a different image
// while one is already selected replaces it, keeping cardinality at one.
func (s *Survey) ToggleMood(id string) error {
	if s.Submitted() {
		return ErrAlreadySubmitted
	}
	if len(s.Answers.Moods) == 1 && s.Answers.Moods[0] == id {
		s.Answers.Moods = nil
		return nil
	}
	s.Answers.Moods = []string{id}
	return nil
}

// Submit finalizes the survey from the budget step: the persona is resolved
// and the budget sliders are frozen into a BudgetInfo. This is the only
// transition into the result step.
func (s *Survey) Submit() error {
	if s.Submitted() {
		return ErrAlreadySubmitted
	}
	if s.Step != StepBudget {
		return ErrInvalidTransition
	}

	result := Resolve(s.Answers)
	budget := s.Answers.Budget()
	s.Result = &result
	s.Budget = &budget
	s.Step = StepResult
	return nil
}
