package application

import (
	"context"
	"fmt"
	"log"

	"github.com/wedifit/wedifit-services/api/internal/survey/domain"
)

// PersonaNarrator optionally rewrites the static persona text. Any failure
// is the narrator's to swallow: it always returns a usable result.
type PersonaNarrator interface {
	Narrate(ctx context.Context, answers domain.Answers, result domain.PersonaResult) domain.PersonaResult
}

// AnswerPatch updates survey answers field by field. Nil fields are left
// untouched, so a single slider move is a one-field patch.
type AnswerPatch struct {
	PhotoBudget  *domain.PhotoBudgetStance
	GuestCount   *domain.GuestScale
	Style        *domain.CeremonyStyle
	PrepStyle    *domain.PrepStyle
	BudgetStudio *int
	BudgetDress  *int
	BudgetMakeup *int
}

// Service drives the survey wizard for the HTTP layer. All methods mutate
// the given survey in place; persistence is the caller's concern.
type Service struct {
	logger   *log.Logger
	narrator PersonaNarrator
}

// NewService builds the wizard service. narrator may be nil, in which case
// submissions serve the static persona table directly.
func NewService(logger *log.Logger, narrator PersonaNarrator) *Service {
	return &Service{logger: logger, narrator: narrator}
}

// UpdateAnswers applies a field-by-field patch. Rejected once submitted and
// for out-of-range axis values.
func (s *Service) UpdateAnswers(survey *domain.Survey, patch AnswerPatch) error {
	if survey.Submitted() {
		return domain.ErrAlreadySubmitted
	}

	if patch.PhotoBudget != nil {
		switch *patch.PhotoBudget {
		case domain.PhotoBudgetEmotional, domain.PhotoBudgetPractical:
			survey.Answers.PhotoBudget = *patch.PhotoBudget
		default:
			return fmt.Errorf("survey: unknown photo budget stance %q", *patch.PhotoBudget)
		}
	}
	if patch.GuestCount != nil {
		switch *patch.GuestCount {
		case domain.GuestScaleLarge, domain.GuestScalePrivate:
			survey.Answers.GuestCount = *patch.GuestCount
		default:
			return fmt.Errorf("survey: unknown guest scale %q", *patch.GuestCount)
		}
	}
	if patch.Style != nil {
		switch *patch.Style {
		case domain.CeremonyClassic, domain.CeremonyModern:
			survey.Answers.Style = *patch.Style
		default:
			return fmt.Errorf("survey: unknown ceremony style %q", *patch.Style)
		}
	}
	if patch.PrepStyle != nil {
		switch *patch.PrepStyle {
		case domain.PrepLead, domain.PrepDelegate:
			survey.Answers.PrepStyle = *patch.PrepStyle
		default:
			return fmt.Errorf("survey: unknown preparation style %q", *patch.PrepStyle)
		}
	}

	if patch.BudgetStudio != nil {
		survey.Answers.BudgetStudio = *patch.BudgetStudio
	}
	if patch.BudgetDress != nil {
		survey.Answers.BudgetDress = *patch.BudgetDress
	}
	if patch.BudgetMakeup != nil {
		survey.Answers.BudgetMakeup = *patch.BudgetMakeup
	}
	return nil
}

// ToggleMood flips one mood-image selection.
func (s *Service) ToggleMood(survey *domain.Survey, id string) error {
	return survey.ToggleMood(id)
}

// Advance moves the wizard one step forward.
func (s *Service) Advance(survey *domain.Survey) error {
	return survey.Next()
}

// Retreat moves the wizard one step backward.
func (s *Service) Retreat(survey *domain.Survey) error {
	return survey.Back()
}

// Submit finalizes the survey. With a narrator configured the static persona
// text is rewritten best-effort; the resolved type code stays authoritative.
func (s *Service) Submit(ctx context.Context, survey *domain.Survey) error {
	if err := survey.Submit(); err != nil {
		return err
	}

	if s.narrator != nil {
		narrated := s.narrator.Narrate(ctx, survey.Answers, *survey.Result)
		survey.Result = &narrated
	}
	return nil
}
