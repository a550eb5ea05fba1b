package application_test

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/wedifit/wedifit-services/api/internal/survey/application"
	"github.com/wedifit/wedifit-services/api/internal/survey/domain"
)

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func photoBudget(v domain.PhotoBudgetStance) *domain.PhotoBudgetStance { return &v }
func intPtr(v int) *int                                                { return &v }

func TestUpdateAnswersPartialPatch(t *testing.T) {
	svc := application.NewService(discard(), nil)
	survey := domain.NewSurvey()

	err := svc.UpdateAnswers(&survey, application.AnswerPatch{
		PhotoBudget:  photoBudget(domain.PhotoBudgetPractical),
		BudgetStudio: intPtr(180),
	})
	if err != nil {
		t.Fatal(err)
	}
	if survey.Answers.PhotoBudget != domain.PhotoBudgetPractical {
		t.Fatalf("photo budget = %q", survey.Answers.PhotoBudget)
	}
	if survey.Answers.BudgetStudio != 180 {
		t.Fatalf("studio budget = %d", survey.Answers.BudgetStudio)
	}
	// Untouched fields keep their defaults.
	if survey.Answers.GuestCount != domain.GuestScaleLarge || survey.Answers.BudgetDress != 200 {
		t.Fatalf("patch touched unrelated fields: %+v", survey.Answers)
	}
}

func TestUpdateAnswersRejectsUnknownValues(t *testing.T) {
	svc := application.NewService(discard(), nil)
	survey := domain.NewSurvey()

	bogus := domain.PhotoBudgetStance("luxurious")
	if err := svc.UpdateAnswers(&survey, application.AnswerPatch{PhotoBudget: &bogus}); err == nil {
		t.Fatal("unknown axis value must be rejected")
	}
}

func TestUpdateAnswersAfterSubmit(t *testing.T) {
	svc := application.NewService(discard(), nil)
	survey := submitted(t, svc)

	err := svc.UpdateAnswers(&survey, application.AnswerPatch{BudgetStudio: intPtr(999)})
	if !errors.Is(err, domain.ErrAlreadySubmitted) {
		t.Fatalf("err = %v, want ErrAlreadySubmitted", err)
	}
}

func TestSubmitWithoutNarratorServesStaticPersona(t *testing.T) {
	svc := application.NewService(discard(), nil)
	survey := submitted(t, svc)

	if survey.Result == nil || survey.Result.TypeCode != "GBCL" {
		t.Fatalf("result = %+v", survey.Result)
	}
	if survey.Budget == nil || survey.Budget.Total() != 450 {
		t.Fatalf("budget = %+v", survey.Budget)
	}
}

type stubNarrator struct {
	gotCode string
	rewrite string
}

func (n *stubNarrator) Narrate(_ context.Context, _ domain.Answers, result domain.PersonaResult) domain.PersonaResult {
	n.gotCode = result.TypeCode
	result.Description = n.rewrite
	return result
}

func TestSubmitNarratesResult(t *testing.T) {
	narrator := &stubNarrator{rewrite: "새로 쓰인 설명"}
	svc := application.NewService(discard(), narrator)
	survey := submitted(t, svc)

	if narrator.gotCode != "GBCL" {
		t.Fatalf("narrator saw code %q", narrator.gotCode)
	}
	if survey.Result.Description != "새로 쓰인 설명" {
		t.Fatalf("description = %q", survey.Result.Description)
	}
	if survey.Result.TypeCode != "GBCL" {
		t.Fatal("narration must not change the type code")
	}
}

func submitted(t *testing.T, svc *application.Service) domain.Survey {
	t.Helper()
	survey := domain.NewSurvey()
	if err := svc.ToggleMood(&survey, "mood-1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Advance(&survey); err != nil {
		t.Fatal(err)
	}
	if err := svc.Advance(&survey); err != nil {
		t.Fatal(err)
	}
	if err := svc.Submit(context.Background(), &survey); err != nil {
		t.Fatal(err)
	}
	return survey
}
