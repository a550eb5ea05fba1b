package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/wedifit/wedifit-services/api/internal/fitting/domain"
)

func photo() domain.Photo {
	return domain.Photo{Filename: "body.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}
}

func TestSessionHappyPath(t *testing.T) {
	s := domain.NewSession()
	if s.State != domain.StateUploading {
		t.Fatalf("new session state = %s", s.State)
	}

	s.AttachPhoto(photo())
	if err := s.BeginAnalysis(); err != nil {
		t.Fatal(err)
	}
	if s.State != domain.StateAnalyzing {
		t.Fatalf("state = %s, want analyzing", s.State)
	}

	if err := s.CompleteAnalysis(domain.BodyAnalysis{BodyType: "모래시계형"}); err != nil {
		t.Fatal(err)
	}
	if s.State != domain.StateAwaitingSelection {
		t.Fatalf("state = %s, want awaiting_selection", s.State)
	}

	if _, err := s.ToggleGarment("d1"); err != nil {
		t.Fatal(err)
	}
	if err := s.BeginComposite(); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteComposite([]domain.CompositeOutcome{{GarmentID: "d1", Success: true}}); err != nil {
		t.Fatal(err)
	}
	if s.State != domain.StateComplete {
		t.Fatalf("state = %s, want complete", s.State)
	}
}

func TestAnalysisRequiresPhoto(t *testing.T) {
	s := domain.NewSession()
	if err := s.BeginAnalysis(); !errors.Is(err, domain.ErrNoPhoto) {
		t.Fatalf("err = %v, want ErrNoPhoto", err)
	}
}

func TestFailAnalysisReturnsToUploadKeepingPhoto(t *testing.T) {
	s := domain.NewSession()
	s.AttachPhoto(photo())
	_ = s.BeginAnalysis()

	s.FailAnalysis()
	if s.State != domain.StateUploading {
		t.Fatalf("state = %s, want uploading", s.State)
	}
	if s.Photo == nil {
		t.Fatal("failed analysis must preserve the uploaded photo")
	}
	if s.Analysis != nil {
		t.Fatal("failed analysis must not fabricate a result")
	}
}

func TestAttachPhotoReplacesOutright(t *testing.T) {
	s := domain.NewSession()
	s.AttachPhoto(photo())
	_ = s.BeginAnalysis()
	_ = s.CompleteAnalysis(domain.BodyAnalysis{BodyType: "직사각형"})
	_, _ = s.ToggleGarment("d1")

	second := domain.Photo{Filename: "retake.jpg", ContentType: "image/jpeg"}
	s.AttachPhoto(second)

	if s.Photo.Filename != "retake.jpg" {
		t.Fatalf("photo = %q, want the replacement", s.Photo.Filename)
	}
	if s.State != domain.StateUploading || s.Analysis != nil || len(s.Selected) != 0 {
		t.Fatal("replacing the photo must restart the pipeline")
	}
}

func TestToggleGarmentCap(t *testing.T) {
	s := domain.NewSession()
	s.AttachPhoto(photo())
	_ = s.BeginAnalysis()
	_ = s.CompleteAnalysis(domain.BodyAnalysis{})

	for i := 0; i < domain.MaxSelectedGarments; i++ {
		selected, err := s.ToggleGarment(fmt.Sprintf("d%d", i))
		if err != nil || !selected {
			t.Fatalf("toggle %d: selected=%v err=%v", i, selected, err)
		}
	}

	// The cart is full: adding one more is a silent no-op.
	selected, err := s.ToggleGarment("overflow")
	if err != nil {
		t.Fatalf("toggle at capacity returned error: %v", err)
	}
	if selected {
		t.Fatal("toggle at capacity must be a no-op")
	}
	if len(s.Selected) != domain.MaxSelectedGarments {
		t.Fatalf("selection size = %d, want %d", len(s.Selected), domain.MaxSelectedGarments)
	}

	// Removing a selected garment still works.
	selected, _ = s.ToggleGarment("d0")
	if selected || len(s.Selected) != domain.MaxSelectedGarments-1 {
		t.Fatalf("deselect failed: selected=%v size=%d", selected, len(s.Selected))
	}
}

func TestBeginCompositeGuards(t *testing.T) {
	s := domain.NewSession()
	s.AttachPhoto(photo())
	_ = s.BeginAnalysis()
	_ = s.CompleteAnalysis(domain.BodyAnalysis{})

	if err := s.BeginComposite(); !errors.Is(err, domain.ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
}

func TestCompleteCompositeReplacesOutcomeList(t *testing.T) {
	s := domain.NewSession()
	s.AttachPhoto(photo())
	_ = s.BeginAnalysis()
	_ = s.CompleteAnalysis(domain.BodyAnalysis{})
	_, _ = s.ToggleGarment("d1")
	_, _ = s.ToggleGarment("d2")

	_ = s.BeginComposite()
	_ = s.CompleteComposite([]domain.CompositeOutcome{
		{GarmentID: "d1", Success: true},
		{GarmentID: "d2", Success: false, ErrorMessage: "생성 실패"},
	})

	// A second batch replaces the list wholesale.
	_ = s.BeginComposite()
	_ = s.CompleteComposite([]domain.CompositeOutcome{{GarmentID: "d1", Success: true}})
	if len(s.Outcomes) != 1 {
		t.Fatalf("outcomes = %d, want 1 after replacement", len(s.Outcomes))
	}
}

func TestManualAnalysisOpensSelection(t *testing.T) {
	s := domain.NewSession()
	if err := s.ApplyManualAnalysis(domain.BodyAnalysis{BodyType: "역삼각형"}); err != nil {
		t.Fatal(err)
	}
	if s.State != domain.StateAwaitingSelection {
		t.Fatalf("state = %s, want awaiting_selection", s.State)
	}
}

func TestReconcileRestoresSelectionOrder(t *testing.T) {
	requested := []string{"d1", "d2", "d3"}
	outcomes := []domain.CompositeOutcome{
		{GarmentID: "d3", Success: true},
		{GarmentID: "d1", Success: true},
		{GarmentID: "d2", Success: false},
	}

	got := domain.Reconcile(requested, outcomes)
	for i, id := range requested {
		if got[i].GarmentID != id {
			t.Fatalf("position %d = %s, want %s", i, got[i].GarmentID, id)
		}
	}
}

func TestReconcileAppendsUnmatchedOutcomes(t *testing.T) {
	requested := []string{"d1", "d2"}
	outcomes := []domain.CompositeOutcome{
		{GarmentID: "mystery", Success: true},
		{GarmentID: "d2", Success: true},
	}

	got := domain.Reconcile(requested, outcomes)
	if len(got) != 2 {
		t.Fatalf("got %d outcomes, want 2 (unmatched kept)", len(got))
	}
	if got[0].GarmentID != "d2" || got[1].GarmentID != "mystery" {
		t.Fatalf("order = %s,%s; want d2,mystery", got[0].GarmentID, got[1].GarmentID)
	}
}

func TestReconcilePartialResponse(t *testing.T) {
	requested := []string{"d1", "d2", "d3", "d4"}
	outcomes := []domain.CompositeOutcome{
		{GarmentID: "d4", Success: true},
		{GarmentID: "d1", Success: true},
		{GarmentID: "d2", Success: true},
	}

	got := domain.Reconcile(requested, outcomes)
	if len(got) != 3 {
		t.Fatalf("got %d outcomes, want exactly the 3 that arrived", len(got))
	}
	want := []string{"d1", "d2", "d4"}
	for i := range want {
		if got[i].GarmentID != want[i] {
			t.Fatalf("position %d = %s, want %s", i, got[i].GarmentID, want[i])
		}
	}
}

func TestReconcileEmpty(t *testing.T) {
	if got := domain.Reconcile([]string{"d1"}, nil); got != nil {
		t.Fatalf("Reconcile with no outcomes = %v, want nil", got)
	}
}
