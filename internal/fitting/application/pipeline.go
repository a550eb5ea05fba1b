package application

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/wedifit/wedifit-services/api/internal/fitting/domain"
)

// BodyAnalyzer is the port to the remote body-shape analysis capability.
type BodyAnalyzer interface {
	Analyze(ctx context.Context, photo domain.Photo) (*domain.BodyAnalysis, error)
}

// Compositor is the port to the remote batch image-synthesis capability.
type Compositor interface {
	Composite(ctx context.Context, photo domain.Photo, garmentIDs []string) ([]domain.CompositeOutcome, error)
}

// GarmentCatalog is the port to the remote garment list.
type GarmentCatalog interface {
	List(ctx context.Context) ([]domain.Garment, error)
}

var (
	// ErrAnalysisFailed marks a failed body analysis; the session has been
	// returned to the upload state with its photo intact.
	ErrAnalysisFailed = errors.New("fitting: body analysis failed")
	// ErrCompositeFailed marks a batch that produced zero outcomes. The
	// session is complete but there is nothing to present.
	ErrCompositeFailed = errors.New("fitting: composite generation failed")
)

// Pipeline orchestrates the fitting flow against the remote capabilities,
// converting their failures into session transitions instead of leaking
// transport errors upwards.
type Pipeline struct {
	logger     *log.Logger
	analyzer   BodyAnalyzer
	compositor Compositor
}

// NewPipeline wires the remote ports into a pipeline.
func NewPipeline(logger *log.Logger, analyzer BodyAnalyzer, compositor Compositor) *Pipeline {
	return &Pipeline{logger: logger, analyzer: analyzer, compositor: compositor}
}

// RunAnalysis sends the session photo for body-shape analysis. On failure
// the session returns to the upload state and the caller gets
// ErrAnalysisFailed to surface; a result is never fabricated.
func (p *Pipeline) RunAnalysis(ctx context.Context, s *domain.Session) error {
	if err := s.BeginAnalysis(); err != nil {
		return err
	}

	analysis, err := p.analyzer.Analyze(ctx, *s.Photo)
	if err != nil {
		s.FailAnalysis()
		p.logger.Printf("body analysis failed: %v", err)
		return fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	return s.CompleteAnalysis(*analysis)
}

// ManualEntry is the user's self-declared body profile, the alternative to
// photo analysis.
type ManualEntry struct {
	BodyShape      string
	Concern        string
	CorrectionGoal string
}

// ApplyManualEntry synthesizes a local analysis from explicit user input
// and opens garment selection.
func (p *Pipeline) ApplyManualEntry(s *domain.Session, entry ManualEntry) error {
	analysis := domain.BodyAnalysis{
		BodyType: entry.BodyShape,
		Analysis: fmt.Sprintf(
			"선택하신 %s은(는) 우아한 라인이 돋보이는 체형입니다. %s 부위를 커버하고 '%s' 방향의 스타일링을 제안합니다.",
			entry.BodyShape, entry.Concern, entry.CorrectionGoal),
		RecommendedSilhouettes: []string{"A라인", "벨라인", "오프숄더"},
		AvoidSilhouettes:       []string{"머메이드"},
	}
	return s.ApplyManualAnalysis(analysis)
}

// RunComposite sends one batch request covering the whole selection and
// reconciles whatever comes back. A short response is logged and presented
// as-is; an empty one finishes the session but reports ErrCompositeFailed
// so the caller never shows a blank success state.
func (p *Pipeline) RunComposite(ctx context.Context, s *domain.Session) error {
	if err := s.BeginComposite(); err != nil {
		return err
	}
	requested := append([]string(nil), s.Selected...)

	outcomes, err := p.compositor.Composite(ctx, *s.Photo, requested)
	if err != nil {
		_ = s.CompleteComposite(nil)
		p.logger.Printf("composite batch failed garments=%d err=%v", len(requested), err)
		return fmt.Errorf("%w: %v", ErrCompositeFailed, err)
	}

	ordered := domain.Reconcile(requested, outcomes)
	if len(ordered) < len(requested) {
		p.logger.Printf("composite batch returned fewer outcomes than requested requested=%d received=%d",
			len(requested), len(ordered))
	}

	if err := s.CompleteComposite(ordered); err != nil {
		return err
	}
	if len(ordered) == 0 {
		return ErrCompositeFailed
	}
	return nil
}
