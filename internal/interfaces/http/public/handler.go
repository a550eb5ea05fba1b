package public

import (
	"log"

	"github.com/go-chi/chi/v5"

	fittingapp "github.com/wedifit/wedifit-services/api/internal/fitting/application"
	"github.com/wedifit/wedifit-services/api/internal/infrastructure/memory"
	matchingapp "github.com/wedifit/wedifit-services/api/internal/matching/application"
	surveyapp "github.com/wedifit/wedifit-services/api/internal/survey/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger     *log.Logger
	sessions   *memory.SessionStore
	surveys    *surveyapp.Service
	aggregator *matchingapp.Aggregator
	pipeline   *fittingapp.Pipeline
	garments   fittingapp.GarmentCatalog
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger     *log.Logger
	Sessions   *memory.SessionStore
	Surveys    *surveyapp.Service
	Aggregator *matchingapp.Aggregator
	Pipeline   *fittingapp.Pipeline
	Garments   fittingapp.GarmentCatalog
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:     cfg.Logger,
		sessions:   cfg.Sessions,
		surveys:    cfg.Surveys,
		aggregator: cfg.Aggregator,
		pipeline:   cfg.Pipeline,
		garments:   cfg.Garments,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/sessions", h.sessionCreateHandler())
	r.Get("/sessions/{id}", h.sessionDetailHandler())

	r.Patch("/sessions/{id}/survey", h.surveyUpdateHandler())
	r.Post("/sessions/{id}/survey/next", h.surveyNextHandler())
	r.Post("/sessions/{id}/survey/back", h.surveyBackHandler())
	r.Post("/sessions/{id}/survey/submit", h.surveySubmitHandler())

	r.Get("/vendors", h.vendorListHandler())
	r.Get("/sessions/{id}/recommendations", h.recommendationHandler())

	r.Get("/garments", h.garmentListHandler())
	r.Post("/sessions/{id}/fitting/photo", h.fittingPhotoHandler())
	r.Post("/sessions/{id}/fitting/analyze", h.fittingAnalyzeHandler())
	r.Post("/sessions/{id}/fitting/manual", h.fittingManualHandler())
	r.Post("/sessions/{id}/fitting/garments/{garmentID}", h.fittingToggleHandler())
	r.Post("/sessions/{id}/fitting/composite", h.fittingCompositeHandler())
}
