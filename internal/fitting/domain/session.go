package domain

import "errors"

// State tracks the fitting pipeline position. Failures do not get their own
// state: a failed analysis drops the session back to StateUploading and a
// failed composite still lands in StateComplete with a partial or empty
// outcome list.
type State string

const (
	StateUploading         State = "uploading"
	StateAnalyzing         State = "analyzing"
	StateAwaitingSelection State = "awaiting_selection"
	StateCompositing       State = "compositing"
	StateComplete          State = "complete"
)

// MaxSelectedGarments caps the virtual-fitting cart.
const MaxSelectedGarments = 6

var (
	ErrNoPhoto           = errors.New("fitting: no photo uploaded")
	ErrNoSelection       = errors.New("fitting: no garments selected")
	ErrInvalidTransition = errors.New("fitting: invalid state transition")
)

// Photo is the single uploaded image of a fitting session.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Measurements carries the body widths and ratios the analysis derives.
type Measurements struct {
	ShoulderWidth float64
	WaistWidth    float64
	HipWidth      float64
	SHR           float64 // shoulder-hip ratio
	WHR           float64 // waist-hip ratio
}

// BodyAnalysis is the result of one body-shape analysis request.
type BodyAnalysis struct {
	BodyType               string
	BodyTypeKey            string
	Confidence             float64
	Analysis               string
	Measurements           *Measurements
	RecommendedSilhouettes []string
	AvoidSilhouettes       []string
	VisualizationImageURL  string
}

// CompositeOutcome is the per-garment result of a batch synthesis request:
// either a generated image or a failure reason, never both.
type CompositeOutcome struct {
	GarmentID    string
	Success      bool
	ImageURL     string
	ErrorMessage string
}

// Session is one virtual-fitting session. Mutation happens only through the
// transition methods below; outcome lists are replaced wholesale, never
// patched in place.
type Session struct {
	State    State
	Photo    *Photo
	Analysis *BodyAnalysis
	Selected []string
	Outcomes []CompositeOutcome
}

// NewSession starts a fitting session waiting for its photo.
func NewSession() Session {
	return Session{State: StateUploading}
}

// AttachPhoto replaces any previous image outright and restarts the
// pipeline from the upload state. There is no multi-image state.
func (s *Session) AttachPhoto(photo Photo) {
	s.Photo = &photo
	s.Analysis = nil
	s.Selected = nil
	s.Outcomes = nil
	s.State = StateUploading
}

// BeginAnalysis moves into the analyzing state. Requires a photo.
func (s *Session) BeginAnalysis() error {
	if s.Photo == nil {
		return ErrNoPhoto
	}
	if s.State != StateUploading {
		return ErrInvalidTransition
	}
	s.State = StateAnalyzing
	return nil
}

// CompleteAnalysis records the analysis and opens garment selection.
func (s *Session) CompleteAnalysis(analysis BodyAnalysis) error {
	if s.State != StateAnalyzing {
		return ErrInvalidTransition
	}
	s.Analysis = &analysis
	s.State = StateAwaitingSelection
	return nil
}

// FailAnalysis returns the user to the upload state. The photo stays
// attached so a retry does not force a blind re-select.
func (s *Session) FailAnalysis() {
	s.Analysis = nil
	s.State = StateUploading
}

// ApplyManualAnalysis accepts a user-declared body type instead of a photo
// analysis. This is explicit user input, not a fabricated remote result,
// and it opens garment selection directly.
func (s *Session) ApplyManualAnalysis(analysis BodyAnalysis) error {
	if s.State != StateUploading {
		return ErrInvalidTransition
	}
	s.Analysis = &analysis
	s.State = StateAwaitingSelection
	return nil
}

// ToggleGarment adds or removes one garment from the selection. Toggling a
// new garment while the cart is full is a no-op, not an error. Returns
// whether the garment is selected afterwards.
func (s *Session) ToggleGarment(id string) (bool, error) {
	if s.State != StateAwaitingSelection && s.State != StateComplete {
		return false, ErrInvalidTransition
	}

	for i, selected := range s.Selected {
		if selected == id {
			s.Selected = append(s.Selected[:i:i], s.Selected[i+1:]...)
			return false, nil
		}
	}
	if len(s.Selected) >= MaxSelectedGarments {
		return false, nil
	}
	s.Selected = append(s.Selected, id)
	return true, nil
}

// BeginComposite moves into the compositing state. Requires the photo and
// at least one selected garment. Re-running from a completed session is
// allowed; the new batch will replace the old outcome list entirely.
func (s *Session) BeginComposite() error {
	if s.Photo == nil {
		return ErrNoPhoto
	}
	if len(s.Selected) == 0 {
		return ErrNoSelection
	}
	if s.State != StateAwaitingSelection && s.State != StateComplete {
		return ErrInvalidTransition
	}
	s.State = StateCompositing
	return nil
}

// CompleteComposite replaces the whole outcome list and finishes the
// pipeline. An empty list is a valid terminal outcome; whether that is
// surfaced as a failure is the caller's concern.
func (s *Session) CompleteComposite(outcomes []CompositeOutcome) error {
	if s.State != StateCompositing {
		return ErrInvalidTransition
	}
	s.Outcomes = outcomes
	s.State = StateComplete
	return nil
}

// Reconcile reorders composite outcomes to match the originally requested
// garment order. Outcomes whose garment identifier does not match any
// requested garment are appended at the end rather than dropped.
func Reconcile(requested []string, outcomes []CompositeOutcome) []CompositeOutcome {
	if len(outcomes) == 0 {
		return nil
	}

	byGarment := make(map[string][]CompositeOutcome, len(outcomes))
	for _, outcome := range outcomes {
		byGarment[outcome.GarmentID] = append(byGarment[outcome.GarmentID], outcome)
	}

	ordered := make([]CompositeOutcome, 0, len(outcomes))
	taken := make(map[string]int, len(requested))
	for _, id := range requested {
		matches := byGarment[id]
		if taken[id] < len(matches) {
			ordered = append(ordered, matches[taken[id]])
			taken[id]++
		}
	}

	// Anything left over is unmatched but still worth showing.
	for _, outcome := range outcomes {
		if taken[outcome.GarmentID] > 0 {
			taken[outcome.GarmentID]--
			continue
		}
		ordered = append(ordered, outcome)
	}

	return ordered
}
