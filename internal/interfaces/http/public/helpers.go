package public

import (
	"time"

	fitting "github.com/wedifit/wedifit-services/api/internal/fitting/domain"
	"github.com/wedifit/wedifit-services/api/internal/infrastructure/memory"
	matching "github.com/wedifit/wedifit-services/api/internal/matching/domain"
	survey "github.com/wedifit/wedifit-services/api/internal/survey/domain"
)

func buildSessionResponse(record memory.Record) sessionResponse {
	return sessionResponse{
		ID:        record.ID,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
		Survey:    buildSurveyStateResponse(record.Survey),
		Fitting:   buildFittingStateResponse(record.Fitting),
	}
}

func buildSurveyStateResponse(s survey.Survey) surveyStateResponse {
	resp := surveyStateResponse{
		Step:      int(s.Step),
		Submitted: s.Submitted(),
		Answers: answersResponse{
			PhotoBudget:  string(s.Answers.PhotoBudget),
			GuestCount:   string(s.Answers.GuestCount),
			Style:        string(s.Answers.Style),
			PrepStyle:    string(s.Answers.PrepStyle),
			Moods:        append([]string{}, s.Answers.Moods...),
			BudgetStudio: s.Answers.BudgetStudio,
			BudgetDress:  s.Answers.BudgetDress,
			BudgetMakeup: s.Answers.BudgetMakeup,
		},
	}
	if s.Result != nil {
		resp.Result = buildPersonaResponse(*s.Result)
	}
	if s.Budget != nil {
		resp.Budget = &budgetResponse{
			Studio: s.Budget.Studio,
			Dress:  s.Budget.Dress,
			Makeup: s.Budget.Makeup,
			Total:  s.Budget.Total(),
		}
	}
	return resp
}

func buildPersonaResponse(result survey.PersonaResult) *personaResponse {
	return &personaResponse{
		TypeCode:               result.TypeCode,
		TypeName:               result.TypeName,
		Description:            result.Description,
		Tags:                   append([]string{}, result.Tags...),
		RecommendedVendorStyle: result.RecommendedVendorStyle,
		RecommendedDressStyle:  result.RecommendedDressStyle,
		EntranceStyle:          result.EntranceStyle,
	}
}

func buildVendorResponse(v matching.Vendor) vendorResponse {
	addOns := make([]addOnResponse, 0, len(v.AddOns))
	for _, addOn := range v.AddOns {
		addOns = append(addOns, addOnResponse{
			ID:        addOn.ID,
			Name:      addOn.Name,
			PriceText: addOn.PriceText,
		})
	}

	// Vendors with an unparseable price are shown without a label; the
	// client renders its own "문의" placeholder.
	priceLabel := ""
	if v.MinPriceManwon() != matching.PriceUnknown {
		priceLabel = matching.FormatMinPrice(v.BasePrice)
	}

	return vendorResponse{
		ID:           v.ID,
		Name:         v.Name,
		Category:     string(v.Category),
		BasePrice:    v.BasePrice,
		PriceLabel:   priceLabel,
		Image:        v.Image,
		Location:     v.Location,
		AddOns:       addOns,
		OtherOptions: append([]string{}, v.OtherOptions...),
		PhoneNumber:  v.PhoneNumber,
		Instagram:    v.Instagram,
	}
}

func buildGarmentResponse(g fitting.Garment) garmentResponse {
	return garmentResponse{
		ID:       g.ID,
		Name:     g.Name,
		Style:    g.Style,
		ImageURL: g.ImageURL,
	}
}

func buildFittingStateResponse(s fitting.Session) fittingStateResponse {
	resp := fittingStateResponse{
		State:            string(s.State),
		HasPhoto:         s.Photo != nil,
		SelectedGarments: append([]string{}, s.Selected...),
		Outcomes:         buildOutcomeResponses(s.Outcomes),
	}
	if s.Photo != nil {
		resp.PhotoFilename = s.Photo.Filename
	}
	if s.Analysis != nil {
		resp.Analysis = buildAnalysisResponse(*s.Analysis)
	}
	return resp
}

func buildAnalysisResponse(a fitting.BodyAnalysis) *analysisResponse {
	resp := &analysisResponse{
		BodyType:               a.BodyType,
		BodyTypeKey:            a.BodyTypeKey,
		Confidence:             a.Confidence,
		Analysis:               a.Analysis,
		RecommendedSilhouettes: append([]string{}, a.RecommendedSilhouettes...),
		AvoidSilhouettes:       append([]string{}, a.AvoidSilhouettes...),
		VisualizationImageURL:  a.VisualizationImageURL,
	}
	if a.Measurements != nil {
		resp.Measurements = &measurementsResponse{
			ShoulderWidth: a.Measurements.ShoulderWidth,
			WaistWidth:    a.Measurements.WaistWidth,
			HipWidth:      a.Measurements.HipWidth,
			SHR:           a.Measurements.SHR,
			WHR:           a.Measurements.WHR,
		}
	}
	return resp
}

func buildOutcomeResponses(outcomes []fitting.CompositeOutcome) []outcomeResponse {
	resp := make([]outcomeResponse, 0, len(outcomes))
	for _, outcome := range outcomes {
		resp = append(resp, outcomeResponse{
			GarmentID:    outcome.GarmentID,
			Success:      outcome.Success,
			ImageURL:     outcome.ImageURL,
			ErrorMessage: outcome.ErrorMessage,
		})
	}
	return resp
}
