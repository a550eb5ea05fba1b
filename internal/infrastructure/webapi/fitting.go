package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/wedifit/wedifit-services/api/internal/fitting/domain"
)

const (
	analyzeBodyTypePath = "/api/v1/analyze-body-type"
	compositePath       = "/api/v1/composite"
	stylesPath          = "/api/v1/styles"
)

// compositeInterval spaces out batch synthesis calls. The upstream GPU
// service throttles aggressively; a local limiter keeps us under its ceiling.
const compositeInterval = 2 * time.Second

type measurementsRecord struct {
	ShoulderWidth float64 `json:"shoulder_width"`
	WaistWidth    float64 `json:"waist_width"`
	HipWidth      float64 `json:"hip_width"`
	SHR           float64 `json:"shr"`
	WHR           float64 `json:"whr"`
}

type analysisResponse struct {
	Success                bool                `json:"success"`
	BodyType               string              `json:"body_type"`
	BodyTypeKey            string              `json:"body_type_key"`
	Confidence             float64             `json:"confidence"`
	Measurements           *measurementsRecord `json:"measurements"`
	Analysis               string              `json:"analysis"`
	RecommendedSilhouettes []string            `json:"recommended_silhouettes"`
	AvoidSilhouettes       []string            `json:"avoid_silhouettes"`
	VisualizationImageURL  string              `json:"visualization_image_url"`
	Error                  string              `json:"error"`
}

// AnalysisClient calls the body-shape analysis service with the uploaded
// photo as a multipart upload.
type AnalysisClient struct {
	baseURL string
	client  *http.Client
}

func NewAnalysisClient(baseURL string, client *http.Client) *AnalysisClient {
	return &AnalysisClient{baseURL: baseURL, client: httpClient(client)}
}

func (c *AnalysisClient) Analyze(ctx context.Context, photo domain.Photo) (*domain.BodyAnalysis, error) {
	body, contentType, err := photoForm(photo, "image", nil)
	if err != nil {
		return nil, err
	}

	resp, err := request[analysisResponse](ctx, c.client, reqConfig{
		Method:      http.MethodPost,
		URL:         c.baseURL + analyzeBodyTypePath,
		ContentType: contentType,
		Body:        body,
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		if resp.Error != "" {
			return nil, errors.New(resp.Error)
		}
		return nil, errors.New("analysis service reported failure without a reason")
	}

	analysis := &domain.BodyAnalysis{
		BodyType:               resp.BodyType,
		BodyTypeKey:            resp.BodyTypeKey,
		Confidence:             resp.Confidence,
		Analysis:               resp.Analysis,
		RecommendedSilhouettes: resp.RecommendedSilhouettes,
		AvoidSilhouettes:       resp.AvoidSilhouettes,
		VisualizationImageURL:  resolveImageURL(c.baseURL, resp.VisualizationImageURL),
	}
	if resp.Measurements != nil {
		analysis.Measurements = &domain.Measurements{
			ShoulderWidth: resp.Measurements.ShoulderWidth,
			WaistWidth:    resp.Measurements.WaistWidth,
			HipWidth:      resp.Measurements.HipWidth,
			SHR:           resp.Measurements.SHR,
			WHR:           resp.Measurements.WHR,
		}
	}
	return analysis, nil
}

type outcomeRecord struct {
	DressID  string `json:"dress_id"`
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url"`
	Error    string `json:"error"`
}

// CompositeClient calls the batch image-synthesis service. One call covers
// the whole selection; calls are rate limited.
type CompositeClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func NewCompositeClient(baseURL string, client *http.Client) *CompositeClient {
	return &CompositeClient{
		baseURL: baseURL,
		client:  httpClient(client),
		limiter: rate.NewLimiter(rate.Every(compositeInterval), 1),
	}
}

func (c *CompositeClient) Composite(ctx context.Context, photo domain.Photo, garmentIDs []string) ([]domain.CompositeOutcome, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	ids, err := json.Marshal(garmentIDs)
	if err != nil {
		return nil, err
	}
	body, contentType, err := photoForm(photo, "user_image", map[string]string{
		"dress_ids": string(ids),
	})
	if err != nil {
		return nil, err
	}

	raw, err := request[json.RawMessage](ctx, c.client, reqConfig{
		Method:      http.MethodPost,
		URL:         c.baseURL + compositePath,
		ContentType: contentType,
		Body:        body,
	})
	if err != nil {
		return nil, err
	}

	records, err := decodeOutcomes(*raw)
	if err != nil {
		return nil, err
	}

	outcomes := make([]domain.CompositeOutcome, 0, len(records))
	for _, record := range records {
		outcomes = append(outcomes, domain.CompositeOutcome{
			GarmentID:    record.DressID,
			Success:      record.Success,
			ImageURL:     resolveImageURL(c.baseURL, record.ImageURL),
			ErrorMessage: record.Error,
		})
	}
	return outcomes, nil
}

// decodeOutcomes normalizes the synthesis response. The service has shipped
// three shapes over time: a bare outcome list, `{"results": [...]}`, and
// `{"results": [...], "success_count": n}`. All three decode to the same
// outcome list; the redundant count is ignored.
func decodeOutcomes(raw []byte) ([]outcomeRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var records []outcomeRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode composite list: %w", err)
		}
		return records, nil
	}

	var envelope struct {
		Results []outcomeRecord `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode composite envelope: %w", err)
	}
	return envelope.Results, nil
}

type garmentRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Style    string `json:"style"`
	Filename string `json:"filename"`
	ImageURL string `json:"imageUrl"`
}

// GarmentClient lists the selectable dress catalog. The endpoint has used
// both `styles` and `dresses` as its payload key; both are accepted.
type GarmentClient struct {
	baseURL string
	client  *http.Client
}

func NewGarmentClient(baseURL string, client *http.Client) *GarmentClient {
	return &GarmentClient{baseURL: baseURL, client: httpClient(client)}
}

func (c *GarmentClient) List(ctx context.Context) ([]domain.Garment, error) {
	type envelope struct {
		Styles  []garmentRecord `json:"styles"`
		Dresses []garmentRecord `json:"dresses"`
	}
	resp, err := request[envelope](ctx, c.client, reqConfig{
		Method: http.MethodGet,
		URL:    c.baseURL + stylesPath,
	})
	if err != nil {
		return nil, err
	}
	records := resp.Styles
	if len(records) == 0 {
		records = resp.Dresses
	}

	garments := make([]domain.Garment, 0, len(records))
	for _, record := range records {
		garments = append(garments, domain.Garment{
			ID:       record.ID,
			Name:     record.Name,
			Style:    record.Style,
			ImageURL: resolveImageURL(c.baseURL, record.ImageURL),
		})
	}
	return garments, nil
}

// photoForm builds a multipart body with the photo under fileField plus any
// extra text fields.
func photoForm(photo domain.Photo, fileField string, fields map[string]string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fileField, photo.Filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(photo.Data); err != nil {
		return nil, "", err
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}
