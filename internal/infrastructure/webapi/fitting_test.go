package webapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wedifit/wedifit-services/api/internal/fitting/domain"
	"github.com/wedifit/wedifit-services/api/internal/infrastructure/webapi"
)

func fittingPhoto() domain.Photo {
	return domain.Photo{Filename: "body.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}
}

func TestAnalysisClient(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/analyze-body-type" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("image part missing: %v", err)
		} else {
			file.Close()
			if header.Filename != "body.jpg" {
				t.Errorf("filename = %s", header.Filename)
			}
		}
		w.Write([]byte(`{
			"success": true,
			"body_type": "모래시계형",
			"body_type_key": "hourglass",
			"confidence": 0.91,
			"measurements": {"shoulder_width": 38.2, "waist_width": 26.5, "hip_width": 37.9, "shr": 1.01, "whr": 0.70},
			"analysis": "균형 잡힌 어깨와 힙 라인입니다.",
			"recommended_silhouettes": ["머메이드", "트럼펫"],
			"avoid_silhouettes": ["볼가운"],
			"visualization_image_url": "/static/vis/abc.png"
		}`))
	}))
	defer upstream.Close()

	got, err := webapi.NewAnalysisClient(upstream.URL, upstream.Client()).Analyze(context.Background(), fittingPhoto())
	if err != nil {
		t.Fatal(err)
	}
	if got.BodyType != "모래시계형" || got.BodyTypeKey != "hourglass" {
		t.Fatalf("analysis = %+v", got)
	}
	if got.Measurements == nil || got.Measurements.SHR != 1.01 {
		t.Fatalf("measurements = %+v", got.Measurements)
	}
	if got.VisualizationImageURL != upstream.URL+"/static/vis/abc.png" {
		t.Fatalf("visualization url = %q, want it resolved against the upstream", got.VisualizationImageURL)
	}
}

func TestAnalysisClientReportedFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "사람을 인식하지 못했습니다."}`))
	}))
	defer upstream.Close()

	_, err := webapi.NewAnalysisClient(upstream.URL, upstream.Client()).Analyze(context.Background(), fittingPhoto())
	if err == nil {
		t.Fatal("success=false must surface as an error")
	}
	if err.Error() != "사람을 인식하지 못했습니다." {
		t.Fatalf("err = %v, want the upstream reason", err)
	}
}

func TestCompositeClientShapes(t *testing.T) {
	shapes := map[string]string{
		"bare list":    `[{"dress_id": "d1", "success": true, "image_url": "/out/d1.png"}]`,
		"results":      `{"results": [{"dress_id": "d1", "success": true, "image_url": "/out/d1.png"}]}`,
		"with counter": `{"results": [{"dress_id": "d1", "success": true, "image_url": "/out/d1.png"}], "success_count": 1}`,
	}

	for name, payload := range shapes {
		t.Run(name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if err := r.ParseMultipartForm(1 << 20); err != nil {
					t.Errorf("parse multipart: %v", err)
				}
				if ids := r.FormValue("dress_ids"); ids != `["d1"]` {
					t.Errorf("dress_ids = %q", ids)
				}
				w.Write([]byte(payload))
			}))
			defer upstream.Close()

			got, err := webapi.NewCompositeClient(upstream.URL, upstream.Client()).
				Composite(context.Background(), fittingPhoto(), []string{"d1"})
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 {
				t.Fatalf("got %d outcomes", len(got))
			}
			if got[0].GarmentID != "d1" || !got[0].Success {
				t.Fatalf("outcome = %+v", got[0])
			}
			if got[0].ImageURL != upstream.URL+"/out/d1.png" {
				t.Fatalf("image url = %q", got[0].ImageURL)
			}
		})
	}
}

func TestCompositeClientFailureOutcome(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"dress_id": "d2", "success": false, "error": "생성 실패"}]}`))
	}))
	defer upstream.Close()

	got, err := webapi.NewCompositeClient(upstream.URL, upstream.Client()).
		Composite(context.Background(), fittingPhoto(), []string{"d2"})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Success || got[0].ErrorMessage != "생성 실패" {
		t.Fatalf("outcome = %+v", got[0])
	}
}

func TestGarmentClientPayloadKeys(t *testing.T) {
	payloads := map[string]string{
		"styles key":  `{"styles": [{"id": "d1", "name": "클래식 벨라인", "style": "bell", "imageUrl": "/dresses/d1.jpg"}], "total": 1}`,
		"dresses key": `{"dresses": [{"id": "d1", "name": "클래식 벨라인", "style": "bell", "imageUrl": "/dresses/d1.jpg"}], "total": 1}`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/v1/styles" {
					t.Errorf("path = %s", r.URL.Path)
				}
				w.Write([]byte(payload))
			}))
			defer upstream.Close()

			got, err := webapi.NewGarmentClient(upstream.URL, upstream.Client()).List(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0].Name != "클래식 벨라인" {
				t.Fatalf("garments = %+v", got)
			}
			if got[0].ImageURL != upstream.URL+"/dresses/d1.jpg" {
				t.Fatalf("image url = %q", got[0].ImageURL)
			}
		})
	}
}
