// Command upstream runs a local stand-in for the vendor and fitting APIs.
// It serves a fixed sample catalog so the API server can be exercised
// end-to-end without the real backends.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type vendorRow struct {
	ID                string `json:"id"`
	BusinessName      string `json:"business_name"`
	BasePrice         string `json:"base_price"`
	ManagerAssignment string `json:"manager_assignment,omitempty"`
	Outdoor           string `json:"outdoor,omitempty"`
	Night             string `json:"night,omitempty"`
	OtherOptions      string `json:"other_options,omitempty"`
	Location          string `json:"location,omitempty"`
	Instagram         string `json:"instagram,omitempty"`
	PhoneNumber       string `json:"phone_number,omitempty"`
}

type makeupRow struct {
	ID                 string `json:"id"`
	BusinessName       string `json:"business_name"`
	ProductComposition string `json:"product_composition,omitempty"`
	BasePrice          string `json:"base_price"`
	DesignatedFee      string `json:"designated_fee,omitempty"`
	OtherOptions       string `json:"other_options,omitempty"`
}

type styleRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Style    string `json:"style"`
	Filename string `json:"filename"`
	ImageURL string `json:"imageUrl"`
}

// Prices are free-form 만원 text on purpose; the API server owns parsing.
var studios = []vendorRow{
	{
		ID: "st-1", BusinessName: "루미에르 스튜디오", BasePrice: "250",
		ManagerAssignment: "55", Night: "33",
		OtherOptions: "앨범 10p 추가 22;원본 전체 제공",
		Location:     "서울 강남구 논현동", Instagram: "@lumiere_studio", PhoneNumber: "02-512-1111",
	},
	{
		ID: "st-2", BusinessName: "어반 프레임", BasePrice: "198",
		Outdoor: "33",
		OtherOptions: "원본 USB 33;대형 액자 업그레이드 16.5",
		Location:     "서울 성동구 성수동", Instagram: "@urban_frame",
	},
	{
		ID: "st-3", BusinessName: "모먼트 스냅", BasePrice: "본식 250~280;촬영 190~250",
		Location: "서울 마포구 상수동", PhoneNumber: "02-334-7777",
	},
}

var dressVendors = []vendorRow{
	{
		ID: "dr-1", BusinessName: "그레이스 켈리 브라이드", BasePrice: "380",
		OtherOptions: "블랙 라벨 업그레이드 88;2부 애프터 드레스 44",
		Location:     "서울 강남구 청담동", Instagram: "@gracekelly_bride",
	},
	{
		ID: "dr-2", BusinessName: "실크 앤 레이스", BasePrice: "150",
		OtherOptions: "촬영용 볼레로 추가 대여 11",
		Location:     "서울 강남구 신사동",
	},
	{
		ID: "dr-3", BusinessName: "아뜰리에 미정", BasePrice: "문의",
		Location: "서울 서초구 반포동",
	},
}

var makeupPrices = []makeupRow{
	{ID: "mk-1", BusinessName: "퓨어 뷰티", ProductComposition: "신부 메이크업+헤어", BasePrice: "88", DesignatedFee: "11"},
	{ID: "mk-2", BusinessName: "퓨어 뷰티", ProductComposition: "리허설 포함 패키지", BasePrice: "110", OtherOptions: "얼리 스타트 11"},
	{ID: "mk-3", BusinessName: "블랑 메이크업", ProductComposition: "신부 단품", BasePrice: "95~110", OtherOptions: "신랑 추가 16.5;혼주 추가 22"},
}

var styles = []styleRow{
	{ID: "d1", Name: "클래식 벨라인", Style: "bell", Filename: "bell_classic.jpg", ImageURL: "/static/dresses/bell_classic.jpg"},
	{ID: "d2", Name: "실크 머메이드", Style: "mermaid", Filename: "mermaid_silk.jpg", ImageURL: "/static/dresses/mermaid_silk.jpg"},
	{ID: "d3", Name: "미니멀 A라인", Style: "a-line", Filename: "aline_minimal.jpg", ImageURL: "/static/dresses/aline_minimal.jpg"},
	{ID: "d4", Name: "레이스 볼가운", Style: "ballgown", Filename: "ballgown_lace.jpg", ImageURL: "/static/dresses/ballgown_lace.jpg"},
	{ID: "d5", Name: "오프숄더 트럼펫", Style: "trumpet", Filename: "trumpet_off.jpg", ImageURL: "/static/dresses/trumpet_off.jpg"},
	{ID: "d6", Name: "빈티지 엠파이어", Style: "empire", Filename: "empire_vintage.jpg", ImageURL: "/static/dresses/empire_vintage.jpg"},
	{ID: "d7", Name: "모던 슬립", Style: "slip", Filename: "slip_modern.jpg", ImageURL: "/static/dresses/slip_modern.jpg"},
}

func main() {
	addr := flag.String("addr", ":3001", "listen address")
	flag.Parse()

	logger := log.New(os.Stdout, "[wedifit-upstream] ", log.LstdFlags)

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/v1/studios", vendorListHandler(logger, "studios", studios))
	router.Get("/api/v1/dress-vendors", vendorListHandler(logger, "dress_vendors", dressVendors))
	router.Get("/api/v1/makeup-prices", makeupListHandler(logger))
	router.Get("/api/v1/styles", stylesHandler(logger))
	router.Post("/api/v1/analyze-body-type", analyzeHandler(logger))
	router.Post("/api/v1/composite", compositeHandler(logger))

	logger.Printf("mock upstream listening on %s", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		logger.Fatalf("listen failed: %v", err)
	}
}

// firstPrice pulls the first number out of a price text for the budget
// filter. Rough on purpose; this is sample data, not the real parser.
func firstPrice(text string) int {
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}
	end := start
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(text[start:end])
	return n
}

func maxBudget(r *http.Request) int {
	n, _ := strconv.Atoi(r.URL.Query().Get("max_budget"))
	return n
}

func writeJSON(logger *log.Logger, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Printf("encode failed: %v", err)
	}
}

func vendorListHandler(logger *log.Logger, key string, rows []vendorRow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budget := maxBudget(r)
		filtered := make([]vendorRow, 0, len(rows))
		for _, row := range rows {
			if budget > 0 {
				price := firstPrice(row.BasePrice)
				if price == 0 || price > budget {
					continue
				}
			}
			filtered = append(filtered, row)
		}
		writeJSON(logger, w, map[string]any{key: filtered, "total": len(filtered)})
	}
}

func makeupListHandler(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budget := maxBudget(r)
		filtered := make([]makeupRow, 0, len(makeupPrices))
		for _, row := range makeupPrices {
			if budget > 0 {
				price := firstPrice(row.BasePrice)
				if price == 0 || price > budget {
					continue
				}
			}
			filtered = append(filtered, row)
		}
		writeJSON(logger, w, map[string]any{"makeup_prices": filtered, "total": len(filtered)})
	}
}

func stylesHandler(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(logger, w, map[string]any{
			"styles":  styles,
			"total":   len(styles),
			"message": "ok",
		})
	}
}

func analyzeHandler(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeJSON(logger, w, map[string]any{"success": false, "error": "이미지 업로드 형식이 올바르지 않습니다"})
			return
		}
		file, _, err := r.FormFile("image")
		if err != nil {
			writeJSON(logger, w, map[string]any{"success": false, "error": "image 파트가 없습니다"})
			return
		}
		file.Close()

		writeJSON(logger, w, map[string]any{
			"success":       true,
			"body_type":     "모래시계형",
			"body_type_key": "hourglass",
			"confidence":    0.91,
			"measurements": map[string]float64{
				"shoulder_width": 38.2,
				"waist_width":    26.5,
				"hip_width":      37.9,
				"shr":            1.01,
				"whr":            0.70,
			},
			"analysis":                "어깨와 힙의 균형이 좋고 허리 라인이 뚜렷한 체형입니다. 실루엣이 드러나는 디자인이 잘 어울립니다.",
			"recommended_silhouettes": []string{"머메이드", "트럼펫"},
			"avoid_silhouettes":       []string{"볼가운"},
		})
	}
}

func compositeHandler(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "multipart parse failed", http.StatusBadRequest)
			return
		}
		var ids []string
		if raw := strings.TrimSpace(r.FormValue("dress_ids")); raw != "" {
			if err := json.Unmarshal([]byte(raw), &ids); err != nil {
				http.Error(w, "dress_ids must be a JSON array", http.StatusBadRequest)
				return
			}
		}

		results := make([]map[string]any, 0, len(ids))
		success := 0
		for _, id := range ids {
			results = append(results, map[string]any{
				"dress_id":  id,
				"success":   true,
				"image_url": fmt.Sprintf("/static/composites/%s_%d.png", id, time.Now().Unix()),
			})
			success++
		}
		writeJSON(logger, w, map[string]any{"results": results, "success_count": success})
	}
}
