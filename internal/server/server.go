package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wedifit/wedifit-services/api/internal/config"
	fittingapp "github.com/wedifit/wedifit-services/api/internal/fitting/application"
	"github.com/wedifit/wedifit-services/api/internal/infrastructure/genai"
	"github.com/wedifit/wedifit-services/api/internal/infrastructure/memory"
	"github.com/wedifit/wedifit-services/api/internal/infrastructure/webapi"
	publichttp "github.com/wedifit/wedifit-services/api/internal/interfaces/http/public"
	matchingapp "github.com/wedifit/wedifit-services/api/internal/matching/application"
	surveyapp "github.com/wedifit/wedifit-services/api/internal/survey/application"
)

// Server 는 HTTP 서버의 생명주기를 관리하고 각 핸들러에 의존성을 주입하는 컴포지션 루트.
// 애플리케이션 서비스를 라우터에 연결하는 역할만 담당하고 도메인 로직은 두지 않는다.
type Server struct {
	logger     *log.Logger
	addr       string
	origins    []string
	sessions   *memory.SessionStore
	surveys    *surveyapp.Service
	aggregator *matchingapp.Aggregator
	pipeline   *fittingapp.Pipeline
	garments   fittingapp.GarmentCatalog
	narrator   *genai.Narrator
}

// New 은 Config 를 받아 업스트림 클라이언트와 애플리케이션 서비스를 조립한 Server 를 반환한다.
func New(cfg config.Config) *Server {
	logger := cfg.ServerLog
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	vendorBase := normaliseBaseURL(cfg.VendorAPIBaseURL)
	fittingBase := normaliseBaseURL(cfg.FittingAPIBaseURL)
	if fittingBase == "" {
		fittingBase = vendorBase
	}

	aggregator := matchingapp.NewAggregator(logger,
		webapi.NewStudioSource(vendorBase, httpClient),
		webapi.NewDressSource(vendorBase, httpClient),
		webapi.NewMakeupSource(vendorBase, httpClient),
	)

	var narrator *genai.Narrator
	var narratorPort surveyapp.PersonaNarrator
	if cfg.GeminiAPIKey != "" {
		n, err := genai.NewNarrator(context.Background(), logger, cfg.GeminiAPIKey)
		if err != nil {
			logger.Printf("페르소나 내레이터 초기화 실패, 정적 결과만 사용합니다: %v", err)
		} else {
			narrator = n
			narratorPort = n
		}
	}

	pipeline := fittingapp.NewPipeline(logger,
		webapi.NewAnalysisClient(fittingBase, httpClient),
		webapi.NewCompositeClient(fittingBase, httpClient))

	return &Server{
		logger:     logger,
		addr:       cfg.Addr,
		origins:    append([]string(nil), cfg.AllowedOrigins...),
		sessions:   memory.NewSessionStore(),
		surveys:    surveyapp.NewService(logger, narratorPort),
		aggregator: aggregator,
		pipeline:   pipeline,
		garments:   webapi.NewGarmentClient(fittingBase, httpClient),
		narrator:   narrator,
	}
}

// Run 은 HTTP 서버를 기동하고 라우팅과 미들웨어를 조립한다.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.origins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:     s.logger,
		Sessions:   s.sessions,
		Surveys:    s.surveys,
		Aggregator: s.aggregator,
		Pipeline:   s.pipeline,
		Garments:   s.garments,
	})
	router.Route("/api/v1", publicHandler.Register)

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP 서버 기동: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// normaliseBaseURL 은 입력 문자열을 트리밍하고 끝의 슬래시를 제거한 URL 을 반환한다.
func normaliseBaseURL(input string) string {
	trimmed := strings.TrimSpace(input)
	return strings.TrimRight(trimmed, "/")
}

// withCORS 는 허용된 오리진 목록을 기반으로 CORS 헤더를 부여하는 미들웨어를 반환한다.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed 는 지정된 Origin 이 허용 목록에 포함되는지 판정한다.
func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler 는 프로세스 상태만 반환한다. 세션 저장소가 인메모리라 외부 의존성 점검은 없다.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// writeJSON 은 JSON 응답 공통 처리.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("JSON 인코딩에 실패했습니다: %v", err)
	}
}

// shutdown 은 프로세스 종료 시 외부 클라이언트를 정리한다.
func (s *Server) shutdown() {
	if s.narrator != nil {
		s.narrator.Close()
	}
}

// waitForShutdown 은 ListenAndServe 의 종료와 OS 시그널을 감시해 graceful shutdown 을 수행한다.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("서버가 비정상 종료되었습니다: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("시그널 %s 수신. 서버 종료를 시작합니다.", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("서버 종료 중 오류: %v", err)
		}
	}

	srv.shutdown()
}
