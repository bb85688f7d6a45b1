package rest

import (
	"net/http"

	"github.com/hangyeol/codestudy-backend/internal/transport/middleware"
)

// NewRouter assembles the HTTP routes. Session creation and the health
// probes are public; everything else under /api/v1 requires a session
// token. The speech handler is optional and its route is simply absent
// when synthesis is disabled.
func NewRouter(
	health *HealthHandler,
	sessions *SessionHandler,
	content *ContentHandler,
	speech *SpeechHandler,
	authn middleware.Middleware,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/v1/sessions", sessions.Create)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /api/v1/session", sessions.Get)
	protected.HandleFunc("POST /api/v1/session/tab", sessions.SelectTab)
	protected.HandleFunc("POST /api/v1/session/translation/toggle", sessions.ToggleTranslation)
	protected.HandleFunc("GET /api/v1/features/{feature}", content.GetState)
	protected.HandleFunc("POST /api/v1/features/{feature}/generate", content.Generate)
	protected.HandleFunc("POST /api/v1/features/quiz/answer", content.AnswerQuiz)
	if speech != nil {
		protected.HandleFunc("POST /api/v1/speech", speech.Speak)
	}

	mux.Handle("/api/v1/", authn(protected))

	return mux
}
