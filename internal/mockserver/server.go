package mockserver

import (
	"net/http"
	"time"

	"github.com/futig/vectordb-client/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Options struct {
	Username string
	Password string
	// ChatRateLimit is requests per second allowed on /chat; 0 disables it.
	ChatRateLimit float64
	ChatRateBurst int
	// ChatDelay simulates model latency on every /chat call.
	ChatDelay time.Duration
	Logger    *zap.Logger
}

// Server is an in-memory stand-in for the vectordb / PDF service.
type Server struct {
	store   *Store
	opts    Options
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var limiter *rate.Limiter
	if opts.ChatRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.ChatRateLimit), opts.ChatRateBurst)
	}

	return &Server{
		store:   NewStore(),
		opts:    opts,
		limiter: limiter,
		logger:  logger,
	}
}

func (s *Server) Store() *Store {
	return s.store
}

// Handler builds the router. /chat is left unauthenticated like the
// service's own load tests expect; everything else requires Basic auth.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(Logger(s.logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{"status": "healthy"})
	})

	r.With(RateLimit(s.limiter)).Post("/chat", s.chat)

	r.Group(func(r chi.Router) {
		r.Use(BasicAuth(s.opts.Username, s.opts.Password))

		r.Get("/users", s.listUsers)

		r.Route("/vectordb", func(r chi.Router) {
			r.Delete("/memory", s.clearMemory)
			r.Delete("/memory/{user_id}", s.clearUserMemory)
			r.Delete("/pdf", s.clearPDFVectors)
			r.Get("/pdf/sources", s.listSources)
			r.Delete("/pdf/{source}", s.clearPDFSource)
		})

		r.Route("/pdf", func(r chi.Router) {
			r.Get("/", s.listPDFs)
			r.Delete("/", s.deletePDFs)
			r.Post("/upload", s.upload)
			r.Post("/ingest", s.ingestAll)
			r.Post("/ingest/{filename}", s.ingestOne)
			r.Delete("/{filename}", s.deletePDF)
		})
	})

	return r
}
