package storefront

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Anjelho/lindilove/internal/catalog"
	"github.com/Anjelho/lindilove/internal/gallery"
	"github.com/Anjelho/lindilove/internal/relay"
	"github.com/Anjelho/lindilove/pkg/kit"
)

// sourceHeader exposes how the served store was obtained without changing
// the body shape.
const sourceHeader = "X-Catalog-Source"

type Server struct {
	Loader  *catalog.Loader
	Relay   *relay.Server
	Limiter *kit.IPRateLimiter
	Log     *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if s.Loader.Cache != nil {
			if err := s.Loader.Cache.Ping(ctx); err != nil {
				if s.Log != nil {
					s.Log.Warn("readyz failed", zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(withSession)

		pr.Get("/api/store", s.store)
		pr.Get("/api/products", s.products)
		pr.Get("/api/products/{id}", s.product)
		pr.Get("/api/products/{id}/gallery", s.productGallery)
	})

	r.Get("/api/consent", s.consentGet)
	r.Post("/api/consent", s.consentSet)

	if s.Relay != nil {
		h := http.Handler(s.Relay.Handler())
		if s.Limiter != nil {
			h = s.Limiter.Middleware(h)
		}
		r.Handle("/send", h)
	}

	return r
}

func (s *Server) store(w http.ResponseWriter, r *http.Request) {
	store, src := s.Loader.Load(r.Context(), cacheKey(r))
	w.Header().Set(sourceHeader, string(src))
	kit.WriteJSON(w, http.StatusOK, store)
}

func (s *Server) products(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		category = catalog.AllCategories
	}
	activeTags := q["tag"]

	store, src := s.Loader.Load(r.Context(), cacheKey(r))
	w.Header().Set(sourceHeader, string(src))
	kit.WriteJSON(w, http.StatusOK, catalog.Filter(store, category, activeTags))
}

func (s *Server) product(w http.ResponseWriter, r *http.Request) {
	p, src, ok := s.findProduct(r)
	w.Header().Set(sourceHeader, string(src))
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": chi.URLParam(r, "id")})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

type galleryResponse struct {
	Sources     []string `json:"sources"`
	ActiveIndex int      `json:"activeIndex"`
}

func (s *Server) productGallery(w http.ResponseWriter, r *http.Request) {
	p, src, ok := s.findProduct(r)
	w.Header().Set(sourceHeader, string(src))
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": chi.URLParam(r, "id")})
		return
	}
	kit.WriteJSON(w, http.StatusOK, galleryResponse{
		Sources:     gallery.Sources(p),
		ActiveIndex: 0,
	})
}

// findProduct resolves the {id} route param the way the original resolves
// its query parameter: by comparing string forms.
func (s *Server) findProduct(r *http.Request) (catalog.Product, catalog.Source, bool) {
	id := chi.URLParam(r, "id")
	store, src := s.Loader.Load(r.Context(), cacheKey(r))

	for _, p := range store.Products {
		if strconv.Itoa(p.ID) == id {
			return p, src, true
		}
	}
	return catalog.Product{}, src, false
}
