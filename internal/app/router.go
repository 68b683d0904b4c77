package app

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/ims-admin/docs"
	settingsdomain "github.com/tair/ims-admin/internal/settings/domain"
	"github.com/tair/ims-admin/pkg/middleware"
)

// RouterConfig carries what NewRouter needs beyond the handlers
type RouterConfig struct {
	Middleware  *middleware.Config
	RateLimiter *middleware.RateLimiter
	Gatherer    prometheus.Gatherer
	UploadDir   string
}

// NewRouter mounts the API under /api next to the operational endpoints
// and wraps the result in CORS.
func NewRouter(h *Handlers, cfg RouterConfig) http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	router.PathPrefix("/uploads/").Handler(uploadsHandler(cfg.UploadDir))

	api := router.PathPrefix("/api").Subrouter()
	middleware.Register(api, cfg.Middleware)
	api.Use(cfg.RateLimiter.WritesOnly)

	h.Dashboard.RegisterRoutes(api)
	h.Product.RegisterRoutes(api)
	h.User.RegisterRoutes(api)
	h.Expense.RegisterRoutes(api)
	h.Settings.RegisterRoutes(api)

	return middleware.CORS(cfg.Middleware, router)
}

// uploadsHandler serves stored logos. Files without a logo extension are
// sent as opaque attachments and directory listings are refused.
func uploadsHandler(dir string) http.Handler {
	files := http.StripPrefix("/uploads/", http.FileServer(http.Dir(dir)))
	return middleware.SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		if !settingsdomain.IsLogoFile(r.URL.Path) {
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Header().Set("Content-Disposition", "attachment")
		}
		files.ServeHTTP(w, r)
	}))
}
