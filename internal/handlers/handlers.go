package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gerenciaroi/docs"
	authhandlers "github.com/GlebRadaev/gerenciaroi/internal/handlers/auth"
	campaignhandlers "github.com/GlebRadaev/gerenciaroi/internal/handlers/campaigns"
	credentialhandlers "github.com/GlebRadaev/gerenciaroi/internal/handlers/credentials"
	oauthhandlers "github.com/GlebRadaev/gerenciaroi/internal/handlers/oauth"
	profilehandlers "github.com/GlebRadaev/gerenciaroi/internal/handlers/profile"
	saleshandlers "github.com/GlebRadaev/gerenciaroi/internal/handlers/sales"
	trackinghandlers "github.com/GlebRadaev/gerenciaroi/internal/handlers/tracking"
	webhookhandlers "github.com/GlebRadaev/gerenciaroi/internal/handlers/webhooks"
	"github.com/GlebRadaev/gerenciaroi/internal/metrics"
	"github.com/GlebRadaev/gerenciaroi/internal/service"
	"github.com/GlebRadaev/gerenciaroi/pkg/auth"
	"github.com/GlebRadaev/gerenciaroi/pkg/logger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type SalesHandler interface {
	GetSales(w http.ResponseWriter, r *http.Request)
	DeleteSale(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetAttribution(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	CreateWebhook(w http.ResponseWriter, r *http.Request)
	GetWebhooks(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteWebhook(w http.ResponseWriter, r *http.Request)
}

type CredentialHandler interface {
	CreateCredential(w http.ResponseWriter, r *http.Request)
	GetCredentials(w http.ResponseWriter, r *http.Request)
	GetCredential(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteCredential(w http.ResponseWriter, r *http.Request)
}

type TrackingHandler interface {
	Track(w http.ResponseWriter, r *http.Request)
	GetLiveVisitors(w http.ResponseWriter, r *http.Request)
}

type OAuthHandler interface {
	MetaOAuth(w http.ResponseWriter, r *http.Request)
}

type CampaignHandler interface {
	UpdateBudget(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	ProfileHandler    ProfileHandler
	SalesHandler      SalesHandler
	WebhookHandler    WebhookHandler
	CredentialHandler CredentialHandler
	TrackingHandler   TrackingHandler
	OAuthHandler      OAuthHandler
	CampaignHandler   CampaignHandler

	JWTService     auth.JWTServiceInterface
	MetricsHandler http.Handler
}

func New(s *service.Services, m *metrics.Metrics) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		ProfileHandler:    profilehandlers.New(s.ProfileService),
		SalesHandler:      saleshandlers.New(s.SaleService),
		WebhookHandler:    webhookhandlers.New(s.WebhookService),
		CredentialHandler: credentialhandlers.New(s.CredentialService),
		TrackingHandler:   trackinghandlers.New(s.VisitorService),
		OAuthHandler:      oauthhandlers.New(s.OAuthService),
		CampaignHandler:   campaignhandlers.New(s.CampaignService),
		JWTService:        s.JWTService,
		MetricsHandler:    m.Handler(),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		logger.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", h.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)
		r.Post("/track", h.TrackingHandler.Track)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.JWTService))

			r.Get("/profile", h.ProfileHandler.GetProfile)
			r.Route("/sales", func(r chi.Router) {
				r.Get("/", h.SalesHandler.GetSales)
				r.Get("/summary", h.SalesHandler.GetSummary)
				r.Get("/attribution", h.SalesHandler.GetAttribution)
				r.Delete("/{id}", h.SalesHandler.DeleteSale)
			})
			r.Route("/webhooks", func(r chi.Router) {
				r.Get("/", h.WebhookHandler.GetWebhooks)
				r.Post("/", h.WebhookHandler.CreateWebhook)
				r.Delete("/{id}", h.WebhookHandler.DeleteWebhook)
				r.Patch("/{id}/status", h.WebhookHandler.UpdateStatus)
			})
			r.Route("/credentials", func(r chi.Router) {
				r.Get("/", h.CredentialHandler.GetCredentials)
				r.Post("/", h.CredentialHandler.CreateCredential)
				r.Get("/{id}", h.CredentialHandler.GetCredential)
				r.Delete("/{id}", h.CredentialHandler.DeleteCredential)
				r.Patch("/{id}/status", h.CredentialHandler.UpdateStatus)
			})
			r.Get("/visitors/live", h.TrackingHandler.GetLiveVisitors)
			r.Post("/oauth/meta", h.OAuthHandler.MetaOAuth)
			r.Post("/campaigns/{id}/budget", h.CampaignHandler.UpdateBudget)
		})
	})

	return r
}
