package service

import (
	"github.com/GlebRadaev/gerenciaroi/internal/config"
	"github.com/GlebRadaev/gerenciaroi/internal/handlers/auth"
	"github.com/GlebRadaev/gerenciaroi/internal/handlers/campaigns"
	"github.com/GlebRadaev/gerenciaroi/internal/handlers/credentials"
	"github.com/GlebRadaev/gerenciaroi/internal/handlers/oauth"
	"github.com/GlebRadaev/gerenciaroi/internal/handlers/profile"
	"github.com/GlebRadaev/gerenciaroi/internal/handlers/sales"
	"github.com/GlebRadaev/gerenciaroi/internal/handlers/tracking"
	"github.com/GlebRadaev/gerenciaroi/internal/handlers/webhooks"
	"github.com/GlebRadaev/gerenciaroi/internal/metrics"
	"github.com/GlebRadaev/gerenciaroi/internal/repo"
	"github.com/GlebRadaev/gerenciaroi/internal/service/authservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/campaignservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/credentialservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/oauthservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/profileservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/saleservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/visitorservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/webhookservice"
	pkgauth "github.com/GlebRadaev/gerenciaroi/pkg/auth"
)

// MetaClient is the part of the Graph API client the dashboard services use.
type MetaClient interface {
	oauthservice.MetaClient
	campaignservice.BudgetClient
}

type Services struct {
	JWTService        pkgauth.JWTServiceInterface
	AuthService       auth.Service
	ProfileService    profile.Service
	SaleService       sales.Service
	WebhookService    webhooks.Service
	CredentialService credentials.Service
	VisitorService    tracking.Service
	OAuthService      oauth.Service
	CampaignService   campaigns.Service
}

func New(repo *repo.Repositories, cfg *config.Config, m *metrics.Metrics, metaClient MetaClient, locator visitorservice.Locator) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	return &Services{
		JWTService:        jwtService,
		AuthService:       authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, cfg.TrialDays),
		ProfileService:    profileservice.New(repo.ProfileRepo),
		SaleService:       saleservice.New(repo.SaleRepo, repo.ProfileRepo, repo.SpendRepo, m, cfg.Location()),
		WebhookService:    webhookservice.New(repo.WebhookRepo, repo.ProfileRepo, repo.TXManager),
		CredentialService: credentialservice.New(repo.CredentialRepo, repo.ProfileRepo, repo.TXManager),
		VisitorService:    visitorservice.New(repo.VisitorRepo, locator, m),
		OAuthService:      oauthservice.New(metaClient),
		CampaignService:   campaignservice.New(repo.CredentialRepo, metaClient),
	}
}
