package repo

import (
	"github.com/GlebRadaev/gerenciaroi/internal/insights"
	"github.com/GlebRadaev/gerenciaroi/internal/pg"
	credentialrepo "github.com/GlebRadaev/gerenciaroi/internal/repo/credential-repo"
	profilerepo "github.com/GlebRadaev/gerenciaroi/internal/repo/profile-repo"
	salerepo "github.com/GlebRadaev/gerenciaroi/internal/repo/sale-repo"
	spendrepo "github.com/GlebRadaev/gerenciaroi/internal/repo/spend-repo"
	userrepo "github.com/GlebRadaev/gerenciaroi/internal/repo/user-repo"
	visitorrepo "github.com/GlebRadaev/gerenciaroi/internal/repo/visitor-repo"
	webhookrepo "github.com/GlebRadaev/gerenciaroi/internal/repo/webhook-repo"
	"github.com/GlebRadaev/gerenciaroi/internal/service/authservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/credentialservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/profileservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/saleservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/visitorservice"
	"github.com/GlebRadaev/gerenciaroi/internal/service/webhookservice"
)

// ProfileRepo is read by every plan-gated service and written by the sales
// summary.
type ProfileRepo interface {
	profileservice.Repo
	saleservice.ProfileRepo
	webhookservice.ProfileRepo
	credentialservice.ProfileRepo
}

// CredentialRepo serves the dashboard and the spend sync worker.
type CredentialRepo interface {
	credentialservice.Repo
	insights.CredentialRepo
}

type SpendRepo interface {
	saleservice.SpendRepo
	insights.SpendRepo
}

type Repositories struct {
	UserRepo       authservice.Repo
	ProfileRepo    ProfileRepo
	SaleRepo       saleservice.Repo
	WebhookRepo    webhookservice.Repo
	CredentialRepo CredentialRepo
	VisitorRepo    visitorservice.Repo
	SpendRepo      SpendRepo
	TXManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn, txManager),
		ProfileRepo:    profilerepo.New(conn),
		SaleRepo:       salerepo.New(conn),
		WebhookRepo:    webhookrepo.New(conn),
		CredentialRepo: credentialrepo.New(conn),
		VisitorRepo:    visitorrepo.New(conn),
		SpendRepo:      spendrepo.New(conn, txManager),
		TXManager:      txManager,
	}
}
