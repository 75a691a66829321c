package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gerenciaroi/internal/pg"
	credentialrepo "github.com/GlebRadaev/gerenciaroi/internal/repo/credential-repo"
	profilerepo "github.com/GlebRadaev/gerenciaroi/internal/repo/profile-repo"
	salerepo "github.com/GlebRadaev/gerenciaroi/internal/repo/sale-repo"
	spendrepo "github.com/GlebRadaev/gerenciaroi/internal/repo/spend-repo"
	userrepo "github.com/GlebRadaev/gerenciaroi/internal/repo/user-repo"
	visitorrepo "github.com/GlebRadaev/gerenciaroi/internal/repo/visitor-repo"
	webhookrepo "github.com/GlebRadaev/gerenciaroi/internal/repo/webhook-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, pg.NewMockTXManager(ctrl)), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &profilerepo.Repository{}, repo.ProfileRepo)
	assert.IsType(t, &salerepo.Repository{}, repo.SaleRepo)
	assert.IsType(t, &webhookrepo.Repository{}, repo.WebhookRepo)
	assert.IsType(t, &credentialrepo.Repository{}, repo.CredentialRepo)
	assert.IsType(t, &visitorrepo.Repository{}, repo.VisitorRepo)
	assert.IsType(t, &spendrepo.Repository{}, repo.SpendRepo)
	assert.NotNil(t, repo.TXManager)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
