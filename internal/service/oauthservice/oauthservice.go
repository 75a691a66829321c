package oauthservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/internal/meta"
)

const (
	ActionGetAuthURL   = "get-auth-url"
	ActionExchangeCode = "exchange-code"
)

var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrMissingCode     = errors.New("code is required")
	ErrMissingRedirect = errors.New("redirectUri is required")
)

type MetaClient interface {
	AuthURL(redirectURI, state string) (string, error)
	ExchangeCode(ctx context.Context, code, redirectURI string) (*meta.Token, error)
	LongLivedToken(ctx context.Context, shortToken string) (*meta.Token, error)
	Me(ctx context.Context, accessToken string) (*meta.User, error)
	AdAccounts(ctx context.Context, accessToken string) ([]meta.AdAccount, error)
}

type AuthURL struct {
	URL   string
	State string
}

// Connection is everything the dashboard needs to store an ad account
// credential after the OAuth dance.
type Connection struct {
	AccessToken string
	ExpiresIn   int64
	ExpiresAt   *time.Time
	User        meta.User
	AdAccounts  []meta.AdAccount
}

type Service struct {
	client   MetaClient
	newState func() string
	now      func() time.Time
}

func New(client MetaClient) *Service {
	return &Service{
		client:   client,
		newState: uuid.NewString,
		now:      time.Now,
	}
}

func (s *Service) AuthURL(redirectURI string) (*AuthURL, error) {
	if strings.TrimSpace(redirectURI) == "" {
		return nil, ErrMissingRedirect
	}
	state := s.newState()
	url, err := s.client.AuthURL(redirectURI, state)
	if err != nil {
		return nil, err
	}
	return &AuthURL{URL: url, State: state}, nil
}

// Exchange trades an authorization code for a long-lived token and loads the
// user and the ad accounts it can manage.
func (s *Service) Exchange(ctx context.Context, code, redirectURI string) (*Connection, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrMissingCode
	}
	if strings.TrimSpace(redirectURI) == "" {
		return nil, ErrMissingRedirect
	}

	short, err := s.client.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		zap.L().Error("code exchange failed", zap.Error(err))
		return nil, err
	}

	token := short
	long, err := s.client.LongLivedToken(ctx, short.AccessToken)
	if err != nil {
		zap.L().Warn("long-lived token exchange failed, keeping short token", zap.Error(err))
	} else {
		token = long
	}

	user, err := s.client.Me(ctx, token.AccessToken)
	if err != nil {
		zap.L().Error("can't load meta user", zap.Error(err))
		return nil, err
	}
	accounts, err := s.client.AdAccounts(ctx, token.AccessToken)
	if err != nil {
		zap.L().Error("can't load ad accounts", zap.Error(err))
		return nil, err
	}

	conn := &Connection{
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
		User:        *user,
		AdAccounts:  accounts,
	}
	if token.ExpiresIn > 0 {
		expiresAt := s.now().Add(time.Duration(token.ExpiresIn) * time.Second)
		conn.ExpiresAt = &expiresAt
	}
	zap.L().Info("meta account connected", zap.String("metaUserID", user.ID), zap.Int("adAccounts", len(accounts)))
	return conn, nil
}
