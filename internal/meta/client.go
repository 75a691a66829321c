// Package meta talks to the Facebook Graph API on behalf of connected ad
// accounts.
package meta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/gerenciaroi/pkg/clients"
)

var (
	ErrNotConfigured = errors.New("meta app is not configured")
	ErrRateLimited   = errors.New("meta rate limit reached")
)

// GraphError is an error object returned by the Graph API.
type GraphError struct {
	Status  int
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("graph api error %d (%s): %s", e.Code, e.Type, e.Message)
}

// RateLimitError carries the upstream Retry-After hint. Graph is set when the
// throttle was reported as an error object rather than a 429.
type RateLimitError struct {
	RetryAfter time.Duration
	Graph      *GraphError
}

func (e *RateLimitError) Error() string {
	if e.Graph != nil {
		return fmt.Sprintf("%s, retry after %s: %s", ErrRateLimited, e.RetryAfter, e.Graph.Message)
	}
	return fmt.Sprintf("%s, retry after %s", ErrRateLimited, e.RetryAfter)
}

func (e *RateLimitError) Unwrap() []error {
	if e.Graph != nil {
		return []error{ErrRateLimited, e.Graph}
	}
	return []error{ErrRateLimited}
}

// throttleBackoff is used when a throttle error comes without Retry-After.
const throttleBackoff = time.Minute

// Graph error codes for app, user, page and ad account level throttling.
var throttleCodes = map[int]struct{}{
	4: {}, 17: {}, 32: {}, 613: {},
	80000: {}, 80001: {}, 80002: {}, 80003: {}, 80004: {}, 80005: {},
	80006: {}, 80008: {}, 80009: {}, 80014: {},
}

func isThrottle(code int) bool {
	_, ok := throttleCodes[code]
	return ok
}

type Config struct {
	AppID     string
	AppSecret string
	GraphURL  string
	DialogURL string
}

type Client struct {
	cfg    Config
	client clients.HTTPClientI
}

func New(cfg Config, client clients.HTTPClientI) *Client {
	cfg.GraphURL = strings.TrimRight(cfg.GraphURL, "/")
	return &Client{cfg: cfg, client: client}
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
}

var scopes = []string{"ads_read", "ads_management", "business_management"}

func (c *Client) Configured() bool {
	return c.cfg.AppID != "" && c.cfg.AppSecret != ""
}

// AuthURL builds the login dialog URL the browser is sent to.
func (c *Client) AuthURL(redirectURI, state string) (string, error) {
	if c.cfg.AppID == "" {
		return "", ErrNotConfigured
	}
	q := url.Values{}
	q.Set("client_id", c.cfg.AppID)
	q.Set("redirect_uri", redirectURI)
	q.Set("state", state)
	q.Set("response_type", "code")
	q.Set("scope", strings.Join(scopes, ","))
	return c.cfg.DialogURL + "?" + q.Encode(), nil
}

func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (*Token, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	q := url.Values{}
	q.Set("client_id", c.cfg.AppID)
	q.Set("client_secret", c.cfg.AppSecret)
	q.Set("redirect_uri", redirectURI)
	q.Set("code", code)

	var token Token
	if err := c.get(ctx, "/oauth/access_token", q, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// LongLivedToken swaps a short-lived user token for a ~60 day one.
func (c *Client) LongLivedToken(ctx context.Context, shortToken string) (*Token, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	q := url.Values{}
	q.Set("grant_type", "fb_exchange_token")
	q.Set("client_id", c.cfg.AppID)
	q.Set("client_secret", c.cfg.AppSecret)
	q.Set("fb_exchange_token", shortToken)

	var token Token
	if err := c.get(ctx, "/oauth/access_token", q, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) Me(ctx context.Context, accessToken string) (*User, error) {
	q := url.Values{}
	q.Set("fields", "id,name,email")
	q.Set("access_token", accessToken)

	var user User
	if err := c.get(ctx, "/me", q, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) AdAccounts(ctx context.Context, accessToken string) ([]AdAccount, error) {
	q := url.Values{}
	q.Set("fields", "id,account_id,name,account_status,currency")
	q.Set("limit", "100")
	q.Set("access_token", accessToken)

	var page struct {
		Data []AdAccount `json:"data"`
	}
	if err := c.get(ctx, "/me/adaccounts", q, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// AccountSpend returns the amount spent by an ad account on the given day.
func (c *Client) AccountSpend(ctx context.Context, accessToken, accountID string, day time.Time) (float64, error) {
	date := day.Format(time.DateOnly)
	q := url.Values{}
	q.Set("fields", "spend")
	q.Set("level", "account")
	q.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`, date, date))
	q.Set("access_token", accessToken)

	var page struct {
		Data []struct {
			Spend string `json:"spend"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/"+actID(accountID)+"/insights", q, &page); err != nil {
		return 0, err
	}

	var total float64
	for _, row := range page.Data {
		v, err := strconv.ParseFloat(row.Spend, 64)
		if err != nil {
			return 0, fmt.Errorf("parse spend %q: %w", row.Spend, err)
		}
		total += v
	}
	return total, nil
}

// UpdateDailyBudget sets a campaign daily budget, in cents of the account
// currency.
func (c *Client) UpdateDailyBudget(ctx context.Context, accessToken, campaignID string, cents int64) error {
	form := url.Values{}
	form.Set("daily_budget", strconv.FormatInt(cents, 10))
	form.Set("access_token", accessToken)

	status, body, headers, err := c.client.PostForm(ctx, c.cfg.GraphURL+"/"+url.PathEscape(campaignID), form)
	if err != nil {
		return err
	}
	return decode(status, body, headers, nil)
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dst any) error {
	status, body, headers, err := c.client.Get(ctx, c.cfg.GraphURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	return decode(status, body, headers, dst)
}

func decode(status int, body []byte, headers http.Header, dst any) error {
	if status == http.StatusTooManyRequests {
		return &RateLimitError{RetryAfter: retryAfter(headers, time.Second)}
	}

	if status < 200 || status >= 300 {
		var envelope struct {
			Error *GraphError `json:"error"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
			envelope.Error.Status = status
			if isThrottle(envelope.Error.Code) {
				return &RateLimitError{RetryAfter: retryAfter(headers, throttleBackoff), Graph: envelope.Error}
			}
			return envelope.Error
		}
		return &GraphError{Status: status, Message: http.StatusText(status)}
	}

	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to parse graph response: %w", err)
	}
	return nil
}

func retryAfter(headers http.Header, fallback time.Duration) time.Duration {
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

func actID(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
