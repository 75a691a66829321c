// Package geo resolves visitor IP addresses to a coarse location.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/pkg/clients"
)

const defaultTTL = 24 * time.Hour

var ErrLookupFailed = errors.New("geo lookup failed")

type Location struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
}

type Cache interface {
	Get(ctx context.Context, ip string) (*Location, error)
	Set(ctx context.Context, ip string, loc Location, ttl time.Duration) error
}

type Locator struct {
	baseURL string
	client  clients.HTTPClientI
	cache   Cache
	ttl     time.Duration
}

// New builds a Locator over an ip-api compatible endpoint. cache may be nil.
func New(baseURL string, client clients.HTTPClientI, cache Cache) *Locator {
	return &Locator{
		baseURL: baseURL,
		client:  client,
		cache:   cache,
		ttl:     defaultTTL,
	}
}

type ipAPIResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Country    string `json:"country"`
	RegionName string `json:"regionName"`
	City       string `json:"city"`
}

// Lookup returns an empty Location for addresses that cannot be geolocated
// (empty, private, loopback).
func (l *Locator) Lookup(ctx context.Context, ip string) (Location, error) {
	if !Routable(ip) {
		return Location{}, nil
	}

	if l.cache != nil {
		cached, err := l.cache.Get(ctx, ip)
		if err != nil {
			zap.L().Warn("geo cache read failed", zap.String("ip", ip), zap.Error(err))
		} else if cached != nil {
			return *cached, nil
		}
	}

	endpoint := l.baseURL + "/" + url.PathEscape(ip) + "?fields=status,message,country,regionName,city"
	status, body, _, err := l.client.Get(ctx, endpoint, nil)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if status != http.StatusOK {
		return Location{}, fmt.Errorf("%w: status %d", ErrLookupFailed, status)
	}

	var resp ipAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if resp.Status != "success" {
		return Location{}, fmt.Errorf("%w: %s", ErrLookupFailed, resp.Message)
	}

	loc := Location{Country: resp.Country, Region: resp.RegionName, City: resp.City}
	if l.cache != nil {
		if err := l.cache.Set(ctx, ip, loc, l.ttl); err != nil {
			zap.L().Warn("geo cache write failed", zap.String("ip", ip), zap.Error(err))
		}
	}
	return loc, nil
}

func Routable(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	return !(parsed.IsPrivate() || parsed.IsLoopback() || parsed.IsUnspecified() || parsed.IsLinkLocalUnicast())
}
