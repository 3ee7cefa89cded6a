package deps

import (
	"net/url"
	"time"

	"github.com/creziapro/site/internal/auth"
	"github.com/creziapro/site/internal/logger"
	"github.com/creziapro/site/internal/storage"
	"github.com/creziapro/site/internal/store"
)

// Deps is everything handlers and route registrars share.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Store       *store.Store  // the record store behind every resource
	KV          storage.KV    // durable medium, pinged by readyz
	Credentials auth.Verifier // back-office credential check

	ChatAgent *url.URL // base URL of the external chat agent, nil = proxy disabled

	AllowedOrigins []string // CORS origins
	AllowedHosts   []string // Host headers allowed to reach the server
	AllowedCIDRS   []string // IPs allowed to hit infra endpoints
	TrustProxy     bool     // trust forwarded-for headers from the proxy

	RateLimitBurst  int // public-write bucket size
	RateLimitPerMin int // public-write refill per IP per minute
}
