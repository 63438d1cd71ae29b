// Package etsy binds the OAuth 1.0a signing core to the Etsy marketplace
// API: endpoint URLs, configuration loading, the credential exchange, and
// signing of resource-call URLs.
package etsy

import (
	"context"
	"strings"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/skuvault/etsyAccess/core"
	"github.com/skuvault/etsyAccess/oauth1"
	"github.com/skuvault/etsyAccess/transport"
)

const (
	ProviderID = "etsy"

	requestTokenPath = "/oauth/request_token"
	accessTokenPath  = "/oauth/access_token"
)

// Config configures one provider instance. Blank fields fall back to
// DefaultConfig values; Transport defaults to the REST adapter.
type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
	APIBaseURL     string
	RetryAttempts  int
	Transport      core.TransportAdapter
	Logger         core.Logger
	LoggerProvider core.LoggerProvider
	Nonce          func() string
	Now            func() time.Time
}

func DefaultConfig() Config {
	defaults := core.DefaultConfig()
	return Config{
		APIBaseURL:    defaults.APIBaseURL,
		RetryAttempts: defaults.RetryAttempts,
	}
}

// FromCoreConfig maps a resolved core.Config onto the provider config.
func FromCoreConfig(cfg core.Config) Config {
	return Config{
		ConsumerKey:    cfg.ConsumerKey,
		ConsumerSecret: cfg.ConsumerSecret,
		APIBaseURL:     cfg.APIBaseURL,
		RetryAttempts:  cfg.RetryAttempts,
	}
}

// Provider is the Etsy-bound facade over the signing core. It is immutable
// after construction and safe for concurrent use.
type Provider struct {
	signing       core.SigningContext
	authenticator *oauth1.Authenticator
	exchanger     *oauth1.CredentialExchanger
	apiBaseURL    string
	logger        core.Logger
}

func New(cfg Config) (*Provider, error) {
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		cfg.APIBaseURL = defaults.APIBaseURL
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = defaults.RetryAttempts
	}
	if cfg.Transport == nil {
		cfg.Transport = transport.NewRESTAdapter(nil)
	}

	provider, logger := glog.Resolve(ProviderID, cfg.LoggerProvider, cfg.Logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger(ProviderID); named != nil {
			logger = glog.Ensure(named)
		}
	}

	signing, err := core.NewSigningContext(cfg.ConsumerKey, cfg.ConsumerSecret, cfg.Token, cfg.TokenSecret)
	if err != nil {
		return nil, err
	}

	apiBaseURL := strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	exchanger, err := oauth1.NewCredentialExchanger(oauth1.ExchangerConfig{
		Signing:         signing,
		RequestTokenURL: apiBaseURL + requestTokenPath,
		AccessTokenURL:  apiBaseURL + accessTokenPath,
		Transport:       cfg.Transport,
		Retry: oauth1.RetryPolicy{
			MaxAttempts: cfg.RetryAttempts,
		},
		Logger: logger,
		Nonce:  cfg.Nonce,
		Now:    cfg.Now,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		signing: signing,
		authenticator: oauth1.NewAuthenticator(oauth1.AuthenticatorConfig{
			Signing: signing,
			Nonce:   cfg.Nonce,
			Now:     cfg.Now,
		}),
		exchanger:  exchanger,
		apiBaseURL: apiBaseURL,
		logger:     logger,
	}, nil
}

// RequestTemporaryCredentials starts the handshake and returns the token
// pair plus the login URL the user must visit to authorize the application.
func (p *Provider) RequestTemporaryCredentials(ctx context.Context, scopes []string) (oauth1.ExchangeResult, error) {
	return p.exchanger.RequestTemporaryCredentials(ctx, scopes)
}

// ExchangePermanentCredentials trades the authorized temporary credentials
// and verifier code for the permanent access token pair.
func (p *Provider) ExchangePermanentCredentials(ctx context.Context, temporaryToken, temporaryTokenSecret, verifierCode string) (oauth1.ExchangeResult, error) {
	return p.exchanger.ExchangePermanentCredentials(ctx, temporaryToken, temporaryTokenSecret, verifierCode)
}

// SignResourceURL produces a signed URL for an arbitrary resource call under
// the API base, using the configured access token pair. Outer collaborators
// issue the call themselves and consume the raw response bytes.
func (p *Provider) SignResourceURL(method, resourcePath string, params map[string]string) (string, error) {
	path := strings.TrimSpace(resourcePath)
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return p.authenticator.SignedURL(p.apiBaseURL+path, method, p.signing.TokenSecret, params)
}

// LoadConfig resolves the module configuration through the cfgx provider and
// the layered options resolver: defaults, then loader values, then runtime
// overrides.
func LoadConfig(ctx context.Context, loader core.RawConfigLoader, runtime core.Config) (core.Config, error) {
	defaults := core.DefaultConfig()
	loaded, err := core.NewCfgxConfigProvider(loader).Load(ctx, defaults)
	if err != nil {
		return core.Config{}, err
	}
	return core.GoOptionsResolver{}.Resolve(defaults, loaded, runtime)
}
