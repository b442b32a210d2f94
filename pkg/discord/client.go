// Package discord — Discord OAuth2 ve REST API istemcisi.
//
// Sadece VYNK'in ihtiyaç duyduğu dar yüzey:
//   - authorize URL üretimi (identify + guilds scope)
//   - authorization code → access token exchange
//   - GET /users/@me ve GET /users/@me/guilds
//
// OAuth2 kısmı golang.org/x/oauth2 ile yapılır; REST çağrıları aynı
// *http.Client üzerinden Bearer header ile gider. Test'lerde Client
// interface'i stub'lanır veya httptest.Server'a yönlendirilir.
package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg/metrics"
	"golang.org/x/oauth2"
)

// Discord çağrı hataları. Altta yatan sebep %w ile sarılır.
var (
	ErrTokenExchange = errors.New("discord: token exchange failed")
	ErrIdentityFetch = errors.New("discord: identity fetch failed")
	ErrGuildFetch    = errors.New("discord: guild fetch failed")
)

// Scopes, login sırasında istenen OAuth2 scope'ları.
var Scopes = []string{"identify", "guilds"}

// maxBodySize, Discord yanıtları için okuma sınırı.
const maxBodySize = 1 << 20

// Metric endpoint label'ları.
const (
	endpointToken  = "token"
	endpointUser   = "users_me"
	endpointGuilds = "users_me_guilds"
)

// Client, Discord ile konuşan dar interface.
type Client interface {
	// AuthCodeURL, kullanıcının yönlendirileceği consent URL'i.
	AuthCodeURL() string

	// ExchangeCode, callback'ten gelen code'u access token'a çevirir.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// CurrentUser, token sahibinin kimliğini döner.
	CurrentUser(ctx context.Context, accessToken string) (*models.DiscordUser, error)

	// CurrentUserGuilds, token sahibinin üye olduğu guild'leri Discord'un sırasıyla döner.
	CurrentUserGuilds(ctx context.Context, accessToken string) ([]models.DiscordGuild, error)
}

// Options, NewClient parametreleri.
type Options struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	APIBase      string // örn: https://discord.com/api/v10
	AuthorizeURL string // örn: https://discord.com/oauth2/authorize
	Timeout      time.Duration
}

type oauthClient struct {
	oauth      *oauth2.Config
	apiBase    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewClient, x/oauth2 tabanlı Discord istemcisi oluşturur.
// m nil olabilir — metrik kaydı atlanır.
func NewClient(opts Options, m *metrics.Metrics) Client {
	apiBase := strings.TrimRight(opts.APIBase, "/")

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &oauthClient{
		oauth: &oauth2.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			RedirectURL:  opts.RedirectURI,
			Scopes:       Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  opts.AuthorizeURL,
				TokenURL: apiBase + "/oauth2/token",
				// Discord client_id/client_secret'ı form body'de bekler.
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiBase:    apiBase,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

// AuthCodeURL, state parametresi olmadan consent URL'i üretir.
// Callback sözleşmesi sadece ?code= bekler.
func (c *oauthClient) AuthCodeURL() string {
	return c.oauth.AuthCodeURL("")
}

func (c *oauthClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauth.Exchange(ctx, code,
		oauth2.SetAuthURLParam("scope", strings.Join(Scopes, " ")),
	)
	if err != nil {
		c.metrics.ObserveDiscord(endpointToken, metrics.OutcomeError)
		return "", fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}

	c.metrics.ObserveDiscord(endpointToken, metrics.OutcomeSuccess)
	return token.AccessToken, nil
}

func (c *oauthClient) CurrentUser(ctx context.Context, accessToken string) (*models.DiscordUser, error) {
	var user models.DiscordUser
	if err := c.getJSON(ctx, endpointUser, "/users/@me", accessToken, &user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIdentityFetch, err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: response has no user id", ErrIdentityFetch)
	}
	return &user, nil
}

func (c *oauthClient) CurrentUserGuilds(ctx context.Context, accessToken string) ([]models.DiscordGuild, error) {
	var guilds []models.DiscordGuild
	if err := c.getJSON(ctx, endpointGuilds, "/users/@me/guilds", accessToken, &guilds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGuildFetch, err)
	}
	return guilds, nil
}

// getJSON, Bearer token ile GET yapar ve 200 yanıtı dst'ye decode eder.
// 200 dışı her status hata sayılır.
func (c *oauthClient) getJSON(ctx context.Context, endpoint, path, accessToken string, dst any) (err error) {
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeError
		}
		c.metrics.ObserveDiscord(endpoint, outcome)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}).SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Body'yi drain et ki bağlantı yeniden kullanılabilsin.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
