package kickbase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/league"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/manager"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/player"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/user"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-dashboard/internal/usecase"
)

type ClientConfig struct {
	BaseURL        string
	ImageBaseURL   string
	Transport      string
	Executor       Executor
	Timeout        time.Duration
	MaxAttempts    int
	BackoffBase    time.Duration
	RateLimitRPS   float64
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Sleep          SleepFunc
}

// Client exposes one method per upstream endpoint. Every method except Login
// needs the caller's bearer token and returns domain types.
type Client struct {
	baseURL    string
	requester  *Requester
	normalizer Normalizer
	logger     *logging.Logger
}

var _ usecase.Provider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	executor := cfg.Executor
	if executor == nil {
		executor = NewExecutor(cfg.Transport, cfg.Timeout)
	}

	return &Client{
		baseURL: baseURL,
		requester: NewRequester(RequesterConfig{
			Executor:       executor,
			MaxAttempts:    cfg.MaxAttempts,
			BackoffBase:    cfg.BackoffBase,
			RateLimitRPS:   cfg.RateLimitRPS,
			CircuitBreaker: cfg.CircuitBreaker,
			Logger:         logger,
			Sleep:          cfg.Sleep,
		}),
		normalizer: NewNormalizer(cfg.ImageBaseURL),
		logger:     logger,
	}
}

type loginBody struct {
	Email    string         `json:"em"`
	Password string         `json:"pass"`
	Loyalty  bool           `json:"loy"`
	Rep      map[string]any `json:"rep"`
}

func (c *Client) Login(ctx context.Context, email, password string) (user.Session, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.Login")
	defer span.End()

	const path = "/v4/user/login"
	body, err := sonic.Marshal(loginBody{Email: email, Password: password, Rep: map[string]any{}})
	if err != nil {
		return user.Session{}, crerr.Wrap(err, "encode login body")
	}

	root, err := c.fetchObject(ctx, http.MethodPost, "", path, nil, body)
	if err != nil {
		return user.Session{}, err
	}

	session := c.normalizer.Session(root)
	if !session.Credentials.Valid() {
		return user.Session{}, shapeMismatch(path, "login response has no token")
	}
	return session, nil
}

func (c *Client) Leagues(ctx context.Context, token string) ([]league.League, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.Leagues")
	defer span.End()

	const path = "/v4/leagues/selection"
	root, err := c.fetchObject(ctx, http.MethodGet, token, path, nil, nil)
	if err != nil {
		return nil, err
	}
	items, err := requireList(root, path, "it")
	if err != nil {
		return nil, err
	}
	return c.normalizer.leagues(items), nil
}

func (c *Client) LeagueOverview(ctx context.Context, token, leagueID string) (league.Overview, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.LeagueOverview")
	defer span.End()

	path, err := buildPath("/v4/leagues/{}/overview", leagueID)
	if err != nil {
		return league.Overview{}, err
	}
	root, err := c.fetchObject(ctx, http.MethodGet, token, path, nil, nil)
	if err != nil {
		return league.Overview{}, err
	}
	return c.normalizer.LeagueOverview(root, leagueID), nil
}

func (c *Client) LeagueRanking(ctx context.Context, token, leagueID string, dayNumber int) ([]league.RankingRow, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.LeagueRanking")
	defer span.End()

	path, err := buildPath("/v4/leagues/{}/ranking", leagueID)
	if err != nil {
		return nil, err
	}
	root, err := c.fetchObject(ctx, http.MethodGet, token, path, dayQuery(dayNumber), nil)
	if err != nil {
		return nil, err
	}
	items, err := requireList(root, path, "us")
	if err != nil {
		return nil, err
	}

	rows := make([]league.RankingRow, 0, len(items))
	for _, item := range items {
		if _, ok := asObject(item); !ok {
			continue
		}
		rows = append(rows, c.normalizer.RankingRow(item))
	}
	return rows, nil
}

func (c *Client) LeagueMarket(ctx context.Context, token, leagueID string) ([]player.MarketListing, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.LeagueMarket")
	defer span.End()

	path, err := buildPath("/v4/leagues/{}/market", leagueID)
	if err != nil {
		return nil, err
	}
	root, err := c.fetchObject(ctx, http.MethodGet, token, path, nil, nil)
	if err != nil {
		return nil, err
	}
	items, err := requireList(root, path, "it")
	if err != nil {
		return nil, err
	}

	listings := make([]player.MarketListing, 0, len(items))
	for _, item := range items {
		if _, ok := asObject(item); !ok {
			continue
		}
		listings = append(listings, c.normalizer.MarketListing(item))
	}
	return listings, nil
}

func (c *Client) ManagerSquad(ctx context.Context, token, leagueID, userID string) (manager.Squad, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.ManagerSquad")
	defer span.End()

	path, err := buildPath("/v4/leagues/{}/managers/{}/squad", leagueID, userID)
	if err != nil {
		return manager.Squad{}, err
	}
	root, err := c.fetchObject(ctx, http.MethodGet, token, path, nil, nil)
	if err != nil {
		return manager.Squad{}, err
	}
	if _, err := requireList(root, path, "it"); err != nil {
		return manager.Squad{}, err
	}
	return c.normalizer.Squad(root, userID), nil
}

func (c *Client) ManagerPerformance(ctx context.Context, token, leagueID, userID string) (manager.Performance, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.ManagerPerformance")
	defer span.End()

	path, err := buildPath("/v4/leagues/{}/managers/{}/performance", leagueID, userID)
	if err != nil {
		return manager.Performance{}, err
	}
	root, err := c.fetchObject(ctx, http.MethodGet, token, path, nil, nil)
	if err != nil {
		return manager.Performance{}, err
	}
	if _, err := requireList(root, path, "it"); err != nil {
		return manager.Performance{}, err
	}
	return c.normalizer.Performance(root, userID), nil
}

// ManagerLineup reads the team center of the league and extracts one manager.
// A manager without an entry gets an empty lineup, not an error.
func (c *Client) ManagerLineup(ctx context.Context, token, leagueID, userID string, dayNumber int) (manager.Lineup, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.ManagerLineup")
	defer span.End()

	path, err := buildPath("/v4/leagues/{}/teamcenter/myeleven", leagueID)
	if err != nil {
		return manager.Lineup{}, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return manager.Lineup{}, fmt.Errorf("%w: user id is required", usecase.ErrInvalidInput)
	}

	root, err := c.fetchObject(ctx, http.MethodGet, token, path, dayQuery(dayNumber), nil)
	if err != nil {
		return manager.Lineup{}, err
	}
	entries, err := requireList(root, path, "us")
	if err != nil {
		return manager.Lineup{}, err
	}

	lineup, found := c.normalizer.Lineup(entries, userID)
	if !found {
		c.logger.DebugContext(ctx, "manager has no team center entry", "league_id", leagueID, "user_id", userID)
	}
	return lineup, nil
}

func (c *Client) CompetitionTable(ctx context.Context, token, competitionID string) ([]team.StandingRow, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.CompetitionTable")
	defer span.End()

	path, err := buildPath("/v4/competitions/{}/table", competitionID)
	if err != nil {
		return nil, err
	}
	root, err := c.fetchObject(ctx, http.MethodGet, token, path, nil, nil)
	if err != nil {
		return nil, err
	}
	items, err := requireList(root, path, "it")
	if err != nil {
		return nil, err
	}
	return c.normalizer.StandingTable(items), nil
}

func (c *Client) TeamProfile(ctx context.Context, token, competitionID, teamID string) (team.Profile, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.TeamProfile")
	defer span.End()

	path, err := buildPath("/v4/competitions/{}/teams/{}/teamprofile", competitionID, teamID)
	if err != nil {
		return team.Profile{}, err
	}
	root, err := c.fetchObject(ctx, http.MethodGet, token, path, nil, nil)
	if err != nil {
		return team.Profile{}, err
	}
	return c.normalizer.TeamProfile(root, strings.TrimSpace(teamID)), nil
}

func (c *Client) Matchday(ctx context.Context, token, competitionID string, day int) (matchday.Matchday, error) {
	ctx, span := startSpan(ctx, "kickbase.Client.Matchday")
	defer span.End()

	path, err := buildPath("/v4/competitions/{}/matchdays", competitionID)
	if err != nil {
		return matchday.Matchday{}, err
	}
	root, err := c.fetchObject(ctx, http.MethodGet, token, path, nil, nil)
	if err != nil {
		return matchday.Matchday{}, err
	}
	if _, err := requireList(root, path, "it"); err != nil {
		return matchday.Matchday{}, err
	}

	md, ok := c.normalizer.Matchday(root, int64(day))
	if !ok {
		return matchday.Matchday{}, shapeMismatch(path, "no matchdays listed")
	}
	return md, nil
}

// fetchObject performs the call and insists on a JSON object at the root.
// An empty token is only allowed for the login endpoint.
func (c *Client) fetchObject(ctx context.Context, method, token, path string, query url.Values, body []byte) (object, error) {
	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("X-Request-ID", requestID(ctx))
	if path != "/v4/user/login" {
		token = strings.TrimSpace(token)
		if !(user.Credentials{BearerToken: token}).Valid() {
			return nil, fmt.Errorf("%w: bearer token is required", usecase.ErrAuthenticationMissing)
		}
		header.Set("Authorization", "Bearer "+token)
	}
	if len(body) > 0 {
		header.Set("Content-Type", "application/json")
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	result, err := c.requester.Do(ctx, fullURL, RequestOptions{Method: method, Header: header, Body: body})
	if err != nil {
		return nil, err
	}

	root, ok := asObject(result.Data)
	if !ok {
		return nil, shapeMismatch(path, "expected JSON object, got %T", result.Data)
	}
	return root, nil
}

func requireList(root object, path, key string) ([]any, error) {
	raw, present := root[key]
	if !present || raw == nil {
		return nil, shapeMismatch(path, "missing %q list", key)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, shapeMismatch(path, "%q is %T, expected list", key, raw)
	}
	return items, nil
}

// buildPath substitutes each {} with a validated, escaped path parameter.
func buildPath(pattern string, params ...string) (string, error) {
	var b strings.Builder
	rest := pattern
	for _, param := range params {
		idx := strings.Index(rest, "{}")
		if idx < 0 {
			return "", crerr.Newf("path pattern %q has fewer slots than params", pattern)
		}
		param = strings.TrimSpace(param)
		if param == "" || strings.ContainsAny(param, "/?#") {
			return "", fmt.Errorf("%w: invalid path parameter %q", usecase.ErrInvalidInput, param)
		}
		b.WriteString(rest[:idx])
		b.WriteString(url.PathEscape(param))
		rest = rest[idx+2:]
	}
	b.WriteString(rest)
	return b.String(), nil
}

func dayQuery(dayNumber int) url.Values {
	if dayNumber <= 0 {
		return nil
	}
	return url.Values{"dayNumber": []string{strconv.Itoa(dayNumber)}}
}

func requestID(ctx context.Context) string {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
