package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/league"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/player"
)

type LeagueService struct {
	provider Provider
}

func NewLeagueService(provider Provider) *LeagueService {
	return &LeagueService{provider: provider}
}

func (s *LeagueService) List(ctx context.Context, token string) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.List")
	defer span.End()

	leagues, err := s.provider.Leagues(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *LeagueService) Overview(ctx context.Context, token, leagueID string) (league.Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Overview")
	defer span.End()

	leagueID, err := requireID("league id", leagueID)
	if err != nil {
		return league.Overview{}, err
	}
	overview, err := s.provider.LeagueOverview(ctx, token, leagueID)
	if err != nil {
		return league.Overview{}, fmt.Errorf("get league overview: %w", err)
	}
	return overview, nil
}

func (s *LeagueService) Ranking(ctx context.Context, token, leagueID string, dayNumber int) ([]league.RankingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Ranking")
	defer span.End()

	leagueID, err := requireID("league id", leagueID)
	if err != nil {
		return nil, err
	}
	if dayNumber < 0 {
		return nil, fmt.Errorf("%w: day number must not be negative", ErrInvalidInput)
	}
	rows, err := s.provider.LeagueRanking(ctx, token, leagueID, dayNumber)
	if err != nil {
		return nil, fmt.Errorf("get league ranking: %w", err)
	}
	return rows, nil
}

// MarketFilter narrows the transfer market. Zero values disable a filter.
type MarketFilter struct {
	Position  player.Position
	MaxPrice  int64
	OnlyFree  bool
	SortByAsk bool
}

func (s *LeagueService) Market(ctx context.Context, token, leagueID string, filter MarketFilter) ([]player.MarketListing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Market")
	defer span.End()

	leagueID, err := requireID("league id", leagueID)
	if err != nil {
		return nil, err
	}
	listings, err := s.provider.LeagueMarket(ctx, token, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league market: %w", err)
	}
	return applyMarketFilter(listings, filter), nil
}

func applyMarketFilter(listings []player.MarketListing, filter MarketFilter) []player.MarketListing {
	out := make([]player.MarketListing, 0, len(listings))
	for _, listing := range listings {
		if filter.Position != player.PositionUnknown && listing.Position != filter.Position {
			continue
		}
		if filter.MaxPrice > 0 && listing.AskingPrice > filter.MaxPrice {
			continue
		}
		if filter.OnlyFree && listing.Seller != nil {
			continue
		}
		out = append(out, listing)
	}
	if filter.SortByAsk {
		slices.SortStableFunc(out, func(a, b player.MarketListing) int {
			return cmp.Compare(a.AskingPrice, b.AskingPrice)
		})
	}
	return out
}

func requireID(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	return value, nil
}
