package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

type CompetitionService struct {
	provider Provider
}

func NewCompetitionService(provider Provider) *CompetitionService {
	return &CompetitionService{provider: provider}
}

func (s *CompetitionService) Table(ctx context.Context, token, competitionID string) ([]team.StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Table")
	defer span.End()

	competitionID, err := requireID("competition id", competitionID)
	if err != nil {
		return nil, err
	}
	rows, err := s.provider.CompetitionTable(ctx, token, competitionID)
	if err != nil {
		return nil, fmt.Errorf("get competition table: %w", err)
	}
	return rows, nil
}

func (s *CompetitionService) TeamProfile(ctx context.Context, token, competitionID, teamID string) (team.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.TeamProfile")
	defer span.End()

	competitionID, err := requireID("competition id", competitionID)
	if err != nil {
		return team.Profile{}, err
	}
	teamID, err = requireID("team id", teamID)
	if err != nil {
		return team.Profile{}, err
	}
	profile, err := s.provider.TeamProfile(ctx, token, competitionID, teamID)
	if err != nil {
		return team.Profile{}, fmt.Errorf("get team profile: %w", err)
	}
	return profile, nil
}

// Matchday returns the requested round; day 0 means the current one.
func (s *CompetitionService) Matchday(ctx context.Context, token, competitionID string, day int) (matchday.Matchday, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Matchday")
	defer span.End()

	competitionID, err := requireID("competition id", competitionID)
	if err != nil {
		return matchday.Matchday{}, err
	}
	if day < 0 {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday must not be negative", ErrInvalidInput)
	}
	md, err := s.provider.Matchday(ctx, token, competitionID, day)
	if err != nil {
		return matchday.Matchday{}, fmt.Errorf("get matchday: %w", err)
	}
	return md, nil
}

// TeamIdentity is served from the static table and never reaches upstream.
func (s *CompetitionService) TeamIdentity(ctx context.Context, teamID string) (team.Identity, error) {
	_, span := startUsecaseSpan(ctx, "usecase.CompetitionService.TeamIdentity")
	defer span.End()

	teamID, err := requireID("team id", teamID)
	if err != nil {
		return team.Identity{}, err
	}
	return team.Lookup(teamID), nil
}
