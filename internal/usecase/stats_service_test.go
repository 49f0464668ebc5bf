package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/stats"
	statsmock "github.com/riskibarqy/fantasy-dashboard/internal/mocks/domain/stats"
)

func TestStatsService_DisabledStore(t *testing.T) {
	t.Parallel()

	service := NewStatsService(nil)
	assert.False(t, service.Enabled())

	_, err := service.PlayerSeasonPoints(t.Context(), "p1")
	require.ErrorIs(t, err, ErrDependencyUnavailable)
	_, err = service.ClubFixtures(t.Context(), "2", 0)
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestStatsService_PlayerMarketValues_DefaultsAndCapsWindow(t *testing.T) {
	t.Parallel()

	repo := statsmock.NewRepository(t)
	service := NewStatsService(repo)

	points := []stats.MarketValuePoint{{PlayerID: "p1", RecordedOn: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), MarketValue: 5}}
	repo.On("ListMarketValues", mock.Anything, "p1", defaultMarketValueDays).Return(points, nil).Once()
	repo.On("ListMarketValues", mock.Anything, "p1", maxMarketValueDays).Return(points, nil).Once()

	got, err := service.PlayerMarketValues(t.Context(), "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, points, got)

	_, err = service.PlayerMarketValues(t.Context(), "p1", 10_000)
	require.NoError(t, err)

	_, err = service.PlayerMarketValues(t.Context(), "p1", -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestStatsService_PlayerMatchdayPoints_RequiresSeason(t *testing.T) {
	t.Parallel()

	service := NewStatsService(statsmock.NewRepository(t))
	_, err := service.PlayerMatchdayPoints(t.Context(), "p1", 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestStatsService_PlayerSeasonPoints(t *testing.T) {
	t.Parallel()

	repo := statsmock.NewRepository(t)
	service := NewStatsService(repo)

	rows := []stats.SeasonPoints{{PlayerID: "p1", SeasonID: 2025, Points: 210}}
	repo.On("ListSeasonPoints", mock.Anything, "p1").Return(rows, nil).Once()

	got, err := service.PlayerSeasonPoints(t.Context(), " p1 ")
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
