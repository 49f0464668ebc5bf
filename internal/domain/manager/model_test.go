package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineupStarts(t *testing.T) {
	t.Parallel()

	lineup := Lineup{UserID: "u1", StartingPlayerIDs: []string{"10", "11"}}
	assert.True(t, lineup.Starts("10"))
	assert.False(t, lineup.Starts("12"))
	assert.False(t, Lineup{}.Starts("10"))
}
