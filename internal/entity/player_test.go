package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayer(t *testing.T) {
	t.Run("Accepts either case", func(t *testing.T) {
		player, err := ParsePlayer("x")
		require.NoError(t, err)
		assert.Equal(t, PlayerX, player)

		player, err = ParsePlayer(" O ")
		require.NoError(t, err)
		assert.Equal(t, PlayerO, player)
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		_, err := ParsePlayer("random")
		require.Error(t, err)
	})
}

func TestRandomPlayer(t *testing.T) {
	// Not a statistical test, only checks that both marks show up
	seen := map[Player]bool{}
	for range 200 {
		player := RandomPlayer()
		require.Contains(t, []Player{PlayerX, PlayerO}, player)
		seen[player] = true
	}

	assert.True(t, seen[PlayerX])
	assert.True(t, seen[PlayerO])
}

func TestCell_Player(t *testing.T) {
	player, ok := CellOf(PlayerX).Player()
	assert.True(t, ok)
	assert.Equal(t, PlayerX, player)

	player, ok = CellOf(PlayerO).Player()
	assert.True(t, ok)
	assert.Equal(t, PlayerO, player)

	_, ok = EmptyCell.Player()
	assert.False(t, ok)
	assert.True(t, EmptyCell.IsEmpty())
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
}
