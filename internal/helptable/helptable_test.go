package helptable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairplay/internal/rules"
)

func TestBuildShape(t *testing.T) {
	moves := rules.MustParseMoveSet("Rock", "Paper", "Scissors")
	grid := Build(moves)

	require.Len(t, grid, 4)
	assert.Equal(t, []string{"", "Rock", "Paper", "Scissors"}, grid[0])
	assert.Equal(t, []string{"Rock", "Draw", "Lose", "Win"}, grid[1])
	assert.Equal(t, []string{"Paper", "Win", "Draw", "Lose"}, grid[2])
	assert.Equal(t, []string{"Scissors", "Lose", "Win", "Draw"}, grid[3])
}

func TestBuildSymmetry(t *testing.T) {
	for _, names := range [][]string{
		{"A", "B", "C"},
		{"Rock", "Paper", "Scissors", "Lizard", "Spock"},
		{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
	} {
		moves := rules.MustParseMoveSet(names...)
		grid := Build(moves)
		n := moves.Len()

		for i := 0; i < n; i++ {
			require.Len(t, grid[i+1], n+1)
			assert.Equal(t, "Draw", grid[i+1][i+1])
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				a, b := grid[i+1][j+1], grid[j+1][i+1]
				assert.ElementsMatch(t, []string{"Win", "Lose"}, []string{a, b}, "cells (%d,%d) and (%d,%d)", i, j, j, i)
			}
		}
	}
}

func TestRender(t *testing.T) {
	moves := rules.MustParseMoveSet("Rock", "Paper", "Scissors")
	out := Render(Build(moves), PlainStyles())

	for _, name := range moves.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Draw")
	assert.Contains(t, out, "+")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, header, separator, three rows, bottom border
	assert.Len(t, lines, 7)
}

func TestRenderEmpty(t *testing.T) {
	assert.Empty(t, Render(nil, DefaultStyles()))
}
