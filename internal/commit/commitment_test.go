package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairplay/internal/rules"
)

type sequenceKeys struct {
	next byte
}

func (s *sequenceKeys) GenerateKey() (Key, error) {
	s.next++
	return fixedKey(s.next), nil
}

func TestCommitAndVerify(t *testing.T) {
	moves := rules.MustParseMoveSet("Rock", "Paper", "Scissors")
	eval := HMACEvaluator{}

	c, err := Commit(&sequenceKeys{}, eval, moves, "1700000000000")
	require.NoError(t, err)
	assert.Equal(t, moves.Name(c.MoveIndex), c.Move)

	res, err := Verify(eval, c.Key, c.Distinguisher, moves, c.Digest())
	require.NoError(t, err)
	assert.Equal(t, c.MoveIndex, res.MoveIndex)
	assert.Equal(t, c.Move, res.Move)
	assert.True(t, res.DigestChecked)
	assert.True(t, res.DigestMatches)
	assert.Equal(t, c.Digest(), res.ExpectedDigest)
}

func TestVerifyDetectsTampering(t *testing.T) {
	moves := rules.MustParseMoveSet("Rock", "Paper", "Scissors")
	eval := HMACEvaluator{}

	c, err := Commit(&sequenceKeys{}, eval, moves, "1700000000000")
	require.NoError(t, err)

	t.Run("different distinguisher", func(t *testing.T) {
		res, err := Verify(eval, c.Key, "1700000000001", moves, c.Digest())
		require.NoError(t, err)
		assert.False(t, res.DigestMatches)
	})

	t.Run("different key", func(t *testing.T) {
		res, err := Verify(eval, fixedKey(99), c.Distinguisher, moves, c.Digest())
		require.NoError(t, err)
		assert.False(t, res.DigestMatches)
	})

	t.Run("malformed digest", func(t *testing.T) {
		_, err := Verify(eval, c.Key, c.Distinguisher, moves, "not-hex")
		assert.Error(t, err)
	})

	t.Run("no digest supplied", func(t *testing.T) {
		res, err := Verify(eval, c.Key, c.Distinguisher, moves, "")
		require.NoError(t, err)
		assert.False(t, res.DigestChecked)
		assert.Equal(t, c.MoveIndex, res.MoveIndex)
	})
}

func TestDigestDependsOnKey(t *testing.T) {
	c := Commitment{Key: fixedKey(3), Distinguisher: "1", MoveIndex: 0, Move: "Rock"}
	other := c
	other.Key = fixedKey(4)

	assert.Len(t, c.Digest(), 64)
	assert.NotEqual(t, c.Digest(), other.Digest())
}
