package commit

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairplay/internal/rules"
)

func fixedKey(b byte) Key {
	var k Key
	for i := range k {
		k[i] = b + byte(i)
	}
	return k
}

func TestDistinguisherAt(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	assert.Equal(t, Distinguisher("1700000000123"), DistinguisherAt(ts))
}

func TestHMACEvaluatorDeterministic(t *testing.T) {
	moves := rules.MustParseMoveSet("Rock", "Paper", "Scissors", "Lizard", "Spock")
	key := fixedKey(7)
	d := Distinguisher("1700000000000")

	var eval HMACEvaluator
	idx, name := eval.Evaluate(key, moves, d)
	for i := 0; i < 100; i++ {
		gotIdx, gotName := eval.Evaluate(key, moves, d)
		assert.Equal(t, idx, gotIdx)
		assert.Equal(t, name, gotName)
	}
	assert.Equal(t, moves.Name(idx), name)
}

func TestHMACEvaluatorMatchesStandardHMAC(t *testing.T) {
	moves := rules.MustParseMoveSet("A", "B", "C", "D", "E", "F", "G")
	key := fixedKey(42)
	d := Distinguisher("1234567890123")

	mac := hmac.New(sha256.New, []byte(key.String()))
	mac.Write([]byte(d))
	want := new(big.Int).Mod(new(big.Int).SetBytes(mac.Sum(nil)), big.NewInt(7))

	idx, _ := HMACEvaluator{}.Evaluate(key, moves, d)
	assert.Equal(t, int(want.Int64()), idx)
}

func TestHMACEvaluatorDistinguisherMatters(t *testing.T) {
	key := fixedKey(1)

	var eval HMACEvaluator
	digests := map[string]bool{}
	for i := 0; i < 20; i++ {
		d := DistinguisherAt(time.UnixMilli(int64(1700000000000 + i)))
		digests[string(eval.Digest(key, d))] = true
	}
	assert.Len(t, digests, 20)
}

func TestHMACEvaluatorCoversAllMoves(t *testing.T) {
	moves := rules.MustParseMoveSet("A", "B", "C", "D", "E")
	src := NewCryptoKeySource()

	counts := make([]int, moves.Len())
	for i := 0; i < 500; i++ {
		key, err := src.GenerateKey()
		require.NoError(t, err)
		idx, _ := HMACEvaluator{}.Evaluate(key, moves, "0")
		require.True(t, idx >= 0 && idx < moves.Len())
		counts[idx]++
	}
	for i, c := range counts {
		assert.Positive(t, c, "move %d never chosen", i)
	}
}
