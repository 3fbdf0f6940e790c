package commit

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"

	"golang.org/x/crypto/sha3"

	"github.com/lox/fairplay/internal/rules"
)

const commitDomain = "fairplay-commit\x00"

// Commitment is the computer's fixed choice for one round.
type Commitment struct {
	Key           Key
	Distinguisher Distinguisher
	MoveIndex     int
	Move          string
}

// Commit generates a fresh key, evaluates the move for d, and returns the
// resulting commitment.
func Commit(keys KeySource, eval Evaluator, moves rules.MoveSet, d Distinguisher) (Commitment, error) {
	key, err := keys.GenerateKey()
	if err != nil {
		return Commitment{}, err
	}
	idx, name := eval.Evaluate(key, moves, d)
	return Commitment{Key: key, Distinguisher: d, MoveIndex: idx, Move: name}, nil
}

// Digest binds the key, distinguisher and move index. It can be published
// before the opponent acts without revealing the move.
func (c Commitment) Digest() string {
	return hex.EncodeToString(digest(c.Key, c.Distinguisher, c.MoveIndex))
}

func digest(key Key, d Distinguisher, moveIndex int) []byte {
	h := sha3.New256()
	h.Write([]byte(commitDomain))
	h.Write(key[:])
	h.Write([]byte(d))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(moveIndex)))
	return h.Sum(nil)
}

// VerifyResult describes a recomputed round.
type VerifyResult struct {
	MoveIndex      int
	Move           string
	DigestChecked  bool
	DigestMatches  bool
	ExpectedDigest string
}

// Verify recomputes the move for a revealed key and distinguisher. When
// published is non-empty it is also checked against the commitment digest.
func Verify(eval Evaluator, key Key, d Distinguisher, moves rules.MoveSet, published string) (VerifyResult, error) {
	idx, name := eval.Evaluate(key, moves, d)
	res := VerifyResult{MoveIndex: idx, Move: name}

	expected := digest(key, d, idx)
	res.ExpectedDigest = hex.EncodeToString(expected)

	if published == "" {
		return res, nil
	}

	got, err := hex.DecodeString(published)
	if err != nil {
		return res, fmt.Errorf("decoding commitment: %w", err)
	}
	res.DigestChecked = true
	res.DigestMatches = subtle.ConstantTimeCompare(got, expected) == 1
	return res, nil
}
