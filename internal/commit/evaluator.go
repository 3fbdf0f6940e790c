package commit

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
	"strconv"
	"time"

	"github.com/lox/fairplay/internal/rules"
)

// Distinguisher is mixed into the keyed hash so the same key hashed at
// different moments yields different moves. It is the decimal Unix time in
// milliseconds at which the round was committed.
type Distinguisher string

// DistinguisherAt returns the distinguisher for instant t.
func DistinguisherAt(t time.Time) Distinguisher {
	return Distinguisher(strconv.FormatInt(t.UnixMilli(), 10))
}

// Evaluator derives the computer's move from a key and a distinguisher.
type Evaluator interface {
	Evaluate(key Key, moves rules.MoveSet, d Distinguisher) (int, string)
}

// HMACEvaluator picks the move as HMAC-SHA256(key, d) mod n.
//
// The HMAC key is the hex text of the key, not the raw bytes, so anyone
// holding the revealed "HMAC key" line can recompute the digest with any
// standard HMAC tool.
type HMACEvaluator struct{}

// Digest returns HMAC-SHA256 over d keyed by the hex text of key.
func (HMACEvaluator) Digest(key Key, d Distinguisher) []byte {
	mac := hmac.New(sha256.New, []byte(key.String()))
	mac.Write([]byte(d))
	return mac.Sum(nil)
}

// Evaluate returns the committed move index and its name.
func (e HMACEvaluator) Evaluate(key Key, moves rules.MoveSet, d Distinguisher) (int, string) {
	digest := new(big.Int).SetBytes(e.Digest(key, d))
	idx := int(digest.Mod(digest, big.NewInt(int64(moves.Len()))).Int64())
	return idx, moves.Name(idx)
}
