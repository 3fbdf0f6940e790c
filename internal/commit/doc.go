// Package commit fixes the computer's move before the human chooses.
//
// A round commits by drawing a fresh 256-bit key from crypto/rand and
// hashing a distinguisher (the commit time) with HMAC-SHA256 under that key;
// the digest modulo the number of moves is the computer's move. Revealing the
// key after the human has played lets anyone recompute the move.
//
// Commitment.Digest additionally hashes key, distinguisher and move with
// SHA3-256, giving a value that can be shown up front without leaking the move.
package commit
