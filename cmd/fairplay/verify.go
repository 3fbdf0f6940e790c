package main

import (
	"errors"
	"fmt"

	"github.com/lox/fairplay/internal/commit"
)

type VerifyCmd struct {
	Key           string   `required:"" help:"Revealed HMAC key (64 hex characters)"`
	Distinguisher string   `required:"" help:"Revealed distinguisher"`
	Commitment    string   `help:"Commitment shown before the round (strict mode HMAC line)"`
	Moves         []string `arg:"" optional:"" help:"Move names in the order used for the game"`
}

var errCommitmentMismatch = errors.New("commitment does not match the revealed round")

func (c *VerifyCmd) Run(g *Globals) error {
	cfg, logger, closer, _, err := g.setup()
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	moves, err := moveSet(c.Moves, cfg, "verify --key KEY --distinguisher D")
	if err != nil {
		return err
	}

	key, err := commit.ParseKey(c.Key)
	if err != nil {
		return err
	}

	res, err := commit.Verify(commit.HMACEvaluator{}, key, commit.Distinguisher(c.Distinguisher), moves, c.Commitment)
	if err != nil {
		return err
	}

	fmt.Printf("Computer move: %s (%d)\n", res.Move, res.MoveIndex+1)
	fmt.Printf("Commitment: %s\n", res.ExpectedDigest)

	if !res.DigestChecked {
		return nil
	}
	logger.Debug("Checked commitment", "matches", res.DigestMatches)
	if !res.DigestMatches {
		return errCommitmentMismatch
	}
	fmt.Println("Commitment verified")
	return nil
}
