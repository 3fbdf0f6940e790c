// Package simulator plays many automated rounds to check that committed
// computer moves are uniformly distributed.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/fairplay/internal/commit"
	"github.com/lox/fairplay/internal/randutil"
	"github.com/lox/fairplay/internal/rules"
)

// Config controls a simulation run.
type Config struct {
	Moves   rules.MoveSet
	Rounds  int
	Workers int
	Seed    int64 // seeds the simulated human's choices only

	Keys      commit.KeySource // defaults to crypto/rand
	Evaluator commit.Evaluator // defaults to HMAC-SHA256
	Logger    *log.Logger
}

// Report summarises a run.
type Report struct {
	Rounds         int
	ComputerCounts []int
	UserCounts     []int
	Outcomes       map[rules.Outcome]int
	// ChiSquare is Pearson's statistic of ComputerCounts against a uniform
	// distribution, with Moves.Len()-1 degrees of freedom.
	ChiSquare float64
}

// WinRate returns the fraction of rounds the simulated human won.
func (r Report) WinRate() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Outcomes[rules.Win]) / float64(r.Rounds)
}

type workerResult struct {
	computer []int
	user     []int
	outcomes map[rules.Outcome]int
}

// Run plays cfg.Rounds rounds split across cfg.Workers goroutines.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if cfg.Rounds <= 0 {
		return Report{}, errors.New("rounds must be positive")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Workers > cfg.Rounds {
		cfg.Workers = cfg.Rounds
	}
	if cfg.Keys == nil {
		cfg.Keys = commit.NewCryptoKeySource()
	}
	if cfg.Evaluator == nil {
		cfg.Evaluator = commit.HMACEvaluator{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	logger := cfg.Logger.WithPrefix("simulator")

	n := cfg.Moves.Len()
	perWorker := cfg.Rounds / cfg.Workers
	remainder := cfg.Rounds % cfg.Workers

	logger.Info("Starting simulation", "rounds", cfg.Rounds, "workers", cfg.Workers, "moves", n)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan workerResult, cfg.Workers)

	for w := 0; w < cfg.Workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}

		g.Go(func() error {
			res, err := runWorker(ctx, cfg, w, rounds)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results <- res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	close(results)

	report := Report{
		Rounds:         cfg.Rounds,
		ComputerCounts: make([]int, n),
		UserCounts:     make([]int, n),
		Outcomes:       make(map[rules.Outcome]int, 3),
	}
	for res := range results {
		for i := 0; i < n; i++ {
			report.ComputerCounts[i] += res.computer[i]
			report.UserCounts[i] += res.user[i]
		}
		for o, c := range res.outcomes {
			report.Outcomes[o] += c
		}
	}
	report.ChiSquare = chiSquare(report.ComputerCounts, cfg.Rounds)

	logger.Info("Simulation complete", "chi_square", report.ChiSquare, "win_rate", report.WinRate())
	return report, nil
}

func runWorker(ctx context.Context, cfg Config, w, rounds int) (workerResult, error) {
	n := cfg.Moves.Len()
	rng := randutil.ForWorker(cfg.Seed, w)
	res := workerResult{
		computer: make([]int, n),
		user:     make([]int, n),
		outcomes: make(map[rules.Outcome]int, 3),
	}

	for i := 0; i < rounds; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		// worker:round, unique within a run
		d := commit.Distinguisher(strconv.Itoa(w) + ":" + strconv.Itoa(i))
		c, err := commit.Commit(cfg.Keys, cfg.Evaluator, cfg.Moves, d)
		if err != nil {
			return res, err
		}

		user := rng.IntN(n)
		res.computer[c.MoveIndex]++
		res.user[user]++
		res.outcomes[cfg.Moves.Resolve(user, c.MoveIndex)]++
	}
	return res, nil
}

func chiSquare(counts []int, total int) float64 {
	expected := float64(total) / float64(len(counts))
	var sum float64
	for _, c := range counts {
		diff := float64(c) - expected
		sum += diff * diff / expected
	}
	return sum
}
