// quatquiz drills quaternion multiplication on the terminal.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/quatkit/internal/config"
	"github.com/Faultbox/quatkit/internal/logger"
	"github.com/Faultbox/quatkit/internal/quiz"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	seed := cfg.Quiz.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting quiz",
		zap.Int64("seed", seed),
		zap.Int("range_min", cfg.Quiz.RangeMin),
		zap.Int("range_max", cfg.Quiz.RangeMax))

	q := quiz.New(os.Stdin, os.Stdout, rand.New(rand.NewSource(seed)),
		quiz.WithRange(cfg.Quiz.Range()),
		quiz.WithLogger(logger.Named("quiz")))

	count := cfg.Quiz.Questions
	if count == 0 {
		count, err = q.AskCount()
		if err != nil {
			logger.Error("failed to read question count", zap.Error(err))
			os.Exit(1)
		}
	}

	if _, err := q.Run(count); err != nil {
		logger.Error("quiz aborted", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
