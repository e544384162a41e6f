package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
)

// Sweeper is a background job of the worker: DLQ replay, expiry hygiene or reconciliation scheduling
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start blocks until the context is canceled or Stop is called
	Start(ctx context.Context) error
	// Stop waits for the in-progress cycle to finish
	Stop(ctx context.Context) error
	Name() string
}

// Group runs the worker's sweepers side by side and stops them together
type Group struct {
	sweepers []Sweeper
	errs     chan error
	wg       sync.WaitGroup
}

// NewGroup creates a group of sweepers
func NewGroup(sweepers ...Sweeper) *Group {
	return &Group{
		sweepers: sweepers,
		errs:     make(chan error, len(sweepers)),
	}
}

// Start launches every sweeper in its own goroutine
func (g *Group) Start(ctx context.Context) {
	logger.InfoCtx(ctx, "Starting sweepers", zap.Int("count", len(g.sweepers)))
	for _, s := range g.sweepers {
		g.wg.Add(1)
		go func(s Sweeper) {
			defer g.wg.Done()
			if err := s.Start(ctx); err != nil {
				g.errs <- fmt.Errorf("%s: %w", s.Name(), err)
			}
		}(s)
	}
}

// Errors reports sweepers that exited with an error
func (g *Group) Errors() <-chan error {
	return g.errs
}

// Stop stops every sweeper, then waits for all of them to return
func (g *Group) Stop(ctx context.Context) error {
	var errs []error
	for _, s := range g.sweepers {
		if err := s.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	g.wg.Wait()
	return errors.Join(errs...)
}
