// SPDX-License-Identifier: MIT
package cynophobia

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"

	"gitlab.com/fisherprime/cynophobia/types"
)

const (
	defWorkers = 4
)

// Batch errors.
var (
	ErrNoSources = stderrors.New("no sources to compile")
	ErrPanicked  = stderrors.New("recovery from panic")
)

// CompileAll runs Compile for every Config on a bounded goroutine pool.
//
// Each compilation is independent; results are indexed like cfgs. The returned error joins the
// error of every failed compilation. Any verbose Config limits the pool to a single worker, running
// compilations in cfgs order.
func CompileAll(ctx context.Context, workers int, cfgs ...*Config) (results []*Result, err error) {
	if len(cfgs) < 1 {
		err = ErrNoSources
		return
	}
	if workers < 1 {
		workers = defWorkers
	}

	verbose := false
	for _, cfg := range cfgs {
		cfg.Validate()
		verbose = verbose || cfg.Verbose
	}
	logger := cfgs[0].Logger

	// Verbose lexer dumps share writers, compile sequentially to keep them whole & ordered.
	if verbose && workers > 1 {
		logger.Debugf("verbose compilation, using 1 of %d workers", workers)
		workers = 1
	}

	pool, err := ants.NewPool(workers, ants.WithLogger(logger))
	if err != nil {
		err = errors.Wrap(err, "create compile pool")
		return
	}
	defer pool.Release()

	results = make([]*Result, len(cfgs))
	done := make(chan bool, len(cfgs))
	errChan := make(chan error, len(cfgs))

	var (
		failed types.SafeCounter
		wg     sync.WaitGroup
	)

	for index := range cfgs {
		index := index

		wg.Add(1)
		task := func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failed.Inc()
					errChan <- fmt.Errorf("%w: %s: %v", ErrPanicked, cfgs[index].Filename, r)
				}
			}()

			res, cErr := Compile(ctx, cfgs[index])
			results[index] = res
			if cErr != nil {
				failed.Inc()
				errChan <- cErr
				return
			}
			done <- true
		}

		if sErr := pool.Submit(task); sErr != nil {
			wg.Done()
			failed.Inc()
			errChan <- errors.Wrapf(sErr, "submit %s", cfgs[index].Filename)
		}
	}
	wg.Wait()

	err = types.MonitorChannels(ctx, len(cfgs), done, errChan, "compilation")
	logger.Debugf("compiled %d sources, %d failed", len(cfgs), failed.Value())

	return
}
