package usecase

import (
	"context"
	"time"

	"shopping-list/internal/checklist"
	"shopping-list/internal/notification"
	"shopping-list/internal/shoppinglist/projection"
	"shopping-list/internal/shoppinglist/repository"
	"shopping-list/internal/shoppinglist/store"
	pkgLog "shopping-list/pkg/log"
)

// Config tunes the use case.
type Config struct {
	// Debounce is how long the persister waits for further changes before saving.
	Debounce time.Duration
}

// implUseCase is the private implementation of shoppinglist.UseCase.
type implUseCase struct {
	l         pkgLog.Logger
	store     *store.Store
	repo      repository.Repository
	feed      *notification.Feed
	compiler  *projection.Compiler
	checklist checklist.Service
	persister *persister
}

// New creates the shopping list UseCase and starts its background persister.
// Call Close to flush pending changes and stop it.
func New(
	l pkgLog.Logger,
	st *store.Store,
	repo repository.Repository,
	feed *notification.Feed,
	cfg Config,
) (*implUseCase, error) {
	compiler, err := projection.NewCompiler(whereCacheSize)
	if err != nil {
		return nil, err
	}

	uc := &implUseCase{
		l:         l,
		store:     st,
		repo:      repo,
		feed:      feed,
		compiler:  compiler,
		checklist: checklist.New(),
	}
	uc.persister = newPersister(l, st, repo, feed, cfg.Debounce)
	uc.persister.start()
	return uc, nil
}

// Close stops the persister and saves anything not yet written.
func (uc *implUseCase) Close(ctx context.Context) error {
	return uc.persister.close(ctx)
}
