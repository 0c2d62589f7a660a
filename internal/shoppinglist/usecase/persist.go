package usecase

import (
	"context"
	"sync"
	"time"

	"shopping-list/internal/notification"
	"shopping-list/internal/shoppinglist/repository"
	"shopping-list/internal/shoppinglist/store"
	pkgLog "shopping-list/pkg/log"
)

// persister is the single writer of the item list. Mutations signal it, it
// waits for the burst to settle and saves the latest snapshot, so saves never
// overlap and an older snapshot cannot overwrite a newer one.
type persister struct {
	l        pkgLog.Logger
	store    *store.Store
	repo     repository.Repository
	notifier notification.Notifier
	debounce time.Duration

	signal chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu           sync.Mutex // serializes flush
	savedVersion uint64

	closeOnce sync.Once
	closeErr  error
}

func newPersister(
	l pkgLog.Logger,
	st *store.Store,
	repo repository.Repository,
	notifier notification.Notifier,
	debounce time.Duration,
) *persister {
	ctx, cancel := context.WithCancel(context.Background())
	return &persister{
		l:        l,
		store:    st,
		repo:     repo,
		notifier: notifier,
		debounce: debounce,
		signal:   make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

func (p *persister) start() {
	go p.run()
}

// enqueue records that the collection changed. It never blocks.
func (p *persister) enqueue() {
	select {
	case p.signal <- struct{}{}:
	default:
	}
}

// markCurrentSaved treats the current store contents as already persisted.
func (p *persister) markCurrentSaved() {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, p.savedVersion = p.store.Snapshot()
}

func (p *persister) run() {
	defer close(p.done)

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-p.signal:
		}

		if p.debounce > 0 {
			timer := time.NewTimer(p.debounce)
		settle:
			for {
				select {
				case <-p.ctx.Done():
					timer.Stop()
					return
				case <-p.signal:
					timer.Reset(p.debounce)
				case <-timer.C:
					break settle
				}
			}
		}

		_ = p.flush(p.ctx)
	}
}

// flush saves the current snapshot if it is newer than the last saved one.
func (p *persister) flush(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	items, version := p.store.Snapshot()
	if version == p.savedVersion {
		return nil
	}

	if err := p.repo.Save(ctx, items); err != nil {
		if ctx.Err() != nil {
			// Abandoned save. The worker's is retried by close with the caller's context.
			p.l.Warnf(ctx, "uc.persister.flush: save interrupted: %v", err)
			return err
		}
		p.l.Errorf(ctx, "uc.persister.flush repo.Save: %v", err)
		p.store.SetError(err.Error())
		p.notifier.Push(notification.KindError, MsgSaveFailed)
		return err
	}

	p.savedVersion = version
	p.l.Debugf(ctx, "uc.persister.flush: saved %d items (version %d)", len(items), version)
	return nil
}

// close stops the worker, cancelling any in-flight save, then saves whatever
// is still pending using ctx.
func (p *persister) close(ctx context.Context) error {
	p.closeOnce.Do(func() {
		p.cancel()
		select {
		case <-p.done:
		case <-ctx.Done():
			p.closeErr = ctx.Err()
			return
		}
		p.closeErr = p.flush(ctx)
	})
	return p.closeErr
}
