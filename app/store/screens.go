package store

import (
	"fmt"
	"time"

	"github.com/go-pkgz/lcw/v2"
	"github.com/google/uuid"

	"github.com/shanavlnc/folio/app/portfolio"
)

// ScreensConfig holds screen store configuration.
type ScreensConfig struct {
	TTL          time.Duration // lifetime of a mounted screen, counted from mount
	MaxScreens   int           // max mounted screens, the oldest are unmounted first
	FadeDuration time.Duration // fade-in duration for new screens
}

// Screens is an in-memory store of mounted screens backed by an expirable cache.
// A screen is created by Mount and lives until its TTL passes or it is pushed
// out by newer screens; nothing is persisted.
type Screens struct {
	cache   *lcw.ExpirableCache[*portfolio.Screen]
	content portfolio.Content
	ttl     time.Duration
	fade    time.Duration
	now     func() time.Time
}

// NewScreens creates a new screen store.
func NewScreens(content portfolio.Content, cfg ScreensConfig) (*Screens, error) {
	o := lcw.NewOpts[*portfolio.Screen]()
	opts := []lcw.Option[*portfolio.Screen]{o.TTL(cfg.TTL)}
	if cfg.MaxScreens > 0 {
		opts = append(opts, o.MaxKeys(cfg.MaxScreens))
	}
	cache, err := lcw.NewExpirableCache(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create screen cache: %w", err)
	}
	return &Screens{cache: cache, content: content, ttl: cfg.TTL, fade: cfg.FadeDuration, now: time.Now}, nil
}

// Mount creates a new screen in the light theme and starts its fade-in.
func (s *Screens) Mount() (*portfolio.Screen, error) {
	id := uuid.NewString()
	scr, err := s.cache.Get(id, func() (*portfolio.Screen, error) {
		sc := portfolio.NewScreen(id, s.content, portfolio.NewFadeIn(s.fade, nil))
		sc.Mount(s.now())
		return sc, nil
	})
	if err != nil {
		return nil, fmt.Errorf("mount screen %s: %w", id, err)
	}
	return scr, nil
}

// Get returns a mounted screen by id. Screens older than the TTL are
// unmounted and reported as not found.
func (s *Screens) Get(id string) (*portfolio.Screen, error) {
	scr, ok := s.cache.Peek(id)
	if !ok || scr == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if s.ttl > 0 && !s.now().Before(scr.MountedAt().Add(s.ttl)) {
		s.Unmount(id)
		return nil, fmt.Errorf("%w: %s expired", ErrNotFound, id)
	}
	return scr, nil
}

// Unmount removes a screen. Unknown ids are ignored.
func (s *Screens) Unmount(id string) {
	s.cache.Delete(id)
}

// Stats returns cache statistics for mounted screens.
func (s *Screens) Stats() lcw.CacheStat {
	return s.cache.Stat()
}

// Close stops the cache purge loop.
func (s *Screens) Close() error {
	if err := s.cache.Close(); err != nil {
		return fmt.Errorf("close screen cache: %w", err)
	}
	return nil
}
