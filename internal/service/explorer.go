package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond/v2"

	"media_explorer/internal/config"
	"media_explorer/internal/source/freesound"
	"media_explorer/internal/source/nasa"
	"media_explorer/internal/state"
)

var (
	// ErrSuperseded is returned, along with the decoded items, when a newer
	// search has already written its results.
	ErrSuperseded = errors.New("search superseded by a newer request")
	// ErrIndexOutOfRange is returned when selecting past the current results.
	ErrIndexOutOfRange = errors.New("index out of range")
)

type ExplorerService struct {
	images ImageClient
	sounds SoundClient
	store  *state.Store
	pool   pond.Pool
	logger *slog.Logger

	issued atomic.Uint64

	// applyMu orders writes of image results; mu guards lastQuery only, so
	// observers never run under it.
	applyMu sync.Mutex
	applied uint64

	mu        sync.Mutex
	lastQuery *string
}

func NewExplorerService(
	images ImageClient,
	sounds SoundClient,
	store *state.Store,
	logger *slog.Logger,
	cfg config.SoundsConfig,
) *ExplorerService {
	workers := cfg.ResolveWorkers
	if workers <= 0 {
		workers = 1
	}

	return &ExplorerService{
		images: images,
		sounds: sounds,
		store:  store,
		pool:   pond.NewPool(workers),
		logger: logger,
	}
}

// SearchImages runs an image search and writes the hits to ImageItems.
// Only the most recently issued search may write: a response that arrives
// after a newer one has been applied is dropped and ErrSuperseded returned.
// An ImageItems observer must not start a search synchronously.
func (s *ExplorerService) SearchImages(ctx context.Context, query string) ([]nasa.ImageItem, error) {
	seq := s.issued.Add(1)

	s.mu.Lock()
	s.lastQuery = &query
	s.mu.Unlock()

	s.logger.Debug("searching images", "query", query, "seq", seq)

	resp, err := s.images.SearchImages(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search images: %w", err)
	}

	items, err := nasa.DecodeSearch(resp)
	if err != nil {
		return nil, fmt.Errorf("decode image search: %w", err)
	}

	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	if seq < s.applied {
		s.logger.Debug("dropping stale image search",
			"query", query,
			"seq", seq,
			"applied", s.applied,
		)
		return items, ErrSuperseded
	}

	s.applied = seq
	s.store.ImageItems.Set(items)

	s.logger.Info("image search applied", "query", query, "count", len(items))

	return items, nil
}

// GetImage fetches the asset manifest of one image.
func (s *ExplorerService) GetImage(ctx context.Context, id string) (*nasa.AssetResponse, error) {
	resp, err := s.images.GetImage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get image: %w", err)
	}

	asset, err := nasa.DecodeAsset(resp)
	if err != nil {
		return nil, fmt.Errorf("decode image asset: %w", err)
	}

	return asset, nil
}

// SelectImage replaces the selected item. nil clears the selection.
func (s *ExplorerService) SelectImage(item *nasa.ImageItem) {
	s.store.SelectedImage.Set(item)
}

// SelectImageAt selects the i-th item of the current results.
func (s *ExplorerService) SelectImageAt(i int) (*nasa.ImageItem, error) {
	items := s.store.ImageItems.Get()
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(items))
	}

	item := items[i]
	s.store.SelectedImage.Set(&item)
	return &item, nil
}

// SetViewport records the dimensions of the main container.
func (s *ExplorerService) SetViewport(width, height *int) {
	s.store.MainContainerWidth.Set(width)
	s.store.MainContainerHeight.Set(height)
}

// QuerySounds runs a scoped text search on the audio archive.
func (s *ExplorerService) QuerySounds(ctx context.Context, query string) ([]freesound.SoundItem, error) {
	resp, err := s.sounds.QuerySounds(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sounds: %w", err)
	}

	items, err := freesound.DecodeSearch(resp)
	if err != nil {
		return nil, fmt.Errorf("decode sound search: %w", err)
	}

	s.logger.Info("sound search completed", "query", query, "count", len(items))

	return items, nil
}

// GetSound fetches the metadata of one sound.
func (s *ExplorerService) GetSound(ctx context.Context, soundID string) (*freesound.Sound, error) {
	resp, err := s.sounds.GetSound(ctx, soundID)
	if err != nil {
		return nil, fmt.Errorf("get sound %s: %w", soundID, err)
	}

	sound, err := freesound.DecodeSound(resp)
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", soundID, err)
	}

	return sound, nil
}

// ResolveSounds fetches full metadata for every search hit. The result keeps
// the order of items; the first failure is returned.
func (s *ExplorerService) ResolveSounds(ctx context.Context, items []freesound.SoundItem) ([]freesound.Sound, error) {
	sounds := make([]freesound.Sound, len(items))
	if len(items) == 0 {
		return sounds, nil
	}

	group := s.pool.NewGroup()
	for i, item := range items {
		group.SubmitErr(func() error {
			sound, err := s.GetSound(ctx, item.IDString())
			if err != nil {
				return err
			}
			sounds[i] = *sound
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("resolve sounds: %w", err)
	}

	return sounds, nil
}

// Refresh repeats the last image search. It does nothing before the first one.
func (s *ExplorerService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	query := s.lastQuery
	s.mu.Unlock()

	if query == nil {
		s.logger.Debug("nothing to refresh")
		return nil
	}

	_, err := s.SearchImages(ctx, *query)
	if errors.Is(err, ErrSuperseded) {
		return nil
	}
	return err
}

// Close stops the resolve pool once queued lookups finish.
func (s *ExplorerService) Close() {
	s.pool.StopAndWait()
}
