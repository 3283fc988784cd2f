package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"net/http"
)

// ImageClient returns raw image archive responses.
type ImageClient interface {
	SearchImages(ctx context.Context, query string) (*http.Response, error)
	GetImage(ctx context.Context, id string) (*http.Response, error)
}

// SoundClient returns raw audio archive responses.
type SoundClient interface {
	QuerySounds(ctx context.Context, query string) (*http.Response, error)
	GetSound(ctx context.Context, soundID string) (*http.Response, error)
}
