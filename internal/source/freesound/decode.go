package freesound

import (
	"fmt"
	"net/http"

	"media_explorer/internal/source"
)

// DecodeSearch validates a text search response and returns its hits.
func DecodeSearch(resp *http.Response) ([]SoundItem, error) {
	var body SearchResponse
	if err := source.DecodeJSON(resp, &body); err != nil {
		return nil, err
	}

	if body.Results == nil {
		body.Results = []SoundItem{}
	}
	for i, item := range body.Results {
		if item.ID == 0 {
			return nil, fmt.Errorf("%w: result %d has no id", source.ErrMalformedResponse, i)
		}
	}

	return body.Results, nil
}

// DecodeSound validates a sound instance response.
func DecodeSound(resp *http.Response) (*Sound, error) {
	var sound Sound
	if err := source.DecodeJSON(resp, &sound); err != nil {
		return nil, err
	}

	if sound.ID == 0 {
		return nil, fmt.Errorf("%w: sound has no id", source.ErrMalformedResponse)
	}

	return &sound, nil
}
