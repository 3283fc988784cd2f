package nasa

import (
	"fmt"
	"net/http"

	"media_explorer/internal/source"
)

// DecodeSearch validates a search response and returns its items.
// Items always carry an href; nil data or links become empty slices.
func DecodeSearch(resp *http.Response) ([]ImageItem, error) {
	var body SearchResponse
	if err := source.DecodeJSON(resp, &body); err != nil {
		return nil, err
	}

	if body.Collection == nil {
		return nil, fmt.Errorf("%w: missing collection", source.ErrMalformedResponse)
	}

	items := body.Collection.Items
	if items == nil {
		items = []ImageItem{}
	}

	for i := range items {
		if items[i].Href == "" {
			return nil, fmt.Errorf("%w: item %d has no href", source.ErrMalformedResponse, i)
		}
		if items[i].Data == nil {
			items[i].Data = []ImageItemData{}
		}
		if items[i].Links == nil {
			items[i].Links = []ImageItemLink{}
		}
	}

	return items, nil
}

// DecodeAsset validates an asset manifest response.
func DecodeAsset(resp *http.Response) (*AssetResponse, error) {
	var body AssetResponse
	if err := source.DecodeJSON(resp, &body); err != nil {
		return nil, err
	}

	if body.Collection == nil {
		return nil, fmt.Errorf("%w: missing collection", source.ErrMalformedResponse)
	}
	if body.Collection.Items == nil {
		body.Collection.Items = []AssetFile{}
	}

	return &body, nil
}
