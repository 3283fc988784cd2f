package freesound

import "strconv"

// SearchResponse represents the text search response structure.
type SearchResponse struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []SoundItem `json:"results"`
}

// SoundItem identifies a search hit. Full metadata comes from GetSound.
type SoundItem struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	License  string   `json:"license,omitempty"`
	Username string   `json:"username,omitempty"`
}

// IDString returns the id in the form the sounds endpoint expects.
func (s SoundItem) IDString() string {
	return strconv.FormatInt(s.ID, 10)
}

type Sound struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Tags        []string          `json:"tags"`
	Duration    float64           `json:"duration"`
	Username    string            `json:"username"`
	URL         string            `json:"url"`
	License     string            `json:"license"`
	Previews    map[string]string `json:"previews"`
}

var previewOrder = []string{"preview-lq-ogg", "preview-lq-mp3", "preview-hq-ogg", "preview-hq-mp3"}

// Preview returns the smallest available preview url.
func (s Sound) Preview() string {
	for _, key := range previewOrder {
		if p := s.Previews[key]; p != "" {
			return p
		}
	}
	return ""
}
