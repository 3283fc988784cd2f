package nasa

// SearchResponse represents the image archive search response structure.
type SearchResponse struct {
	Collection *SearchCollection `json:"collection"`
}

type SearchCollection struct {
	Version  string         `json:"version"`
	Href     string         `json:"href"`
	Items    []ImageItem    `json:"items"`
	Metadata SearchMetadata `json:"metadata"`
}

type SearchMetadata struct {
	TotalHits int `json:"total_hits"`
}

// ImageItem is one hit of an image search.
type ImageItem struct {
	Data  []ImageItemData `json:"data"`
	Href  string          `json:"href"`
	Links []ImageItemLink `json:"links"`
}

// ImageItemLink points at a renderable asset such as a thumbnail.
type ImageItemLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel,omitempty"`
	Render string `json:"render,omitempty"`
}

// ImageItemData fields are best effort; the archive omits some of them.
type ImageItemData struct {
	Center      string `json:"center"`
	DateCreated string `json:"date_created"`
	Description string `json:"description"`
	Title       string `json:"title"`
	NasaID      string `json:"nasa_id"`
}

// AssetResponse lists the files that make up one image.
type AssetResponse struct {
	Collection *AssetCollection `json:"collection"`
}

type AssetCollection struct {
	Version string      `json:"version"`
	Href    string      `json:"href"`
	Items   []AssetFile `json:"items"`
}

type AssetFile struct {
	Href string `json:"href"`
}

// Title returns the title of the first metadata record, if any.
func (i ImageItem) Title() string {
	if len(i.Data) == 0 {
		return ""
	}
	return i.Data[0].Title
}

// Thumbnail returns the first link href, if any.
func (i ImageItem) Thumbnail() string {
	if len(i.Links) == 0 {
		return ""
	}
	return i.Links[0].Href
}
