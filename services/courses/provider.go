// Package courses exposes the external course catalog behind a small
// provider contract so the bundled in-memory catalog can be swapped for a
// real search API without touching the goal/milestone core.
package courses

// Course is an externally-sourced course listing.
type Course struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Provider     string   `json:"provider"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Duration     string   `json:"duration"`
	Level        string   `json:"level"`
	Rating       float64  `json:"rating"`
	Enrollments  int      `json:"enrollments"`
	Skills       []string `json:"skills"`
}

// SearchParams filter a catalog search.
type SearchParams struct {
	Query    string
	Provider string
	Level    string
	Limit    int
	Offset   int
}

// SearchResult is one page of matches.
type SearchResult struct {
	Courses []Course `json:"courses"`
	Total   int      `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
	HasMore bool     `json:"hasMore"`
}

// Provider is the course-search capability consumed by the handlers.
type Provider interface {
	Search(params SearchParams) SearchResult
	GetByID(id string) (*Course, bool)
	Recommended(categories []string) []Course
}
