package model

// Article is a published unit of content with at least one attached media file.
// This is a pure domain model with no database-specific dependencies or tags.
// BumpTime is a Unix timestamp used as the sole listing order key; it is set
// at creation and refreshed by edits and new comments, never decreased.
type Article struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	BumpTime   int64    `json:"bump_time"`
	MediaPaths []string `json:"media_paths"`
}

// ArticleSummary is the listing projection of an article.
type ArticleSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
