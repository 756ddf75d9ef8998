package model

// Comment is bound to exactly one article for its whole lifetime.
type Comment struct {
	ID        int64  `json:"id"`
	ArticleID int64  `json:"article_id"`
	Text      string `json:"text"`
}
