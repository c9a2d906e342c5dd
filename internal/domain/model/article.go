package model

// Article is a record of the mock live news feed.
type Article struct {
	ID       int    `json:"id"`
	Headline string `json:"headline"`
	Source   string `json:"source"`
}
