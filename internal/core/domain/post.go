package domain

import "errors"

// DefaultExtraAttribute is the column default applied when a post is created
// without an explicit extra_attribute value.
const DefaultExtraAttribute = 100

var ErrPostNotFound = errors.New("post not found")

// Post is a single blog entry as stored in the posts table.
type Post struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Text           string `json:"text"`
	ExtraAttribute int    `json:"extra_attribute"`
}
