package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createPostRequest struct {
	Title string `json:"title" validate:"required"`
	Text  string `json:"text"  validate:"required"`
	// ExtraAttribute takes the column default (100) when omitted.
	ExtraAttribute *int `json:"extra_attribute"`
}

type updatePostRequest struct {
	Title          string `json:"title" validate:"required"`
	Text           string `json:"text"  validate:"required"`
	ExtraAttribute int    `json:"extra_attribute"`
}

type postResponse struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Text           string `json:"text"`
	ExtraAttribute int    `json:"extra_attribute"`
}

// listPostsResponse mirrors the page window computed by the service.
type listPostsResponse struct {
	Posts        []postResponse `json:"posts"`
	Page         int            `json:"page"`
	PostsPerPage int            `json:"posts_per_page"`
	NumPages     int            `json:"num_pages"`
}

// flashResponse is the success envelope returned by mutating API endpoints.
type flashResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type authorizeRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
