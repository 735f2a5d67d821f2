package api

// Request and response payloads for the API endpoints.

// TokenRequest defines the payload for the credential-issuing endpoint.
type TokenRequest struct {
	GrantType string `json:"grant_type"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// TokenResponse defines the successful response of the credential-issuing
// endpoint: a Bearer access credential plus a display-only identity
// credential.
type TokenResponse struct {
	TokenType   string `json:"token_type"`
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
}

// CreateAccountRequest defines the payload for account registration.
type CreateAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UpdateAccountRequest defines the payload for account updates.
// Only the display name is mutable.
type UpdateAccountRequest struct {
	Name string `json:"name"`
}

// QuestionRequest defines the payload for creating or updating a question.
type QuestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateAnswerRequest defines the payload for posting an answer.
type CreateAnswerRequest struct {
	QuestionID  int64  `json:"questionId"`
	Description string `json:"description"`
}

// UpdateAnswerRequest defines the payload for updating an answer.
type UpdateAnswerRequest struct {
	Description string `json:"description"`
}
