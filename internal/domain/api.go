package domain

// FetchResponse carries the rendered dashboard fragments.
type FetchResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
