package xapiclient

import "fmt"

// TransportError is a non-2xx response from the API. RateLimitInfo carries
// the decoded x-rate-limit-reset wait when the header was present.
type TransportError struct {
	StatusCode    int
	ReasonPhrase  string
	RateLimitInfo string
}

func (e *TransportError) Error() string {
	if e.RateLimitInfo != "" {
		return fmt.Sprintf("error: %d, details: %s, limits: %s", e.StatusCode, e.ReasonPhrase, e.RateLimitInfo)
	}
	return fmt.Sprintf("error: %d, details: %s", e.StatusCode, e.ReasonPhrase)
}

// APIError is a 2xx response whose body is an error envelope.
type APIError struct {
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("error: %s, details: %s", e.Title, e.Detail)
}
