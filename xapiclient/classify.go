package xapiclient

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
)

// The API signals soft errors with a 200 status and this body prefix.
const errorEnvelopePrefix = `{"errors":`

// processResponse splits a completed exchange into a decodable body or a
// classified failure: TransportError for non-2xx, APIError for a 2xx error
// envelope.
func processResponse(response *APIResponse, now time.Time) ([]byte, error) {
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &TransportError{
			StatusCode:    response.StatusCode,
			ReasonPhrase:  http.StatusText(response.StatusCode),
			RateLimitInfo: rateLimitInfo(response.Headers, now),
		}
	}
	if strings.HasPrefix(string(response.RawBody), errorEnvelopePrefix) {
		title, detail := firstEnvelopeError(response.RawBody)
		return nil, &APIError{Title: title, Detail: detail}
	}
	return response.RawBody, nil
}

// firstEnvelopeError picks title and detail of the first envelope entry.
// An empty envelope yields empty strings.
func firstEnvelopeError(body []byte) (string, string) {
	title, _ := jsonparser.GetString(body, "errors", "[0]", "title")
	detail, _ := jsonparser.GetString(body, "errors", "[0]", "detail")
	return title, detail
}

// rateLimitInfo decodes the x-rate-limit-reset header. A positive epoch value
// becomes the remaining wait in minutes, anything else passes through raw.
func rateLimitInfo(headers map[string][]string, now time.Time) string {
	value := http.Header(headers).Get("x-rate-limit-reset")
	if value == "" {
		return ""
	}
	if epoch, err := strconv.ParseInt(value, 10, 64); err == nil && epoch > 0 {
		minutes := time.Unix(epoch, 0).Sub(now).Minutes()
		rounded := math.Round(minutes*100) / 100
		value = strconv.FormatFloat(rounded, 'f', -1, 64) + " minutes"
	}
	return value
}
