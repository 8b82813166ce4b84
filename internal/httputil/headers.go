package httputil

import "net/http"

const UserAgent = "pricewise/1.0"

// JSONHeaders returns the headers sent to upstream JSON APIs.
func JSONHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Accept-Encoding", "gzip, br")
	h.Set("User-Agent", UserAgent)
	return h
}
