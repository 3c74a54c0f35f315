package handlers

import "net/http"

// Health answers liveness probes.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

// APIHealth is the probe the frontend polls under the api prefix.
func APIHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(`{"status":"healthy","message":"api is running"}`))
}
