package numeric

import (
	"encoding/json"
	"net/http"
)

type noResult struct {
	Error string `json:"error"`
}

// WriteNoResult answers a calculation that produced nothing. Callers keep
// whatever result they showed before.
func WriteNoResult(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(noResult{Error: err.Error()})
}
