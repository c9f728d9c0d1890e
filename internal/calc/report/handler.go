package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"
)

type Handler struct {
	// Now defaults to time.Now.
	Now func() time.Time
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	var buf bytes.Buffer
	if err := Write(&buf, input, now()); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pattern.pdf\"")
	w.Write(buf.Bytes())
}
