package rest

import (
	"io"
	"net/http"
)

// ping is the liveness check. It never touches the game.
func ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	if _, err := io.WriteString(w, "pong"); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
