package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// CardSource provides the latest rendered card set.
type CardSource interface {
	Card(name string) ([]byte, bool)
	Names() []string
}

// NewCardHandler creates handlerfunc serving one rendered svg document.
func NewCardHandler(
	getName func(*http.Request) string,
	source CardSource,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := getName(r)

		data, ok := source.Card(name)
		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(data)
	}
}

type indexResponse struct {
	Cards []string `json:"cards"`
}

// NewIndexHandler creates handlerfunc listing the available documents.
func NewIndexHandler(source CardSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := indexResponse{
			Cards: source.Names(),
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(response)
	}
}
