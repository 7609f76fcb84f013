package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server
func NewMux(source CardSource, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	loggingMiddleware := NewLoggingMiddleware(l)

	cardsPath := "/cards/"
	cardHandler := NewCardHandler(
		func(r *http.Request) string {
			return strings.TrimPrefix(r.URL.Path, cardsPath)
		},
		source,
	)
	cardHandler = loggingMiddleware(timeoutMiddleware(cardHandler))

	indexHandler := loggingMiddleware(timeoutMiddleware(NewIndexHandler(source)))

	m := http.NewServeMux()
	m.HandleFunc(cardsPath, cardHandler)
	m.HandleFunc("/cards", indexHandler)

	return m
}
