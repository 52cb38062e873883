package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
	"github.com/kylerishisaki/APEXDashboard/internal/repository"
)

type contextKey string

const ClientContextKey contextKey = "client"

// ShareToken resolves the {token} route parameter to a client and puts
// it on the request context. Unknown tokens 404 rather than 401: a
// share link is an opaque capability, not an account.
func ShareToken(clientRepo repository.ClientRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := chi.URLParam(r, "token")
			if token == "" {
				http.Error(w, "Not Found", http.StatusNotFound)
				return
			}

			client, err := clientRepo.FindByShareToken(r.Context(), token)
			if err != nil {
				http.Error(w, "Not Found", http.StatusNotFound)
				return
			}

			ctx := context.WithValue(r.Context(), ClientContextKey, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClient(ctx context.Context) models.Client {
	client, _ := ctx.Value(ClientContextKey).(models.Client)
	return client
}
