// Package httpapi exposes the service over HTTP with chi.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Catalog  *CatalogHandler
	Listing  *ListingHandler
	Favorite *FavoriteHandler
	Dealer   *DealerHandler
	Admin    *AdminHandler
}

// NewRouter assembles the HTTP surface: a public catalog group, an
// authenticated group and an admin group, all wrapped in tracing and
// request logging.
func NewRouter(h Handlers, jwtSecret string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public catalog.
		r.Group(func(r chi.Router) {
			r.Get("/home", h.Catalog.Home)
			r.Get("/listings", h.Catalog.Search)
			r.Get("/listings/featured", h.Catalog.Featured)
			r.Get("/listings/recent", h.Catalog.RecentlyViewed)
			r.Get("/listings/{id}", h.Catalog.GetListing)
			r.Post("/listings/{id}/view", h.Catalog.RecordView)
			r.Get("/compare", h.Catalog.Compare)
			r.Get("/dealers", h.Catalog.Dealers)
			r.Get("/dealers/{id}", h.Catalog.DealerPage)
		})

		// Authenticated users and dealers.
		r.Group(func(r chi.Router) {
			r.Use(Authenticator(jwtSecret, logger))

			r.Post("/profile", h.Dealer.EnsureProfile)
			r.Post("/dealers", h.Dealer.Register)
			r.Put("/dealers/{id}", h.Dealer.UpdateProfile)

			r.Get("/my/listings", h.Listing.MyListings)
			r.Post("/my/listings", h.Listing.Create)
			r.Put("/my/listings/{id}", h.Listing.Update)
			r.Post("/my/listings/{id}/status", h.Listing.ChangeStatus)
			r.Delete("/my/listings/{id}", h.Listing.Delete)
			r.Post("/my/listings/{id}/photos", h.Listing.UploadPhoto)
			r.Delete("/my/listings/{id}/photos", h.Listing.RemovePhoto)

			r.Get("/favorites", h.Favorite.Favorites)
			r.Get("/favorites/ids", h.Favorite.FavoriteIDs)
			r.Put("/favorites/{id}", h.Favorite.SetFavorite)
		})

		// Moderation.
		r.Group(func(r chi.Router) {
			r.Use(Authenticator(jwtSecret, logger))
			r.Use(RequireAdmin)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/dealers", h.Admin.Dealers)
				r.Post("/dealers/{id}/approve", h.Admin.ApproveDealer)
				r.Post("/dealers/{id}/reject", h.Admin.RejectDealer)
				r.Post("/dealers/{id}/suspend", h.Admin.SuspendDealer)
				r.Get("/users", h.Admin.Users)
				r.Post("/users/{id}/suspend", h.Admin.SuspendUser)
				r.Post("/users/{id}/reinstate", h.Admin.ReinstateUser)
				r.Delete("/users/{id}", h.Admin.PurgeUser)
				r.Get("/listings", h.Admin.Listings)
			})
		})
	})

	return otelhttp.NewHandler(r, "listing-service")
}
