package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pyperpy/pyper-backend/api/responses"
	"github.com/pyperpy/pyper-backend/api/validators"
	product "github.com/pyperpy/pyper-backend/internal/products"
	"github.com/pyperpy/pyper-backend/pkg/logger"
	"github.com/pyperpy/pyper-backend/pkg/pagination"
)

// CatalogBrowse serves the public product grid with filters and cursor
// pagination.
func CatalogBrowse(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := product.ListInput{
			Pagination: pagination.Params{
				Limit:  limit,
				Cursor: r.URL.Query().Get("cursor"),
			},
		}
		if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
			input.Filters.Category = &category
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("featured")); raw != "" {
			featured := raw == "true" || raw == "1"
			input.Filters.FeaturedHome = &featured
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("is_kit")); raw != "" {
			isKit := raw == "true" || raw == "1"
			input.Filters.IsKit = &isKit
		}
		input.Filters.Query = strings.TrimSpace(r.URL.Query().Get("q"))

		result, err := svc.Browse(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CatalogDetail serves the public product detail page by slug.
func CatalogDetail(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		found, err := svc.GetBySlug(r.Context(), slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, found)
	}
}

// CatalogKits lists the published kit products with their compositions.
func CatalogKits(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kits, err := svc.ListKits(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"kits": kits})
	}
}
