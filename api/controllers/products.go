package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pyperpy/pyper-backend/api/responses"
	"github.com/pyperpy/pyper-backend/api/validators"
	product "github.com/pyperpy/pyper-backend/internal/products"
	"github.com/pyperpy/pyper-backend/pkg/logger"
)

type kitItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"`
}

type saveProductRequest struct {
	Name            string           `json:"name" validate:"required"`
	Slug            string           `json:"slug"`
	Description     *string          `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	Category        string           `json:"category" validate:"required"`
	ImageURL        *string          `json:"image_url"`
	MainImage       *string          `json:"main_image"`
	IsFeaturedHome  bool             `json:"is_featured_home"`
	Active          bool             `json:"active"`
	Stock           int              `json:"stock"`
	IsKit           bool             `json:"is_kit"`
	MetaTitle       *string          `json:"meta_title"`
	MetaDescription *string          `json:"meta_description"`
	FocusKeyword    *string          `json:"focus_keyword"`
	KitItems        []kitItemRequest `json:"kit_items"`
}

func (req saveProductRequest) toSaveInput() product.SaveInput {
	items := make([]product.KitItemInput, 0, len(req.KitItems))
	for _, item := range req.KitItems {
		items = append(items, product.KitItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return product.SaveInput{
		Name:            req.Name,
		Slug:            req.Slug,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		ImageURL:        req.ImageURL,
		MainImage:       req.MainImage,
		IsFeaturedHome:  req.IsFeaturedHome,
		Active:          req.Active,
		Stock:           req.Stock,
		IsKit:           req.IsKit,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		FocusKeyword:    req.FocusKeyword,
		KitItems:        items,
	}
}

// AdminListProducts returns the full inventory for the admin grid.
func AdminListProducts(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListAdmin(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"products": rows})
	}
}

// AdminGetProduct loads one product with its kit composition for the editor.
func AdminGetProduct(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		found, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, found)
	}
}

// AdminCreateProduct persists a new product, kit composition included.
func AdminCreateProduct(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload saveProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.Create(r.Context(), payload.toSaveInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// AdminUpdateProduct saves changes to an existing product.
func AdminUpdateProduct(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload saveProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.Update(r.Context(), id, payload.toSaveInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// AdminDeleteProduct removes a product and its kit lines.
func AdminDeleteProduct(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminPreviewProductSEO scores a product draft for the editor's live
// indicator without persisting anything.
func AdminPreviewProductSEO(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload product.SEOPreviewInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.PreviewSEO(payload))
	}
}
