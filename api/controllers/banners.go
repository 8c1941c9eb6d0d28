package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/pyperpy/pyper-backend/api/responses"
	"github.com/pyperpy/pyper-backend/api/validators"
	"github.com/pyperpy/pyper-backend/internal/banners"
	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
	"github.com/pyperpy/pyper-backend/pkg/logger"
)

type saveBannerRequest struct {
	ImageURL     string   `json:"image_url" validate:"required"`
	LinkURL      *string  `json:"link_url"`
	Placement    string   `json:"placement" validate:"required"`
	DaysOfWeek   []string `json:"days_of_week"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	AlwaysActive bool     `json:"always_active"`
	IsActive     bool     `json:"is_active"`
}

func (req saveBannerRequest) toSaveInput() (banners.SaveInput, error) {
	placement, err := enums.ParseBannerPlacement(req.Placement)
	if err != nil {
		return banners.SaveInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid placement")
	}
	start := req.StartTime
	if start == "" {
		start = "00:00:00"
	}
	end := req.EndTime
	if end == "" {
		end = "23:59:59"
	}
	return banners.SaveInput{
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		Placement: placement,
		Schedule: banners.Schedule{
			DaysOfWeek:   req.DaysOfWeek,
			StartTime:    start,
			EndTime:      end,
			AlwaysActive: req.AlwaysActive,
		},
		IsActive: req.IsActive,
	}, nil
}

// PublicBanners returns the banners eligible right now for the requested
// placement. A failed read serves an empty list: a broken banners table must
// never take the storefront page down with it.
func PublicBanners(svc banners.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("placement"))
		placement, err := enums.ParseBannerPlacement(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid placement"))
			return
		}
		rows, err := svc.Visible(r.Context(), placement, time.Now())
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "banner selection failed, serving none", err)
			}
			rows = []models.Banner{}
		}
		responses.WriteSuccess(w, map[string]any{"banners": rows})
	}
}

// PublicPopupBanner returns the popup eligible right now, or a null banner
// when none qualifies or the read fails. The storefront keys its per-session
// dismissal on the returned id.
func PublicPopupBanner(svc banners.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		popup, err := svc.Popup(r.Context(), time.Now())
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "popup selection failed, serving none", err)
			}
			popup = nil
		}
		responses.WriteSuccess(w, map[string]any{"banner": popup})
	}
}

// AdminListBanners returns every banner for the admin grid, schedules
// included.
func AdminListBanners(svc banners.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"banners": rows})
	}
}

// AdminGetBanner loads one banner for the editor.
func AdminGetBanner(svc banners.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		banner, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, banner)
	}
}

// AdminCreateBanner persists a new scheduled banner.
func AdminCreateBanner(svc banners.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload saveBannerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toSaveInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// AdminUpdateBanner saves changes to an existing banner.
func AdminUpdateBanner(svc banners.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload saveBannerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toSaveInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// AdminDeleteBanner removes a banner.
func AdminDeleteBanner(svc banners.Service, logg *logger.Logger) http.HandlerFunc {
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
