package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/pyperpy/pyper-backend/api/responses"
	"github.com/pyperpy/pyper-backend/api/validators"
	"github.com/pyperpy/pyper-backend/internal/sitecfg"
	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
	"github.com/pyperpy/pyper-backend/pkg/logger"
)

// PublicSiteConfig serves the full storefront shell in one payload. Section
// loader failures are logged but the bundle still renders with defaults.
func PublicSiteConfig(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bundle, err := svc.Bundle(r.Context())
		if err != nil && logg != nil {
			ctx := logg.WithField(r.Context(), "error", err.Error())
			logg.Warn(ctx, "site config bundle loaded with partial failures")
		}
		if bundle == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load site configuration"))
			return
		}
		responses.WriteSuccess(w, bundle)
	}
}

// AdminGetSettings returns the stored key/value settings overlaid on the
// defaults.
func AdminGetSettings(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := svc.Settings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"settings": settings})
	}
}

type updateSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required"`
}

// AdminUpdateSettings upserts the provided setting keys.
func AdminUpdateSettings(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateSettingsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.UpdateSettings(r.Context(), payload.Settings); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		settings, err := svc.Settings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"settings": settings})
	}
}

type saveNavigationRequest struct {
	ID       *uuid.UUID `json:"id"`
	Label    string     `json:"label" validate:"required"`
	Link     string     `json:"link" validate:"required"`
	Position int        `json:"position"`
	Active   bool       `json:"active"`
}

// AdminListNavigation returns the header menu entries, inactive included.
func AdminListNavigation(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListNavigation(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"navigation": rows})
	}
}

// AdminSaveNavigation creates or updates one header menu entry.
func AdminSaveNavigation(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload saveNavigationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item := &models.NavigationItem{
			Label:    payload.Label,
			Link:     payload.Link,
			Position: payload.Position,
			Active:   payload.Active,
		}
		if payload.ID != nil {
			item.ID = *payload.ID
		}
		saved, err := svc.SaveNavigationItem(r.Context(), item)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, saved)
	}
}

// AdminDeleteNavigation removes a header menu entry.
func AdminDeleteNavigation(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteNavigationItem(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type saveHeroSlideRequest struct {
	ID          *uuid.UUID `json:"id"`
	Title       string     `json:"title" validate:"required"`
	Subtitle    string     `json:"subtitle"`
	BadgeText   *string    `json:"badge_text"`
	TrustText   *string    `json:"trust_text"`
	TrustImages []string   `json:"trust_images"`
	Button1Text string     `json:"button_1_text"`
	Button1Link string     `json:"button_1_link"`
	Button2Text *string    `json:"button_2_text"`
	Button2Link *string    `json:"button_2_link"`
	ImageURL    *string    `json:"image_url"`
	Position    int        `json:"position"`
	Active      bool       `json:"active"`
}

// AdminListHeroSlides returns every hero slide for the admin grid.
func AdminListHeroSlides(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListHeroSlides(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"hero_slides": rows})
	}
}

// AdminSaveHeroSlide creates or updates one hero slide.
func AdminSaveHeroSlide(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload saveHeroSlideRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		slide := &models.HeroSlide{
			Title:       payload.Title,
			Subtitle:    payload.Subtitle,
			BadgeText:   payload.BadgeText,
			TrustText:   payload.TrustText,
			TrustImages: pq.StringArray(payload.TrustImages),
			Button1Text: payload.Button1Text,
			Button1Link: payload.Button1Link,
			Button2Text: payload.Button2Text,
			Button2Link: payload.Button2Link,
			ImageURL:    payload.ImageURL,
			Position:    payload.Position,
			Active:      payload.Active,
		}
		if payload.ID != nil {
			slide.ID = *payload.ID
		}
		saved, err := svc.SaveHeroSlide(r.Context(), slide)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, saved)
	}
}

// AdminDeleteHeroSlide removes a hero slide.
func AdminDeleteHeroSlide(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteHeroSlide(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type saveHomeSectionRequest struct {
	ID          *uuid.UUID `json:"id"`
	Title       string     `json:"title" validate:"required"`
	Subtitle    *string    `json:"subtitle"`
	Icon        string     `json:"icon"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	Category    string     `json:"category" validate:"required"`
	BgColor     *string    `json:"bg_color"`
	Position    int        `json:"position"`
	Active      bool       `json:"active"`
}

// AdminListHomeSections returns every home page section for the admin grid.
func AdminListHomeSections(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListHomeSections(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"home_sections": rows})
	}
}

// AdminSaveHomeSection creates or updates one home page section.
func AdminSaveHomeSection(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload saveHomeSectionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		category, err := enums.ParseHomeSectionCategory(payload.Category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
			return
		}
		section := &models.HomeSection{
			Title:       payload.Title,
			Subtitle:    payload.Subtitle,
			Icon:        payload.Icon,
			Description: payload.Description,
			Link:        payload.Link,
			Category:    category,
			BgColor:     payload.BgColor,
			Position:    payload.Position,
			Active:      payload.Active,
		}
		if payload.ID != nil {
			section.ID = *payload.ID
		}
		saved, err := svc.SaveHomeSection(r.Context(), section)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, saved)
	}
}

// AdminDeleteHomeSection removes a home page section.
func AdminDeleteHomeSection(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteHomeSection(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type footerLinkRequest struct {
	Label    string `json:"label" validate:"required"`
	Link     string `json:"link" validate:"required"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

type saveFooterColumnRequest struct {
	ID       *uuid.UUID          `json:"id"`
	Title    string              `json:"title" validate:"required"`
	Position int                 `json:"position"`
	Active   bool                `json:"active"`
	Links    []footerLinkRequest `json:"links" validate:"dive"`
}

// AdminListFooterColumns returns the footer layout for the admin grid.
func AdminListFooterColumns(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListFooterColumns(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"footer": rows})
	}
}

// AdminSaveFooterColumn creates or updates a footer column and replaces its
// links.
func AdminSaveFooterColumn(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload saveFooterColumnRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		column := &models.FooterColumn{
			Title:    payload.Title,
			Position: payload.Position,
			Active:   payload.Active,
		}
		if payload.ID != nil {
			column.ID = *payload.ID
		}
		links := make([]models.FooterLink, 0, len(payload.Links))
		for _, link := range payload.Links {
			links = append(links, models.FooterLink{
				Label:    link.Label,
				Link:     link.Link,
				Position: link.Position,
				Active:   link.Active,
			})
		}
		saved, err := svc.SaveFooterColumn(r.Context(), column, links)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, saved)
	}
}

// AdminDeleteFooterColumn removes a footer column and its links.
func AdminDeleteFooterColumn(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteFooterColumn(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminListFeatureFlags returns the flag map.
func AdminListFeatureFlags(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flags, err := svc.FeatureFlags(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"feature_flags": flags})
	}
}

type setFeatureFlagRequest struct {
	Key     string `json:"key" validate:"required"`
	Enabled bool   `json:"enabled"`
}

// AdminSetFeatureFlag upserts one flag.
func AdminSetFeatureFlag(svc sitecfg.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setFeatureFlagRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.SetFeatureFlag(r.Context(), payload.Key, payload.Enabled); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		flags, err := svc.FeatureFlags(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"feature_flags": flags})
	}
}
