package controllers

import (
	"net/http"
	"time"

	"github.com/pyperpy/pyper-backend/api/responses"
	"github.com/pyperpy/pyper-backend/api/validators"
	"github.com/pyperpy/pyper-backend/internal/analytics"
	"github.com/pyperpy/pyper-backend/pkg/logger"
)

type trackVisitRequest struct {
	VisitorID    string  `json:"visitor_id" validate:"required"`
	SessionID    string  `json:"session_id" validate:"required"`
	PagePath     string  `json:"page_path"`
	Referrer     *string `json:"referrer"`
	UserAgent    string  `json:"user_agent"`
	IsNewVisitor bool    `json:"is_new_visitor"`
	IsNewSession bool    `json:"is_new_session"`
}

// TrackVisit records one storefront page view. The User-Agent header backs
// the payload field so device detection still works for older clients.
func TrackVisit(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload trackVisitRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		userAgent := payload.UserAgent
		if userAgent == "" {
			userAgent = r.UserAgent()
		}
		referrer := payload.Referrer
		if referrer != nil {
			capped := validators.SanitizeString(*referrer, 2048)
			referrer = &capped
		}
		err := svc.Track(r.Context(), analytics.TrackInput{
			VisitorID:    validators.SanitizeString(payload.VisitorID, 128),
			SessionID:    validators.SanitizeString(payload.SessionID, 128),
			PagePath:     validators.SanitizeString(payload.PagePath, 2048),
			Referrer:     referrer,
			UserAgent:    validators.SanitizeString(userAgent, 512),
			IsNewVisitor: payload.IsNewVisitor,
			IsNewSession: payload.IsNewSession,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "recorded"})
	}
}

// AdminDashboard assembles the panel home page counters.
func AdminDashboard(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := svc.Dashboard(r.Context(), time.Now())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dashboard)
	}
}

// AdminVisitHistory returns the per-day visit rollups for the chart.
func AdminVisitHistory(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := validators.ParseQueryInt(r, "days", 30, 1, 365)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.History(r.Context(), time.Now(), days)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"history": rows})
	}
}
