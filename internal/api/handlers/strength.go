// Package handlers serves the meter page and the JSON analysis API.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/5w1tchy/pwmeter/internal/api/apperr"
	"github.com/5w1tchy/pwmeter/internal/api/httpx"
	"github.com/5w1tchy/pwmeter/internal/presenter"
	"github.com/5w1tchy/pwmeter/internal/strength"
	"github.com/5w1tchy/pwmeter/internal/webui"
)

type StrengthRequest struct {
	Password string `json:"password"`
}

type StrengthResponse struct {
	Analysis strength.Result   `json:"analysis"`
	UI       presenter.UIState `json:"ui"`
}

// Pinger checks a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// Strength handles POST /v1/strength.
func Strength(w http.ResponseWriter, r *http.Request) {
	var req StrengthRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		apperr.Write(w, r, apperr.DecodeError(err))
		return
	}

	res := strength.Analyze(req.Password)
	httpx.OK(w, StrengthResponse{Analysis: res, UI: presenter.Present(res)})
}

// Page serves the server-rendered meter. GET shows an empty meter; POST
// re-renders it for the submitted password and optional visibility toggle.
func Page(logger lager.Logger) http.HandlerFunc {
	logger = logger.Session("page")
	return func(w http.ResponseWriter, r *http.Request) {
		page := webui.NewPage()

		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				apperr.Write(w, r, apperr.DecodeError(err))
				return
			}
			vis := page.Visibility()
			vis.Set(r.PostForm.Get("shown") == "1")
			if r.PostForm.Get("action") == "toggle" {
				vis.Toggle()
			}
			page.Password.Value = r.PostForm.Get("password")
			page.Binding().Update(page.Password.Value)
		}

		w.Header().Set("Content-Security-Policy", webui.ContentSecurityPolicy)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := webui.Render(w, page); err != nil {
			logger.Error("render-failed", err)
		}
	}
}

// Health reports liveness; with a pinger it also checks the rate limit store.
func Health(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				apperr.Write(w, r, apperr.Problem{
					Status:    http.StatusServiceUnavailable,
					Title:     "Service Unavailable",
					Detail:    "redis unreachable",
					Retryable: true,
				})
				return
			}
		}
		httpx.OKNoData(w)
	}
}
