// Package handlers translates HTTP requests into session store operations
// and picks a template or redirect response.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"paybyphone/checkout"
	"paybyphone/parking"
	"paybyphone/pricing"
	"paybyphone/session"
)

// CheckoutStarter begins a hosted checkout for a session and returns the
// provider redirect URL.
type CheckoutStarter interface {
	Begin(ctx context.Context, sess session.Session, baseURL string) (string, error)
}

// flowMetrics is the subset of the metrics collector the flow records.
type flowMetrics interface {
	RecordSessionCreated()
	RecordPaymentCompleted(amountEUR float64)
	RecordCheckoutFailure()
	RecordCheckoutLatency(d time.Duration)
}

// Handler serves the parking-payment flow.
type Handler struct {
	store    *session.Store
	checkout CheckoutStarter
	metrics  flowMetrics
	log      *slog.Logger
	baseURL  string
}

// New returns a Handler over the given collaborators.
func New(store *session.Store, co CheckoutStarter, m flowMetrics, log *slog.Logger, baseURL string) *Handler {
	return &Handler{
		store:    store,
		checkout: co,
		metrics:  m,
		log:      log,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}
}

type durationChoice struct {
	Minutes int
	Price   float64
}

func durationChoices() []durationChoice {
	ds := pricing.Durations()
	out := make([]durationChoice, 0, len(ds))
	for _, d := range ds {
		out = append(out, durationChoice{Minutes: d, Price: pricing.For(d)})
	}
	return out
}

// Home renders the zone entry page.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

// ProcessZone validates the zone code and moves to vehicle registration.
func (h *Handler) ProcessZone(c *gin.Context) {
	code := strings.TrimSpace(c.PostForm("zone_code"))
	if code == "" {
		c.HTML(http.StatusOK, "home.html", gin.H{"Error": "Veuillez entrer un code zone"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/vehicle/"+url.PathEscape(code))
}

// VehiclePage renders the vehicle registration form.
func (h *Handler) VehiclePage(c *gin.Context) {
	code := c.Param("zone_code")
	c.HTML(http.StatusOK, "vehicle.html", gin.H{
		"ZoneCode": code,
		"Zone":     parking.Resolve(code),
	})
}

// ProcessVehicle creates the parking session and moves to duration
// selection. An empty plate re-renders the form with no state mutation.
func (h *Handler) ProcessVehicle(c *gin.Context) {
	code := c.Param("zone_code")
	plate := strings.TrimSpace(c.PostForm("plate"))
	if plate == "" {
		c.HTML(http.StatusOK, "vehicle.html", gin.H{
			"ZoneCode": code,
			"Zone":     parking.Resolve(code),
			"Error":    "Veuillez entrer une plaque d'immatriculation",
		})
		return
	}

	sess := h.store.Create(code, plate, c.PostForm("vehicle_type"), c.PostForm("description"))
	h.metrics.RecordSessionCreated()
	h.log.Info("session created",
		slog.String("session_id", sess.ID),
		slog.String("zone_code", sess.ZoneCode),
		slog.String("plate", sess.Plate),
	)

	c.Redirect(http.StatusSeeOther, "/duration/"+sess.ID)
}

// DurationPage renders the duration choices for a session.
func (h *Handler) DurationPage(c *gin.Context) {
	sess, err := h.store.Get(c.Param("session_id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "duration.html", gin.H{
		"Session":   sess,
		"Durations": durationChoices(),
	})
}

// ProcessDuration stores the chosen duration and its price.
func (h *Handler) ProcessDuration(c *gin.Context) {
	id := c.Param("session_id")
	sess, err := h.store.Get(id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	minutes, err := strconv.Atoi(c.PostForm("duration"))
	if err != nil || minutes <= 0 {
		c.HTML(http.StatusBadRequest, "duration.html", gin.H{
			"Session":   sess,
			"Durations": durationChoices(),
			"Error":     "Veuillez choisir une durée valide",
		})
		return
	}

	if err := h.store.SetDuration(id, minutes); err != nil {
		if errors.Is(err, session.ErrAlreadyPaid) {
			c.Redirect(http.StatusSeeOther, "/success/"+id)
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.Redirect(http.StatusSeeOther, "/summary/"+id)
}

// SummaryPage renders the recap with the projected end time.
func (h *Handler) SummaryPage(c *gin.Context) {
	sess, err := h.store.Get(c.Param("session_id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "summary.html", gin.H{
		"Session":   sess,
		"EndTime":   time.Now().Add(time.Duration(sess.DurationMinutes) * time.Minute),
		"Cancelled": c.Query("cancelled") == "true",
	})
}

// CreateCheckout asks the payment provider for a hosted page and redirects
// the user there. On provider failure the summary is re-rendered with the
// error and the session is left untouched.
func (h *Handler) CreateCheckout(c *gin.Context) {
	sess, err := h.store.Get(c.Param("session_id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	start := time.Now()
	redirect, err := h.checkout.Begin(c.Request.Context(), sess, h.baseURL)
	h.metrics.RecordCheckoutLatency(time.Since(start))
	if err != nil {
		h.metrics.RecordCheckoutFailure()
		h.log.Error("checkout creation failed",
			slog.String("session_id", sess.ID),
			slog.String("error", err.Error()),
		)
		c.HTML(http.StatusBadGateway, "summary.html", gin.H{
			"Session": sess,
			"EndTime": time.Now().Add(time.Duration(sess.DurationMinutes) * time.Minute),
			"Error":   "Le paiement est momentanément indisponible. Veuillez réessayer.",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, redirect)
}

// SuccessPage marks the session paid (idempotently) and renders the
// virtual ticket.
func (h *Handler) SuccessPage(c *gin.Context) {
	id := c.Param("session_id")
	prev, err := h.store.Get(id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	end, err := h.store.MarkPaid(id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if !prev.Paid {
		h.metrics.RecordPaymentCompleted(prev.Price)
		h.log.Info("payment confirmed",
			slog.String("session_id", id),
			slog.Float64("price", prev.Price),
			slog.Time("end_time", end),
		)
	}

	sess, _ := h.store.Get(id)
	c.HTML(http.StatusOK, "success.html", gin.H{"Session": sess})
}

// CancelPage returns the user to the start of the flow.
func (h *Handler) CancelPage(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// ComptePage renders the account placeholder page.
func (h *Handler) ComptePage(c *gin.Context) {
	c.HTML(http.StatusOK, "compte.html", gin.H{})
}

// LoginPage redirects to the account page.
func (h *Handler) LoginPage(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/compte")
}

// PriceAPI returns the price for a duration as JSON.
func (h *Handler) PriceAPI(c *gin.Context) {
	minutes, err := strconv.Atoi(c.Param("duration"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"duration": minutes,
		"price":    pricing.For(minutes),
	})
}

var _ CheckoutStarter = (*checkout.Client)(nil)
