package feedback

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/mailer"
	"screening-backend/internal/screenings"
	"screening-backend/internal/shared/server/respond"
	"screening-backend/internal/shared/telemetry"
)

// Sender delivers one composed email.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) mailer.Result
}

type Handler struct {
	service *screenings.Service
	sender  Sender
}

func NewHandler(service *screenings.Service, sender Sender) *Handler {
	return &Handler{service: service, sender: sender}
}

// RegisterRoutes mounts the feedback endpoints. sendLimit guards the
// routes that talk to the SMTP server.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, sendLimit gin.HandlerFunc) {
	rg.GET("/screenings/:id/records/:recordId/feedback", h.preview)
	rg.POST("/screenings/:id/records/:recordId/feedback/send", sendLimit, h.send)
	rg.POST("/screenings/:id/feedback/send-all", sendLimit, h.sendAll)
}

func (h *Handler) preview(c *gin.Context) {
	rec, ok := h.lookupRecord(c)
	if !ok {
		return
	}
	respond.OK(c, Compose(rec))
}

type sendRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type sendResponse struct {
	RecordID string `json:"recordId"`
	FileName string `json:"fileName"`
	Sent     bool   `json:"sent"`
	Status   string `json:"status"`
	Body     string `json:"body,omitempty"`
}

func (h *Handler) send(c *gin.Context) {
	rec, ok := h.lookupRecord(c)
	if !ok {
		return
	}
	if rec.Email == "" {
		respond.Error(c, http.StatusBadRequest, "no_email", "No email address was detected in this resume", nil)
		return
	}

	var req sendRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "bad_request", "Invalid JSON body", nil)
			return
		}
	}

	msg := Compose(rec)
	if req.Subject != "" {
		msg.Subject = req.Subject
	}
	if req.Body != "" {
		msg.Body = req.Body
	}

	res := h.sender.Send(c.Request.Context(), msg.Recipient, msg.Subject, msg.Body)
	respond.OK(c, sendResponse{
		RecordID: rec.ID,
		FileName: rec.FileName,
		Sent:     res.OK,
		Status:   res.Status,
		Body:     msg.Body,
	})
}

type sendAllResponse struct {
	Results []sendResponse `json:"results"`
	Sent    int            `json:"sent"`
	Skipped int            `json:"skipped"`
}

// sendAll mails every record in the batch that has a detected email.
// One failed delivery never stops the rest.
func (h *Handler) sendAll(c *gin.Context) {
	batch, ok := h.lookupBatch(c)
	if !ok {
		return
	}

	out := sendAllResponse{Results: make([]sendResponse, 0, len(batch.Records))}
	for _, rec := range batch.Records {
		if rec.Email == "" {
			out.Skipped++
			out.Results = append(out.Results, sendResponse{
				RecordID: rec.ID,
				FileName: rec.FileName,
				Status:   "skipped: no email detected",
			})
			continue
		}
		msg := Compose(rec)
		res := h.sender.Send(c.Request.Context(), msg.Recipient, msg.Subject, msg.Body)
		if res.OK {
			out.Sent++
		}
		out.Results = append(out.Results, sendResponse{
			RecordID: rec.ID,
			FileName: rec.FileName,
			Sent:     res.OK,
			Status:   res.Status,
			Body:     msg.Body,
		})
	}

	telemetry.Info("feedback.send_all.complete", map[string]any{
		"batch_id": batch.ID,
		"sent":     out.Sent,
		"skipped":  out.Skipped,
		"total":    len(batch.Records),
	})
	respond.OK(c, out)
}

func (h *Handler) lookupBatch(c *gin.Context) (screenings.Batch, bool) {
	batch, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, screenings.ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "Batch not found", nil)
		return screenings.Batch{}, false
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not load batch", nil)
		return screenings.Batch{}, false
	}
	return batch, true
}

func (h *Handler) lookupRecord(c *gin.Context) (screenings.Record, bool) {
	batch, ok := h.lookupBatch(c)
	if !ok {
		return screenings.Record{}, false
	}
	recordID := c.Param("recordId")
	for _, rec := range batch.Records {
		if rec.ID == recordID {
			return rec, true
		}
	}
	respond.Error(c, http.StatusNotFound, "not_found", "Record not found in batch", nil)
	return screenings.Record{}, false
}
