package profiles

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/shared/server/respond"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.put)
}

type putProfileRequest struct {
	JobDescription string `json:"jobDescription"`
	MustHave       string `json:"mustHave"`
	GoodToHave     string `json:"goodToHave"`
}

func (h *Handler) put(c *gin.Context) {
	var req putProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "Invalid JSON body", nil)
		return
	}

	p := Profile{
		JobDescription: strings.TrimSpace(req.JobDescription),
		MustHave:       ParseSkills(req.MustHave),
		GoodToHave:     ParseSkills(req.GoodToHave),
	}
	if err := h.repo.Put(c.Request.Context(), p); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not save profile", nil)
		return
	}

	stored, err := h.repo.Get(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not load profile", nil)
		return
	}
	respond.OK(c, stored)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context())
	if errors.Is(err, ErrNotFound) {
		respond.OK(c, Profile{MustHave: []string{}, GoodToHave: []string{}})
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not load profile", nil)
		return
	}
	respond.OK(c, p)
}
