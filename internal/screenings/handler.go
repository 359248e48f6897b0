package screenings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/shared/server/respond"
	"screening-backend/internal/shared/util"
)

// maxUploadBytes caps a single resume file.
const maxUploadBytes = 20 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/screenings", h.create)
	rg.GET("/screenings/:id", h.get)
	rg.GET("/screenings/:id/export", h.export)
}

func (h *Handler) create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "Expected multipart form upload", nil)
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		respond.Error(c, http.StatusBadRequest, "bad_request", "No files provided under field 'files'", nil)
		return
	}

	docs := make([]Document, 0, len(files))
	for _, fh := range files {
		doc, err := readUpload(fh)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "bad_request", err.Error(), nil)
			return
		}
		docs = append(docs, doc)
	}

	batch, err := h.service.Run(c.Request.Context(), docs)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Screening batch failed", nil)
		return
	}
	c.Set("batchId", batch.ID)
	respond.JSON(c, http.StatusCreated, batch)
}

func readUpload(fh *multipart.FileHeader) (Document, error) {
	name, err := util.SanitizeFileName(fh.Filename)
	if err != nil {
		return Document{}, fmt.Errorf("invalid file name %q", fh.Filename)
	}
	if fh.Size > maxUploadBytes {
		return Document{}, fmt.Errorf("file %q exceeds the %d MB limit", name, maxUploadBytes>>20)
	}
	f, err := fh.Open()
	if err != nil {
		return Document{}, fmt.Errorf("could not open upload %q", name)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return Document{}, fmt.Errorf("could not read upload %q", name)
	}
	if len(data) > maxUploadBytes {
		return Document{}, fmt.Errorf("file %q exceeds the %d MB limit", name, maxUploadBytes>>20)
	}
	return Document{FileName: name, Data: data}, nil
}

func (h *Handler) get(c *gin.Context) {
	batch, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "Batch not found", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not load batch", nil)
		return
	}
	respond.OK(c, batch)
}

func (h *Handler) export(c *gin.Context) {
	batch, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "Batch not found", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not load batch", nil)
		return
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, batch); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not render CSV", nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "screening_"+batch.ID+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
