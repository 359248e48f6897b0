package bootstrap

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"screening-backend/internal/screenings"
	"screening-backend/internal/shared/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:            "8080",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		DOCXBackend:     "ooxml",
		SMTPServer:      "smtp.example.com",
		SMTPPort:        465,
		SendRatePerMin:  600,
		SendBurst:       10,
	}
}

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(document)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, data := range files {
		fw, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestEndToEndScreeningFlow(t *testing.T) {
	app, err := Build(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Set the profile.
	profilePayload := `{"jobDescription":"Backend engineer","mustHave":"python, linux, networking","goodToHave":"docker"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(profilePayload))
	req.Header.Set("Content-Type", "application/json")
	app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("put profile status = %d, body = %s", w.Code, w.Body.String())
	}

	// Screen two resumes, one of them unreadable.
	body, contentType := multipartUpload(t, map[string][]byte{
		"alice.docx":  buildDocx(t, "Python developer running Linux fleets", "Contact: alice@example.com"),
		"broken.docx": []byte("not a zip archive"),
	})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/screenings", body)
	req.Header.Set("Content-Type", contentType)
	app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	var batch screenings.Batch
	if err := json.Unmarshal(w.Body.Bytes(), &batch); err != nil {
		t.Fatalf("decode batch: %v", err)
	}
	if len(batch.Records) != 2 {
		t.Fatalf("records = %d", len(batch.Records))
	}

	// Sorted by score: alice first.
	if batch.Records[0].FileName != "alice.docx" {
		t.Fatalf("first record = %q", batch.Records[0].FileName)
	}
	if batch.Records[0].Score != 66.67 {
		t.Fatalf("alice score = %v", batch.Records[0].Score)
	}
	if batch.Records[0].Email != "alice@example.com" {
		t.Fatalf("alice email = %q", batch.Records[0].Email)
	}
	if batch.Records[1].ExtractionError == "" {
		t.Fatal("broken.docx should carry an extraction error")
	}
	if len(batch.Errors) != 1 || batch.Errors[0].FileName != "broken.docx" {
		t.Fatalf("errors summary = %+v", batch.Errors)
	}

	// Fetch it back.
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/screenings/"+batch.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	// Export CSV.
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/screenings/"+batch.ID+"/export", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, ".csv") {
		t.Fatalf("content-disposition = %q", got)
	}
	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv lines = %d, body = %s", len(lines), w.Body.String())
	}
	if !strings.Contains(lines[2], "-") {
		t.Fatalf("failed row should use dash placeholders: %q", lines[2])
	}
}

func TestHealthReportsBackends(t *testing.T) {
	app, err := Build(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Status   string            `json:"status"`
		Backends map[string]string `json:"backends"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("status = %q", resp.Status)
	}
	if resp.Backends["docx"] != "ooxml" {
		t.Fatalf("docx backend = %q", resp.Backends["docx"])
	}
	if resp.Backends["pdf"] != "ledongthuc" {
		t.Fatalf("pdf backend = %q", resp.Backends["pdf"])
	}
}

func TestScreeningsRejectsEmptyUpload(t *testing.T) {
	app, err := Build(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	body, contentType := multipartUpload(t, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/screenings", body)
	req.Header.Set("Content-Type", contentType)
	app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
