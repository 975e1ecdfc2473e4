package main

import (
	"bytes"
	"encoding/json"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/riverfjs/wordify-go"
)

func newUploadRequest(t *testing.T, field, filename, body string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		_, _ = fw.Write([]byte(body))
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}

func TestUploadHandler(t *testing.T) {
	h := &uploadHandler{logger: zap.NewNop(), maxBytes: defaultMaxUploadBytes}

	tests := []struct {
		name       string
		req        *http.Request
		wantStatus int
		wantError  string
	}{
		{
			name:       "html upload",
			req:        newUploadRequest(t, "file", "page.html", "<h1>Title</h1><p>body</p>"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "markdown upload",
			req:        newUploadRequest(t, "file", "notes.md", "# Title\n\n- a\n"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "no file",
			req:        newUploadRequest(t, "", "", ""),
			wantStatus: http.StatusBadRequest,
			wantError:  "No file received",
		},
		{
			name:       "malformed tree",
			req:        newUploadRequest(t, "file", "tree.json", `[{"attributes":{}}]`),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "wrong method",
			req:        httptest.NewRequest(http.MethodGet, "/upload", nil),
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Method not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, tt.req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				if ct := rec.Header().Get("Content-Type"); ct != wordify.ContentType {
					t.Errorf("Content-Type = %q, want %q", ct, wordify.ContentType)
				}
				if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
					t.Error("body is not a zip package")
				}
				if rec.Header().Get("X-Request-Id") == "" {
					t.Error("missing X-Request-Id")
				}
				return
			}
			resp := decodeError(t, rec)
			if resp.OK {
				t.Error("ok = true in error response")
			}
			if tt.wantError != "" && resp.Error != tt.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
			}
		})
	}
}

func TestUploadHandler_TooLarge(t *testing.T) {
	h := &uploadHandler{logger: zap.NewNop(), maxBytes: 64}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newUploadRequest(t, "file", "page.html", string(bytes.Repeat([]byte("x"), 1024))))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct{ in, out, ext, want string }{
		{in: "a/b.html", ext: ".docx", want: "a/b.docx"},
		{in: "notes", ext: ".docx", want: "notes.docx"},
		{in: "x.md", out: "y.docx", ext: ".docx", want: "y.docx"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.in, tt.out, tt.ext); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.in, tt.out, got, tt.want)
		}
	}
}

func TestContentDisposition(t *testing.T) {
	tests := []string{"report.docx", `we"ird.docx`, "月报.docx", `back\slash.docx`}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			header := contentDisposition(name)
			disposition, params, err := mime.ParseMediaType(header)
			if err != nil {
				t.Fatalf("ParseMediaType(%q) error = %v", header, err)
			}
			if disposition != "attachment" {
				t.Errorf("disposition = %q, want attachment", disposition)
			}
			if params["filename"] != name {
				t.Errorf("filename = %q, want %q", params["filename"], name)
			}
		})
	}
}

func TestUploadHandler_QuotedFilename(t *testing.T) {
	h := &uploadHandler{logger: zap.NewNop(), maxBytes: defaultMaxUploadBytes}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newUploadRequest(t, "file", `a"b.html`, "<p>x</p>"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	_, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("ParseMediaType() error = %v", err)
	}
	if params["filename"] != `a"b.docx` {
		t.Errorf("filename = %q, want %q", params["filename"], `a"b.docx`)
	}
}
