package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"mime"
	"net/http"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/riverfjs/wordify-go"
)

const defaultMaxUploadBytes = 10 << 20

type uploadHandler struct {
	logger   *zap.Logger
	maxBytes int64
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func runServe(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("wordify-serve", flag.ExitOnError)
	addr := fs.String("addr", "", "Listen address (defaults to :$PORT or :3000)")
	maxBytes := fs.Int64("max-bytes", defaultMaxUploadBytes, "Maximum accepted upload size in bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	listen := *addr
	if listen == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		listen = ":" + port
	}

	mux := http.NewServeMux()
	mux.Handle("/upload", &uploadHandler{logger: logger, maxBytes: *maxBytes})

	srv := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("server running", zap.String("addr", listen))
	return srv.ListenAndServe()
}

func (h *uploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	requestID := uuid.NewString()
	log := h.logger.With(zap.String("request_id", requestID))

	if r.ContentLength > h.maxBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No file received")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	log.Info("file received",
		zap.String("original_name", header.Filename),
		zap.String("mime_type", contentType),
		zap.String("size", humanize.Bytes(uint64(header.Size))),
	)

	format := wordify.DetectSourceFormat(header.Filename, contentType)
	var buf bytes.Buffer
	result, err := wordify.Wordify(r.Context(), file, &buf, wordify.WithSourceFormat(format))
	if err != nil {
		if wordify.IsMalformedInput(err) {
			log.Warn("malformed input", zap.Error(err))
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Error("conversion failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Conversion failed")
		return
	}

	log.Info("document converted",
		zap.Stringer("format", result.Format),
		zap.Int("blocks", result.Blocks),
		zap.String("size", humanize.Bytes(uint64(buf.Len()))),
	)
	w.Header().Set("Content-Type", wordify.ContentType)
	w.Header().Set("Content-Disposition", contentDisposition(docxName(header.Filename)))
	w.Header().Set("X-Request-Id", requestID)
	_, _ = w.Write(buf.Bytes())
}

func docxName(filename string) string {
	name := outputPath(filename, "", ".docx")
	if name == ".docx" {
		return "document.docx"
	}
	return name
}

// contentDisposition 生成附件头；文件名中的引号等字符由 mime 负责转义
func contentDisposition(filename string) string {
	v := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	if v == "" {
		return "attachment"
	}
	return v
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{OK: false, Error: msg})
}
