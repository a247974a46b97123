package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meldehub/meldehub-backend/internal/confirmation/domain"
	"github.com/meldehub/meldehub-backend/internal/confirmation/parser"
	"github.com/meldehub/meldehub-backend/internal/confirmation/service"
	"github.com/meldehub/meldehub-backend/pkg/errors"
	"github.com/meldehub/meldehub-backend/pkg/httputil"
	"github.com/meldehub/meldehub-backend/pkg/logger"
)

// Confirmation files are tiny; anything bigger is not a record.
const maxUploadSize = 1 << 20 // 1MB

// Handler handles HTTP requests for confirmation processing
type Handler struct {
	service  *service.Service
	log      *logger.Logger
	validate *validator.Validate
}

// NewHandler creates a new confirmation handler
func NewHandler(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		service:  svc,
		log:      log,
		validate: validator.New(),
	}
}

// UploadRequest is the JSON body of an ingest request
type UploadRequest struct {
	Record string `json:"record" validate:"required"`
}

// ConfirmationResponse is the response for a stored confirmation
type ConfirmationResponse struct {
	ID        string             `json:"id"`
	Summary   domain.SummaryView `json:"summary"`
	CreatedAt time.Time          `json:"created_at"`
}

// Ingest handles POST /confirmations
// Accepts either a JSON body with a "record" field or a multipart form
// with the confirmation file in the "file" field.
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	text, err := h.recordText(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	item, err := h.service.Ingest(r.Context(), text)
	if err != nil {
		if errors.Is(err, parser.ErrMalformedRecord) {
			httputil.Error(w, errors.New("MALFORMED_RECORD",
				"could not parse confirmation record", http.StatusUnprocessableEntity))
			return
		}
		h.log.Error().Err(err).Msg("ingest failed")
		httputil.Error(w, errors.Internal("confirmation processing failed"))
		return
	}

	httputil.Created(w, ConfirmationResponse{
		ID:        item.ID,
		Summary:   item.Summary.View(),
		CreatedAt: item.CreatedAt,
	})
}

// recordText extracts the raw record text from the request
func (h *Handler) recordText(r *http.Request) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return "", errors.BadRequest("file too large or invalid multipart form")
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			return "", errors.BadRequest("missing file in request")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", errors.Internal("failed to read uploaded file")
		}
		return string(data), nil
	}

	var req UploadRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		return "", err
	}
	if err := h.validate.Struct(&req); err != nil {
		return "", errors.Validation(map[string]string{
			"record": "must not be empty",
		})
	}
	return req.Record, nil
}

// Get handles GET /confirmations/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.Error(w, errors.BadRequest("missing id parameter"))
		return
	}

	item := h.service.Get(id)
	if item == nil {
		httputil.Error(w, errors.NotFound("confirmation"))
		return
	}

	httputil.JSON(w, http.StatusOK, ConfirmationResponse{
		ID:        item.ID,
		Summary:   item.Summary.View(),
		CreatedAt: item.CreatedAt,
	})
}

// History handles GET /confirmations
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 20)

	entries, total, err := h.service.History(r.Context(), page, perPage)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}

	httputil.JSONWithMeta(w, http.StatusOK, entries, &httputil.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
