package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/N1ghtHunter/portfolio-backend/errs"
	"github.com/N1ghtHunter/portfolio-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type cvHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *storage.AssetStore
}

func newCVHandler(store *storage.AssetStore) cvHandler {
	logger := log.With().Str("handlerName", "cvHandler").Logger()

	return cvHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// uploadCV replaces the CV slot with the uploaded pdf and answers with the
// download URL, rebuilt from the incoming request rather than stored anywhere.
func (h cvHandler) uploadCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := storeUploadedFiles(r, h.store); err != nil {
			h.logger.Error().Err(err).Msg("upload failed")
			h.responder.WriteError(w, err)
			return
		}

		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"url": fmt.Sprintf("%s://%s%s", scheme, r.Host, r.URL.Path),
		})
	}
}

// downloadCV streams the current CV slot as an attachment, sizing it fresh
// from the filesystem on every request.
func (h cvHandler) downloadCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, size, err := h.store.OpenCV()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				h.responder.WriteError(w, errs.NewNotFound("cv"))
				return
			}
			h.responder.WriteError(w, err)
			return
		}
		defer file.Close()

		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename="+storage.CVFileName)

		if _, err := io.Copy(w, file); err != nil {
			h.logger.Error().Err(err).Msg("error streaming cv file")
		}
	}
}
