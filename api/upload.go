package api

import (
	"net/http"

	"github.com/N1ghtHunter/portfolio-backend/errs"
	"github.com/N1ghtHunter/portfolio-backend/storage"
)

// maxUploadFileSize is the hard per-file ceiling for multipart uploads, in bytes.
const maxUploadFileSize = 10_000_000

const (
	imageFieldName = "image"
	pdfFieldName   = "pdf"
)

// uploadedFiles reports what the upload pipeline stored for a request.
type uploadedFiles struct {
	// ImagePath is the public URL path of the stored image, empty when the
	// request carried no image part.
	ImagePath string
	// CVStored is true when a pdf part replaced the CV slot.
	CVStored bool
}

// storeUploadedFiles parses the request's multipart form and routes file parts
// by field name: "image" parts land in the image directory under a generated
// name, "pdf" parts replace the CV slot. The size ceiling is checked for every
// file part before anything is written, so a rejected request leaves no
// partial file behind. Text fields remain readable through r.FormValue.
func storeUploadedFiles(r *http.Request, store *storage.AssetStore) (uploadedFiles, error) {
	var stored uploadedFiles

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return stored, errs.NewMalformedPayloadError(err)
	}

	for _, field := range []string{imageFieldName, pdfFieldName} {
		for _, header := range r.MultipartForm.File[field] {
			if header.Size > maxUploadFileSize {
				return stored, errs.NewMaxFileSizeExceededError(field, maxUploadFileSize)
			}
		}
	}

	if headers := r.MultipartForm.File[imageFieldName]; len(headers) > 0 {
		src, err := headers[0].Open()
		if err != nil {
			return stored, errs.NewMalformedPayloadError(err)
		}
		defer src.Close()

		name, err := store.SaveImage(src, headers[0].Filename)
		if err != nil {
			return stored, err
		}
		stored.ImagePath = store.PublicImagePath(name)
	}

	if headers := r.MultipartForm.File[pdfFieldName]; len(headers) > 0 {
		src, err := headers[0].Open()
		if err != nil {
			return stored, errs.NewMalformedPayloadError(err)
		}
		defer src.Close()

		if err := store.SaveCV(src); err != nil {
			return stored, err
		}
		stored.CVStored = true
	}

	return stored, nil
}
