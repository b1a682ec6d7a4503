package controllers

import (
	"net/http"
	"strings"

	"github.com/healthybite-ma/storefront-backend/api/responses"
	mediasvc "github.com/healthybite-ma/storefront-backend/internal/media"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
)

const maxMultipartMemory = 8 << 20

// AdminUploadImage accepts a multipart image and returns its public URL. The
// destination folder comes from the "folder" form field.
func AdminUploadImage(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file part is required"))
			return
		}
		defer file.Close()

		out, err := svc.UploadImage(r.Context(), mediasvc.UploadInput{
			Folder:      strings.TrimSpace(r.FormValue("folder")),
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			SizeBytes:   header.Size,
			Body:        file,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}
