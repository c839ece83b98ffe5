package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"blogql/internal/middleware"
)

type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath,omitempty"`
}

// UploadImage stores a multipart "image" file and returns the path clients
// pass as imageUrl. Only PNG and JPEG are accepted; the mime type is
// sniffed from content, not taken from the request.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	identity := middleware.IdentityFromContext(r.Context())
	if !identity.Authenticated() {
		WriteError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteSuccess(w, UploadResponse{Message: "Image is not provided"}, http.StatusOK)
		return
	}
	defer file.Close()

	mime, err := mimetype.DetectReader(file)
	if err != nil {
		WriteError(w, "Failed to read file", http.StatusBadRequest)
		return
	}

	if !mime.Is("image/png") && !mime.Is("image/jpeg") {
		WriteError(w, "Only PNG and JPEG images are allowed", http.StatusUnprocessableEntity)
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		WriteError(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	_, imageURL, err := h.Storage.UploadImage(r.Context(), header.Filename, mime.String(), file, header.Size)
	if err != nil {
		WriteError(w, "Failed to store file", http.StatusInternalServerError)
		return
	}

	// replacing an image: drop the previous object, best effort
	if oldPath := r.FormValue("oldPath"); oldPath != "" {
		objectName := h.Storage.ObjectFromURL(oldPath)
		if err := h.Storage.DeleteImage(r.Context(), objectName); err != nil {
			log.Printf("Warning: failed to delete old image %s: %v", objectName, err)
		}
	}

	WriteSuccess(w, UploadResponse{
		Message:  "A file stored",
		FilePath: imageURL,
	}, http.StatusCreated)
}
