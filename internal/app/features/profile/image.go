// internal/app/features/profile/image.go
//
// Image lifecycle orchestration. The ordering is deliberate:
// the new file is written before the pointer moves, so profileImage can
// never reference a file that does not exist yet. The worst late-failure
// outcome is an orphaned file, which is harmless, whereas a dangling
// pointer would break rendering.
package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/profilehub/internal/app/system/blobstore"
	"github.com/dalemusser/profilehub/internal/app/system/respond"
	"github.com/dalemusser/profilehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUploadImage stores a new profile image and retargets the
// caller's profileImage pointer, cleaning up the previous file.
// POST /api/user/profile/image, multipart field "file".
func (h *Handler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	filter := requestFilter(r)
	if filter == nil {
		respond.Unauthorized(w)
		return
	}

	// Cap the body itself, not just the parse buffer, so an oversized
	// upload fails here instead of spilling to disk and succeeding.
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUpload)
	if err := r.ParseMultipartForm(h.MaxUpload); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	newPath, err := h.Images.Save(file, contentType)
	if err != nil {
		if errors.Is(err, blobstore.ErrUnsupportedType) {
			respond.Error(w, http.StatusBadRequest, "Only image files allowed")
			return
		}
		h.Log.Error("image write failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Read the pre-update pointer so the old file can be cleaned up
	// after the new one is committed.
	oldPath, err := h.Users.GetImagePath(ctx, filter)
	if err != nil {
		h.rollbackNewFile(newPath, err)
		respond.Error(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	if err := h.Users.SetImagePath(ctx, filter, &newPath); err != nil {
		h.rollbackNewFile(newPath, err)
		respond.Error(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	// The pointer has committed; from here the request has succeeded.
	// Old-file removal is advisory cleanup and never surfaces.
	if oldPath != "" && oldPath != newPath {
		if err := h.Images.Remove(oldPath); err != nil {
			h.Log.Warn("failed to remove replaced image",
				zap.String("path", oldPath),
				zap.Error(err))
		}
	}

	respond.JSON(w, http.StatusOK, map[string]string{"imageUrl": newPath})
}

// rollbackNewFile removes a freshly written file after the database
// side of an upload failed, so no orphaned new file remains. The
// rollback itself is best-effort: a failure is logged, not retried.
func (h *Handler) rollbackNewFile(newPath string, cause error) {
	h.Log.Error("image upload failed after file write", zap.Error(cause))
	if err := h.Images.Remove(newPath); err != nil {
		h.Log.Warn("failed to remove image during rollback",
			zap.String("path", newPath),
			zap.Error(err))
	}
}

// HandleDeleteImage removes the caller's profile image file and nulls
// the pointer. Success is reported whether or not a file existed.
// DELETE /api/user/profile/image
func (h *Handler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	filter := requestFilter(r)
	if filter == nil {
		respond.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	oldPath, err := h.Users.GetImagePath(ctx, filter)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		h.Log.Error("image lookup failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to remove image")
		return
	}

	if oldPath != "" {
		if err := h.Images.Remove(oldPath); err != nil {
			h.Log.Warn("failed to remove image file",
				zap.String("path", oldPath),
				zap.Error(err))
		}
	}

	if err := h.Users.SetImagePath(ctx, filter, nil); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		h.Log.Error("clearing image pointer failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to remove image")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Image removed"})
}
