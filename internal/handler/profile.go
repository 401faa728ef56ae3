package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hackbuddy/hackbuddy/internal/ctxkeys"
	"github.com/hackbuddy/hackbuddy/internal/service"
	"github.com/hackbuddy/hackbuddy/internal/validation"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	maxCVSize      int64
}

func NewProfileHandler(profileService *service.ProfileService, maxCVSize int64) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		maxCVSize:      maxCVSize,
	}
}

// Get loads the caller's profile, creating a blank row on first visit. When a
// resume is on file the service re-triggers analysis in the background; the
// client fetches its result through /api/analyze-cv.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	profile, _, err := h.profileService.Load(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to load profile", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"profile": profile})
}

// Update saves profile fields and an optional resume from a multipart form.
// The save is all-or-nothing: a failed upload leaves the text fields as they
// were.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := r.ParseMultipartForm(h.maxCVSize + 1<<20)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var fields service.ProfileFields
	if values, ok := r.MultipartForm.Value["full_name"]; ok && len(values) > 0 {
		fields.FullName = &values[0]
	}
	if values, ok := r.MultipartForm.Value["bio"]; ok && len(values) > 0 {
		fields.Bio = &values[0]
	}

	var resume *service.ResumeFile
	file, header, err := r.FormFile("cv")
	if err == nil {
		defer file.Close()

		err = validation.ValidateFile(header, validation.CVConstraints)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		resume = &service.ResumeFile{
			Name: header.Filename,
			Data: file,
		}
	} else if err != http.ErrMissingFile {
		respondError(w, http.StatusBadRequest, "invalid cv upload")
		return
	}

	profile, _, err := h.profileService.Save(r.Context(), user.ID, fields, resume)
	if err != nil {
		slog.Error("failed to save profile", "error", err, "user_id", user.ID)

		if errors.Is(err, service.ErrResumeUploadFailed) {
			respondError(w, http.StatusBadGateway, "resume upload failed; profile not saved")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"profile": profile})
}
