package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/hackbuddy/hackbuddy/internal/model"
	"github.com/hackbuddy/hackbuddy/internal/repository"
	"github.com/hackbuddy/hackbuddy/internal/storage"
)

var (
	ErrProfileCreationFailed = errors.New("profile creation failed")
	ErrResumeUploadFailed    = errors.New("resume upload failed")
)

// ProfileFields carries a partial profile update. Nil fields are left
// untouched.
type ProfileFields struct {
	FullName *string
	Bio      *string
}

// ResumeFile is an uploaded resume: raw bytes plus the declared filename.
type ResumeFile struct {
	Name string
	Data io.Reader
}

// AnalysisOutcome is the later-arriving result of a fire-and-forget resume
// analysis. FromAI distinguishes a real AI-derived analysis from the
// placeholder fallback.
type AnalysisOutcome struct {
	Analysis *model.ResumeAnalysis
	FromAI   bool
	Err      error
}

// ResumeAnalyzer derives structured skill data from a stored resume.
type ResumeAnalyzer interface {
	AnalyzeResume(ctx context.Context, resumeURL, userID string) (*model.ResumeAnalysis, bool, error)
}

// ProfileService orchestrates the profile reconciliation workflow: ensure a
// row exists, upload a resume, persist fields, and kick off analysis.
type ProfileService struct {
	profileRepo     repository.ProfileRepository
	storage         storage.Storage
	analyzer        ResumeAnalyzer
	analysisTimeout time.Duration
}

func NewProfileService(profileRepo repository.ProfileRepository, storage storage.Storage, analyzer ResumeAnalyzer) *ProfileService {
	return &ProfileService{
		profileRepo:     profileRepo,
		storage:         storage,
		analyzer:        analyzer,
		analysisTimeout: 90 * time.Second,
	}
}

// EnsureProfile guarantees a profile row exists for the user. A lookup error
// other than "not found" surfaces without inserting, so an ambiguous failure
// can't produce duplicate rows. The insert itself is conflict-tolerant, so a
// concurrent first-login racing past the existence check is a no-op.
func (s *ProfileService) EnsureProfile(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.profileRepo.ByID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrProfileCreationFailed, err)
	}

	blank := &model.Profile{
		ID:        userID,
		FullName:  "",
		Bio:       "",
		UpdatedAt: time.Now(),
	}
	err = s.profileRepo.Create(blank)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileCreationFailed, err)
	}

	// Re-read so a racing creator's row wins consistently
	profile, err = s.profileRepo.ByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileCreationFailed, err)
	}
	return profile, nil
}

// Save persists profile fields and, when a resume file is given, uploads it
// first. Upload failure aborts the whole save: no field changes are written,
// so the user never believes a CV uploaded when it didn't (or vice versa).
// A successful new upload triggers analysis asynchronously; the returned
// channel delivers its outcome and is nil when no new resume was written.
func (s *ProfileService) Save(ctx context.Context, userID string, fields ProfileFields, file *ResumeFile) (*model.Profile, <-chan AnalysisOutcome, error) {
	profile, err := s.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var resumeURL string
	if file != nil {
		resumeURL, err = s.UploadResume(ctx, userID, file)
		if err != nil {
			return nil, nil, err
		}
	}

	if fields.FullName != nil {
		profile.FullName = strings.TrimSpace(*fields.FullName)
	}
	if fields.Bio != nil {
		profile.Bio = strings.TrimSpace(*fields.Bio)
	}
	if resumeURL != "" {
		profile.CVURL = &resumeURL
	}

	err = s.profileRepo.Update(profile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save profile: %w", err)
	}

	var outcome <-chan AnalysisOutcome
	if resumeURL != "" {
		outcome = s.analyzeAsync(resumeURL, userID)
	}
	return profile, outcome, nil
}

// Load reads the user's profile, creating it when absent. When a resume is
// on file, analysis is re-triggered from the stored URL so returning users
// see skill data without re-uploading; its failure never fails the load.
func (s *ProfileService) Load(ctx context.Context, userID string) (*model.Profile, <-chan AnalysisOutcome, error) {
	profile, err := s.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var outcome <-chan AnalysisOutcome
	if profile.HasCV() {
		outcome = s.analyzeAsync(*profile.CVURL, userID)
	}
	return profile, outcome, nil
}

// UploadResume stores the file under a key derived from the user ID and the
// file extension, so re-uploads overwrite instead of accumulating. Returns
// the publicly addressable URL of the stored object.
func (s *ProfileService) UploadResume(ctx context.Context, userID string, file *ResumeFile) (string, error) {
	key := ResumeKey(userID, file.Name)

	err := s.storage.Save(ctx, key, file.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResumeUploadFailed, err)
	}

	return s.storage.URL(key), nil
}

// ResumeKey derives the storage key for a user's resume: "<userID>-cv<ext>".
func ResumeKey(userID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s-cv%s", userID, ext)
}

// analyzeAsync runs resume analysis detached from the calling request. The
// buffered channel lets callers ignore the outcome without leaking the
// goroutine; tests await it for determinism.
func (s *ProfileService) analyzeAsync(resumeURL, userID string) <-chan AnalysisOutcome {
	ch := make(chan AnalysisOutcome, 1)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.analysisTimeout)
		defer cancel()

		analysis, fromAI, err := s.analyzer.AnalyzeResume(ctx, resumeURL, userID)
		if err != nil {
			slog.Warn("resume analysis failed", "user_id", userID, "error", err)
		}
		ch <- AnalysisOutcome{Analysis: analysis, FromAI: fromAI, Err: err}
		close(ch)
	}()

	return ch
}
