package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hackbuddy/hackbuddy/internal/model"
)

// binaryDocumentNote is passed into the prompt instead of resume text when the
// stored object is a binary document format. Analysis still produces a
// structured result; it just works from less signal.
const binaryDocumentNote = "A resume document was detected (PDF or Word format); " +
	"only metadata is available for this analysis. Provide a general analysis " +
	"suitable for a hackathon participant."

// Analyzer turns a stored resume into a ResumeAnalysis via the generative
// language API. It never fails on malformed AI output, only on transport
// failure reaching the service.
type Analyzer struct {
	client     Client
	httpClient *http.Client
	maxBytes   int64
}

func NewAnalyzer(client Client, maxBytes int64) *Analyzer {
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	return &Analyzer{
		client: client,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxBytes: maxBytes,
	}
}

// AnalyzeResume fetches the resume at resumeURL, asks the AI service for
// structured skill data, and parses the free-form reply. The bool result is
// true when the analysis was derived from the AI response and false when the
// fixed placeholder was substituted. The only error returned is
// ErrServiceUnavailable (wrapped); parse problems degrade to the placeholder.
func (a *Analyzer) AnalyzeResume(ctx context.Context, resumeURL, userID string) (*model.ResumeAnalysis, bool, error) {
	resumeText := a.fetchResumeText(ctx, resumeURL)

	prompt := buildAnalysisPrompt(resumeText)

	reply, err := a.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, false, fmt.Errorf("analyze resume for user %s: %w", userID, err)
	}

	analysis, ok := parseAnalysis(reply)
	if !ok {
		slog.Warn("resume analysis fell back to placeholder", "user_id", userID)
		return model.PlaceholderAnalysis(), false, nil
	}
	return analysis, true, nil
}

// fetchResumeText downloads the resume and returns its text content, or the
// binary-document note when the object isn't text. Fetch failures also degrade
// to the note: analysis must always have something to work with.
func (a *Analyzer) fetchResumeText(ctx context.Context, resumeURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resumeURL, nil)
	if err != nil {
		return binaryDocumentNote
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		slog.Warn("failed to fetch resume", "url", resumeURL, "error", err)
		return binaryDocumentNote
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("resume fetch returned non-success status", "url", resumeURL, "status", resp.StatusCode)
		return binaryDocumentNote
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, a.maxBytes))
	if err != nil {
		return binaryDocumentNote
	}

	if !isTextContent(resp.Header.Get("Content-Type"), data) {
		return binaryDocumentNote
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return binaryDocumentNote
	}
	return text
}

// isTextContent decides whether the fetched bytes can be fed to the prompt as
// text. Declared text-like content types win; with no usable declaration the
// bytes themselves are sniffed.
func isTextContent(contentType string, data []byte) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil && mediaType != "" {
		switch {
		case strings.HasPrefix(mediaType, "text/"):
			return true
		case mediaType == "application/json", mediaType == "application/xml":
			return true
		case mediaType == "application/octet-stream":
			// Ambiguous; fall through to sniffing
		default:
			return false
		}
	}

	if !utf8.Valid(data) {
		return false
	}
	// Binary formats embed NUL bytes; real text doesn't
	for _, b := range data {
		if b == 0 {
			return false
		}
	}
	return true
}

func buildAnalysisPrompt(resumeText string) string {
	var b strings.Builder
	b.WriteString("You are a career assistant for hackathon participants.\n")
	b.WriteString("Analyze the following resume and return ONLY a JSON object with exactly these four keys:\n")
	b.WriteString(`{
  "skills": ["up to 15 short skill names"],
  "experienceLevel": "Beginner|Intermediate|Advanced",
  "suggestedRoles": ["short role names"],
  "improvementAreas": ["short, actionable suggestions"]
}`)
	b.WriteString("\n\nResume:\n")
	b.WriteString(resumeText)
	return b.String()
}

// parseAnalysis extracts a ResumeAnalysis from free-form AI output. Tries the
// first balanced JSON object, then the entire reply. Reports false when
// neither parses.
func parseAnalysis(reply string) (*model.ResumeAnalysis, bool) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, false
	}

	candidates := make([]string, 0, 2)
	if span, ok := ExtractJSONObject(reply); ok {
		candidates = append(candidates, span)
	}
	candidates = append(candidates, reply)

	for _, candidate := range candidates {
		var analysis model.ResumeAnalysis
		if err := json.Unmarshal([]byte(candidate), &analysis); err != nil {
			continue
		}
		normalizeAnalysis(&analysis)
		return &analysis, true
	}

	return nil, false
}

func normalizeAnalysis(analysis *model.ResumeAnalysis) {
	if analysis.Skills == nil {
		analysis.Skills = []string{}
	}
	if analysis.SuggestedRoles == nil {
		analysis.SuggestedRoles = []string{}
	}
	if analysis.ImprovementAreas == nil {
		analysis.ImprovementAreas = []string{}
	}
}
