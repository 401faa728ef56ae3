package model

// ResumeAnalysis is the structured skill data derived from a resume.
// It is recomputed on every analysis call and never persisted.
type ResumeAnalysis struct {
	Skills           []string `json:"skills"`
	ExperienceLevel  string   `json:"experienceLevel"`
	SuggestedRoles   []string `json:"suggestedRoles"`
	ImprovementAreas []string `json:"improvementAreas"`
}

// PlaceholderAnalysis is returned whenever no structured result could be
// extracted from the AI response. Callers must always receive some analysis,
// never a parse error.
func PlaceholderAnalysis() *ResumeAnalysis {
	return &ResumeAnalysis{
		Skills:           []string{},
		ExperienceLevel:  "Unknown",
		SuggestedRoles:   []string{},
		ImprovementAreas: []string{"Automatic analysis unavailable. Try re-uploading your CV."},
	}
}
