package types

// LocationDistance buckets for resume-to-job proximity.
const (
	DistanceLocal         = "local"
	DistanceRegional      = "regional"
	DistanceNational      = "national"
	DistanceInternational = "international"
	DistanceRemote        = "remote"
)

// LocationInfo is a best-guess location extracted from resume text.
// Confidence is in [0,1]; zero means nothing was found.
type LocationInfo struct {
	City         string  `json:"city,omitempty"`
	State        string  `json:"state,omitempty"`
	Country      string  `json:"country,omitempty"`
	FullLocation string  `json:"full_location,omitempty"`
	Confidence   float64 `json:"confidence"`
}

// LocationMatch classifies the proximity between a resume location and a
// job's free-text location. Similarity is in [0,1].
type LocationMatch struct {
	Similarity float64 `json:"similarity"`
	Distance   string  `json:"distance"`
}

// LocationMatchSummary is the API-facing view of a LocationMatch, with the
// similarity expressed as a 0-100 percentage and the applied score bonus.
type LocationMatchSummary struct {
	Similarity int    `json:"similarity"`
	Distance   string `json:"distance"`
	Bonus      int    `json:"bonus"`
}

// MatchResult is one scored (resume, job) pair. MatchScore and ATSScore are
// integers in [0,100]. MatchingSkills and MissingSkills partition the job's
// required skills exactly.
type MatchResult struct {
	Job            *Job                 `json:"job"`
	MatchScore     int                  `json:"match_score"`
	MatchingSkills []string             `json:"matching_skills"`
	MissingSkills  []string             `json:"missing_skills"`
	ATSScore       int                  `json:"ats_score"`
	LocationMatch  LocationMatchSummary `json:"location_match"`
}

// ResumeAnalysis is the output of analyzing a resume on its own: extracted
// skills, top free-text keywords and the resolved location.
type ResumeAnalysis struct {
	Skills   []string     `json:"skills"`
	Keywords []string     `json:"keywords"`
	Location LocationInfo `json:"location"`
}
