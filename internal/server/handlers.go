package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalyzeRequest is the request body for the stateless analyze endpoint
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// ATSRequest is the request body for scoring a resume against a job.
// Exactly one of JobID or JobDescription should be set.
type ATSRequest struct {
	JobID          uuid.UUID `json:"job_id,omitempty"`
	JobDescription string    `json:"job_description,omitempty"`
}

// ATSResponse is the response body for an ATS scoring request
type ATSResponse struct {
	ResumeID uuid.UUID `json:"resume_id"`
	JobID    uuid.UUID `json:"job_id,omitempty"`
	ATSScore int       `json:"ats_score"`
}

// UpdateJobStatusRequest is the request body for changing a job's lifecycle status
type UpdateJobStatusRequest struct {
	Status string `json:"status"`
}

// SkillsGapResponse is the response for a single resume-versus-job analysis
type SkillsGapResponse struct {
	ResumeID       uuid.UUID                  `json:"resume_id"`
	Job            *types.Job                 `json:"job"`
	MatchScore     int                        `json:"match_score"`
	ATSScore       int                        `json:"ats_score"`
	MatchingSkills []string                   `json:"matching_skills"`
	MissingSkills  []string                   `json:"missing_skills"`
	LocationMatch  types.LocationMatchSummary `json:"location_match"`
	Suggestions    []SuggestionView           `json:"suggestions,omitempty"`
}

// SuggestionView is the API shape of a learning suggestion
type SuggestionView struct {
	Skill     string   `json:"skill"`
	Advice    string   `json:"advice"`
	Resources []string `json:"resources,omitempty"`
}

// handleAnalyze analyzes arbitrary resume text without storing anything
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	s.jsonResponse(w, http.StatusOK, matching.Analyze(req.Text))
}

// handleCreateResume stores a resume's plain text for the authenticated user
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resume, err := s.store.CreateResume(r.Context(), userID, req.FileName, req.RawText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

// handleListResumes lists the authenticated user's resumes
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	resumes, err := s.store.ListResumesByUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if resumes == nil {
		resumes = []types.Resume{}
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleGetResume returns a single resume owned by the authenticated user
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	resume := s.ownedResume(w, r, userID)
	if resume == nil {
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume deletes a resume owned by the authenticated user
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	resume := s.ownedResume(w, r, userID)
	if resume == nil {
		return
	}

	if err := s.store.DeleteResume(r.Context(), resume.ID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Resume deleted"})
}

// handleAnalyzeResume analyzes a stored resume and persists the snapshot.
// The ATS score saved here measures the resume's structure alone since no
// job description is involved yet.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	resume := s.ownedResume(w, r, userID)
	if resume == nil {
		return
	}

	analysis := matching.Analyze(resume.RawText)
	atsScore := ats.Score(resume.RawText, "")

	if err := s.store.SaveResumeAnalysis(r.Context(), resume.ID, analysis, atsScore); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume.Analysis = analysis
	resume.ATSScore = &atsScore
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleResumeATS scores a stored resume against a job description
func (s *Server) handleResumeATS(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	resume := s.ownedResume(w, r, userID)
	if resume == nil {
		return
	}

	var req ATSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	response := ATSResponse{ResumeID: resume.ID}

	jobDescription := req.JobDescription
	if req.JobID != uuid.Nil {
		job, err := s.store.GetJob(r.Context(), req.JobID)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		if job == nil {
			jobErr := &ErrJobNotFound{JobID: req.JobID}
			s.errorResponse(w, HTTPStatus(jobErr), jobErr.Error())
			return
		}
		jobDescription = job.Description
		response.JobID = job.ID
	}
	if jobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_id or job_description is required")
		return
	}

	response.ATSScore = ats.Score(resume.RawText, jobDescription)
	s.jsonResponse(w, http.StatusOK, response)
}

// handleRecommendations scores the resume against every active job posting
// and returns the filtered recommendation list
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	resume := s.ownedResume(w, r, userID)
	if resume == nil {
		return
	}

	jobs, err := s.store.ListActiveJobs(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	results, err := s.engine.Match(r.Context(), resume.RawText, jobs)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	recommendations := matching.Filter(results)
	if recommendations == nil {
		recommendations = []types.MatchResult{}
	}
	s.jsonResponse(w, http.StatusOK, recommendations)
}

// handleSkillsGap analyzes one resume against one job: match score, skill
// partition, and best-effort learning suggestions for the missing skills
func (s *Server) handleSkillsGap(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	resumeID, err := uuid.Parse(r.PathValue("resume_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}
	jobID, err := uuid.Parse(r.PathValue("job_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	resume, err := s.store.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if resume == nil {
		notFound := &ErrResumeNotFound{ResumeID: resumeID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	if resume.UserID != userID {
		forbidden := &ErrForbidden{}
		s.errorResponse(w, HTTPStatus(forbidden), forbidden.Error())
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if job == nil {
		notFound := &ErrJobNotFound{JobID: jobID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	results, err := s.engine.Match(r.Context(), resume.RawText, []types.Job{*job})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	result := results[0]

	response := SkillsGapResponse{
		ResumeID:       resume.ID,
		Job:            result.Job,
		MatchScore:     result.MatchScore,
		ATSScore:       result.ATSScore,
		MatchingSkills: result.MatchingSkills,
		MissingSkills:  result.MissingSkills,
		LocationMatch:  result.LocationMatch,
	}

	if len(result.MissingSkills) > 0 && s.suggester != nil {
		for _, sg := range s.suggester.ForMissingSkills(r.Context(), job.Title, result.MissingSkills) {
			response.Suggestions = append(response.Suggestions, SuggestionView{
				Skill:     sg.Skill,
				Advice:    sg.Advice,
				Resources: sg.Resources,
			})
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// ownedResume loads the resume named by the {id} path segment and enforces
// that it belongs to the authenticated user. On failure it writes the error
// response and returns nil.
func (s *Server) ownedResume(w http.ResponseWriter, r *http.Request, userID uuid.UUID) *types.Resume {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return nil
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil
	}
	if resume == nil {
		notFound := &ErrResumeNotFound{ResumeID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil
	}
	if resume.UserID != userID {
		forbidden := &ErrForbidden{}
		s.errorResponse(w, HTTPStatus(forbidden), forbidden.Error())
		return nil
	}
	return resume
}

// handleCreateJob creates a job posting. When the request carries a source
// URL but no description, the posting text is ingested from the URL.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if req.Description == "" && req.SourceURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either description or source_url is required")
		return
	}

	if req.Description == "" {
		text, err := s.ingest(r.Context(), req.SourceURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to ingest job posting: "+err.Error())
			return
		}
		req.Description = text
	}

	job, err := s.store.CreateJob(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, job)
}

// handleListJobs lists job postings with optional query filters
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	filters := db.JobFilters{
		Status:   r.URL.Query().Get("status"),
		Company:  r.URL.Query().Get("company"),
		Location: r.URL.Query().Get("location"),
	}

	jobs, err := s.store.ListJobs(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if jobs == nil {
		jobs = []types.Job{}
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleGetJob returns a single job posting
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if job == nil {
		notFound := &ErrJobNotFound{JobID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateJob updates a job posting
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	job, err := s.store.UpdateJob(r.Context(), id, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if job == nil {
		notFound := &ErrJobNotFound{JobID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateJobStatus changes a job posting's lifecycle status
func (s *Server) handleUpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req UpdateJobStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	switch req.Status {
	case types.JobStatusActive, types.JobStatusFilled, types.JobStatusExpired:
	default:
		s.errorResponse(w, http.StatusBadRequest, "status must be one of: active, filled, expired")
		return
	}

	if err := s.store.UpdateJobStatus(r.Context(), id, req.Status); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": req.Status})
}

// handleDeleteJob deletes a job posting
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := s.store.DeleteJob(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Job deleted"})
}

// handleGetMe returns the authenticated user's profile
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	user, err := s.userService.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}
