package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/types"
)

// handleMatch scores a single candidate against a single job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &matching.InvalidInputError{Message: "invalid JSON body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &matching.InvalidInputError{Message: err.Error()})
		return
	}

	result, err := s.orchestrator.Match(r.Context(), req.JobID, req.CandidateID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRankCandidates ranks all candidates for a job.
func (s *Server) handleRankCandidates(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	results, err := s.orchestrator.RankCandidates(r.Context(), jobID, limit)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":  jobID,
		"results": results,
	})
}

// handleRankJobs ranks all jobs for a candidate.
func (s *Server) handleRankJobs(w http.ResponseWriter, r *http.Request) {
	candidateID := r.PathValue("id")
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	results, err := s.orchestrator.RankJobs(r.Context(), candidateID, limit)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate_id": candidateID,
		"results":      results,
	})
}

// handleResolveSkill normalizes a skill term against the catalog.
func (s *Server) handleResolveSkill(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	if term == "" {
		s.errorResponse(w, &matching.InvalidInputError{Message: "query parameter 'term' is required"})
		return
	}

	response := map[string]any{
		"term":       term,
		"normalized": s.resolver.Normalize(term),
	}
	if id, ok := s.resolver.ResolveID(term); ok {
		response["skill_id"] = id
		if skill, found := s.resolver.Skill(id); found {
			response["skill"] = skill
		}
	}
	s.jsonResponse(w, http.StatusOK, response)
}

// handleExtractSkills extracts known skills from free text.
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &matching.InvalidInputError{Message: "invalid JSON body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &matching.InvalidInputError{Message: err.Error()})
		return
	}

	s.jsonResponse(w, http.StatusOK, s.resolver.ExtractSkillsFromText(req.Text))
}

// handleListJobs returns all known jobs.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.provider.ListJobs(r.Context())
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleListCandidates returns all known candidates.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.provider.ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}

// parseLimit reads an optional result cap from a query parameter.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, &matching.InvalidInputError{Message: "query parameter 'limit' must be a non-negative integer"}
	}
	return limit, nil
}
