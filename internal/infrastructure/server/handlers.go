package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"ops-assistant/internal/domain/entity"

	"github.com/google/uuid"
)

type TaskRequest struct {
	Task string `json:"task"`
}

type TaskResponse struct {
	Task    string                 `json:"task"`
	Status  entity.TaskStatus      `json:"status"`
	Summary string                 `json:"summary"`
	Data    map[string]interface{} `json:"data"`
	Errors  []string               `json:"errors"`
	Plan    *PlanInfo              `json:"plan,omitempty"`
}

type PlanInfo struct {
	TaskSummary    string         `json:"task_summary"`
	Steps          []PlanStepInfo `json:"steps"`
	ExpectedOutput string         `json:"expected_output"`
}

type PlanStepInfo struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
	Tool        string `json:"tool"`
}

type ToolInfo struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Ops Assistant",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": map[string]string{
			"POST /task":  "Submit a natural language task",
			"GET /tools":  "List available tools",
			"GET /health": "Health check",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"llm_ready":      s.llm != nil,
		"tools_count":    len(s.tools.All()),
		"pipeline_ready": s.runner != nil,
	})
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	definitions := s.tools.Definitions()
	tools := make([]ToolInfo, 0, len(definitions))
	for _, def := range definitions {
		tools = append(tools, ToolInfo{
			Name:        def.Name.String(),
			Description: def.Description,
			Parameters:  def.Parameters,
		})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"tools": tools})
}

// handleTask runs one task through the pipeline. A fatal pipeline error
// (unparseable plan, model failure) yields a 500 with no partial body;
// step-level failures come back itemized inside a 200 response.
func (s *Server) handleTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Task) == "" {
		respondError(w, http.StatusBadRequest, "task must not be empty")
		return
	}

	taskID := uuid.NewString()
	log := s.logger.WithField("task_id", taskID)
	log.Info("Task accepted", "task", req.Task)

	report, err := s.runner.Run(r.Context(), req.Task)
	if err != nil {
		log.Error("Task failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Task execution failed: "+err.Error())
		return
	}

	log.Info("Task completed", "status", report.Response.Status)
	respondJSON(w, http.StatusOK, TaskResponse{
		Task:    report.Response.Task,
		Status:  report.Response.Status,
		Summary: report.Response.Summary,
		Data:    report.Response.Data,
		Errors:  report.Response.Errors,
		Plan:    planInfo(report.Plan),
	})
}

func planInfo(plan *entity.ExecutionPlan) *PlanInfo {
	if plan == nil {
		return nil
	}
	steps := make([]PlanStepInfo, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		steps = append(steps, PlanStepInfo{
			Step:        step.StepNumber,
			Description: step.Description,
			Tool:        step.Tool.String(),
		})
	}
	return &PlanInfo{
		TaskSummary:    plan.TaskSummary,
		Steps:          steps,
		ExpectedOutput: plan.ExpectedOutput,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
