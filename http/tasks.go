package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oreum-app/oreum"
)

type tasksRequest struct {
	Mood string `json:"mood"`
}

type tasksResponse struct {
	Tasks    []oreum.Task `json:"tasks"`
	Progress int          `json:"progress"`
	Moods    []string     `json:"moods"`
}

func (s *Server) tasksResponse() tasksResponse {
	return tasksResponse{
		Tasks:    s.tasks.Tasks(),
		Progress: s.tasks.Progress(),
		Moods:    oreum.Moods,
	}
}

func (s *Server) handleTasksList(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, s.tasksResponse())
}

// handleTasksGenerate replaces the current batch with a freshly generated
// one. An empty mood uses the default.
func (s *Server) handleTasksGenerate(w http.ResponseWriter, r *http.Request) {
	var req tasksRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	mood := strings.TrimSpace(req.Mood)
	if mood == "" {
		mood = oreum.DefaultMood
	}
	if err := checkLength("mood", mood, maxMoodLength); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.tasks.Replace(s.gateway.GenerateDailyTasks(r.Context(), mood))
	JSON(w, http.StatusOK, s.tasksResponse())
}

func (s *Server) handleTaskToggle(w http.ResponseWriter, r *http.Request) {
	task, err := s.tasks.Toggle(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if task.IsCompleted {
		s.mu.Lock()
		s.profile.MarkActive(s.now())
		s.mu.Unlock()
	}
	JSON(w, http.StatusOK, task)
}
