package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oreum-app/oreum"
	"github.com/oreum-app/oreum/gateway"
	oreumhttp "github.com/oreum-app/oreum/http"
	oreumjson "github.com/oreum-app/oreum/json"
	"github.com/oreum-app/oreum/mock"
	"github.com/oreum-app/oreum/secret"
	"github.com/oreum-app/oreum/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validKey = "valid-key"

// fixture wires a Server to a fake model service that accepts validKey.
type fixture struct {
	handler http.Handler
	gateway *gateway.Gateway
	secrets *secret.Store
	clock   *clock

	mu       sync.Mutex
	generate func(req oreum.GenerateRequest) (string, error)
	send     func(text string) (string, error)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock: &clock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		generate: func(req oreum.GenerateRequest) (string, error) {
			return "괜찮아요", nil
		},
		send: func(text string) (string, error) { return "들어줄게요", nil },
	}
	connect := func(_ context.Context, credential string) (oreum.Model, error) {
		if credential != validKey {
			return &mock.Model{
				GenerateFn: func(context.Context, oreum.GenerateRequest) (string, error) {
					return "", errors.New("API key not valid")
				},
			}, nil
		}
		return &mock.Model{
			GenerateFn: func(_ context.Context, req oreum.GenerateRequest) (string, error) {
				f.mu.Lock()
				fn := f.generate
				f.mu.Unlock()
				return fn(req)
			},
			NewChatFn: func(context.Context, string) (oreum.Chat, error) {
				return &mock.Chat{SendFn: func(_ context.Context, text string) (string, error) {
					f.mu.Lock()
					fn := f.send
					f.mu.Unlock()
					return fn(text)
				}}, nil
			},
		}, nil
	}

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "oreum.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f.gateway = gateway.New(connect, gateway.WithClock(f.clock.Now))
	f.secrets = secret.New(oreumjson.New(filepath.Join(t.TempDir(), "storage.json")))
	srv := oreumhttp.NewServer(f.gateway, f.secrets, db, oreumhttp.WithClock(f.clock.Now))
	f.handler = srv.Handler()
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func (f *fixture) configure(t *testing.T) {
	t.Helper()
	w := f.do(t, http.MethodPut, "/api/settings/key", map[string]string{"apiKey": validKey})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSettingsKey(t *testing.T) {
	t.Parallel()

	t.Run("starts unconfigured", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodGet, "/api/settings/key", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decodeBody[map[string]bool](t, w)["configured"])
	})

	t.Run("valid key is saved and bound", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.configure(t)

		assert.True(t, f.gateway.Configured())
		got, ok := f.secrets.Load()
		require.True(t, ok)
		assert.Equal(t, validKey, got)

		w := f.do(t, http.MethodGet, "/api/settings/key", nil)
		assert.True(t, decodeBody[map[string]bool](t, w)["configured"])
	})

	t.Run("invalid key is rejected and not saved", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodPut, "/api/settings/key", map[string]string{"apiKey": "wrong"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody[map[string]string](t, w)["error"], "연결 실패")
		assert.False(t, f.gateway.Configured())
		_, ok := f.secrets.Load()
		assert.False(t, ok)
	})

	t.Run("blank key", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodPut, "/api/settings/key", map[string]string{"apiKey": "  "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "API Key를 입력해주세요.", decodeBody[map[string]string](t, w)["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		req := httptest.NewRequest(http.MethodPut, "/api/settings/key", strings.NewReader("{"))
		w := httptest.NewRecorder()
		f.handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("clear removes and unbinds", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.configure(t)

		w := f.do(t, http.MethodDelete, "/api/settings/key", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.False(t, f.gateway.Configured())
		_, ok := f.secrets.Load()
		assert.False(t, ok)
	})
}

func TestChat(t *testing.T) {
	t.Parallel()

	t.Run("send returns the model turn and extends history", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.configure(t)

		w := f.do(t, http.MethodPost, "/api/chat", map[string]string{"message": "안녕"})
		require.Equal(t, http.StatusOK, w.Code)
		msg := decodeBody[oreum.ChatMessage](t, w)
		assert.Equal(t, oreum.RoleModel, msg.Role)
		assert.Equal(t, "들어줄게요", msg.Text)

		w = f.do(t, http.MethodGet, "/api/chat", nil)
		history := decodeBody[[]oreum.ChatMessage](t, w)
		require.Len(t, history, 3)
		assert.Equal(t, "welcome", history[0].ID)
		assert.Equal(t, "안녕", history[1].Text)
		assert.Equal(t, msg.ID, history[2].ID)
	})

	t.Run("unconfigured returns the fallback with 200", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodPost, "/api/chat", map[string]string{"message": "안녕"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, oreum.ChatFallback, decodeBody[oreum.ChatMessage](t, w).Text)
	})

	t.Run("empty message", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodPost, "/api/chat", map[string]string{"message": " "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("message length counts graphemes", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.configure(t)

		// 2000 Hangul syllables are 6000 bytes but within the limit.
		w := f.do(t, http.MethodPost, "/api/chat", map[string]string{"message": strings.Repeat("가", 2000)})
		assert.Equal(t, http.StatusOK, w.Code)

		w = f.do(t, http.MethodPost, "/api/chat", map[string]string{"message": strings.Repeat("가", 2001)})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTasks(t *testing.T) {
	t.Parallel()

	t.Run("generate replaces the batch", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.configure(t)
		var prompt string
		f.mu.Lock()
		f.generate = func(req oreum.GenerateRequest) (string, error) {
			prompt = req.Prompt
			return `[{"title":"물 마시기","description":"한 잔","difficulty":"easy"}]`, nil
		}
		f.mu.Unlock()

		w := f.do(t, http.MethodPost, "/api/tasks", map[string]string{})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[struct {
			Tasks    []oreum.Task `json:"tasks"`
			Progress int          `json:"progress"`
		}](t, w)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "물 마시기", resp.Tasks[0].Title)
		assert.Contains(t, prompt, "'무기력함'")

		w = f.do(t, http.MethodGet, "/api/tasks", nil)
		assert.Contains(t, w.Body.String(), "물 마시기")
	})

	t.Run("unconfigured yields the fallback batch", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodPost, "/api/tasks", map[string]string{"mood": "불안함"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "창문 열고 환기하기")
	})

	t.Run("toggle updates progress and streak", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.do(t, http.MethodPost, "/api/tasks", map[string]string{})

		w := f.do(t, http.MethodPost, "/api/tasks/def-1/toggle", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeBody[oreum.Task](t, w).IsCompleted)

		w = f.do(t, http.MethodGet, "/api/tasks", nil)
		assert.Contains(t, w.Body.String(), `"progress":33`)

		w = f.do(t, http.MethodGet, "/api/profile", nil)
		p := decodeBody[oreum.UserProfile](t, w)
		assert.Equal(t, 1, p.Streak)
		assert.Equal(t, "여행자", p.Name)
	})

	t.Run("list offers the mood menu", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodGet, "/api/tasks", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[struct {
			Tasks []oreum.Task `json:"tasks"`
			Moods []string     `json:"moods"`
		}](t, w)
		assert.Empty(t, resp.Tasks)
		assert.Equal(t, []string{"무기력함", "불안함", "평범함", "의욕 조금 있음", "상쾌함"}, resp.Moods)
	})

	t.Run("toggle unknown task", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodPost, "/api/tasks/missing/toggle", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestJournal(t *testing.T) {
	t.Parallel()

	t.Run("create stores entry with feedback", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.configure(t)

		w := f.do(t, http.MethodPost, "/api/journal", map[string]string{"text": "  오늘은 산책을 했다  "})
		require.Equal(t, http.StatusCreated, w.Code)
		e := decodeBody[oreum.JournalEntry](t, w)
		assert.NotZero(t, e.ID)
		assert.Equal(t, "오늘은 산책을 했다", e.Text)
		assert.Equal(t, "괜찮아요", e.Feedback)

		w = f.do(t, http.MethodGet, "/api/journal", nil)
		entries := decodeBody[[]oreum.JournalEntry](t, w)
		require.Len(t, entries, 1)
		assert.Equal(t, e.ID, entries[0].ID)
	})

	t.Run("failure still stores the fallback feedback", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodPost, "/api/journal", map[string]string{"text": "답답해"})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, oreum.SentimentFallback, decodeBody[oreum.JournalEntry](t, w).Feedback)
	})

	t.Run("empty entry", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodPost, "/api/journal", map[string]string{"text": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodGet, "/api/journal?limit=5", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodGet, "/api/journal?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFocus(t *testing.T) {
	t.Parallel()

	type focusState struct {
		Mode             string `json:"mode"`
		Running          bool   `json:"running"`
		RemainingSeconds int    `json:"remainingSeconds"`
		Presets          []int  `json:"presets"`
	}

	t.Run("completed focus period is credited to the profile", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		w := f.do(t, http.MethodPut, "/api/focus/duration", map[string]int{"minutes": 10})
		require.Equal(t, http.StatusOK, w.Code)
		st := decodeBody[focusState](t, w)
		assert.Equal(t, 600, st.RemainingSeconds)
		assert.Equal(t, []int{10, 25, 50}, st.Presets)

		w = f.do(t, http.MethodPost, "/api/focus/toggle", nil)
		assert.True(t, decodeBody[focusState](t, w).Running)

		f.clock.Advance(10 * time.Minute)
		w = f.do(t, http.MethodGet, "/api/focus", nil)
		st = decodeBody[focusState](t, w)
		assert.Equal(t, "break", st.Mode)
		assert.False(t, st.Running)

		w = f.do(t, http.MethodGet, "/api/profile", nil)
		assert.Equal(t, 10, decodeBody[oreum.UserProfile](t, w).TotalFocusMinutes)
	})

	t.Run("profile credits a period that ran out unobserved", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.do(t, http.MethodPost, "/api/focus/toggle", nil)
		f.clock.Advance(26 * time.Minute)

		w := f.do(t, http.MethodGet, "/api/profile", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 25, decodeBody[oreum.UserProfile](t, w).TotalFocusMinutes)
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.do(t, http.MethodPost, "/api/focus/toggle", nil)
		f.clock.Advance(time.Minute)

		w := f.do(t, http.MethodPost, "/api/focus/reset", nil)
		st := decodeBody[focusState](t, w)
		assert.False(t, st.Running)
		assert.Equal(t, 25*60, st.RemainingSeconds)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		w := f.do(t, http.MethodPut, "/api/focus/duration", map[string]int{"minutes": 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCORS(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
