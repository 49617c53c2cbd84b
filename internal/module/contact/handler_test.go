package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/intiprima/backoffice/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubService struct {
	submission *domain.ContactSubmission
	page       *domain.PageResult[domain.ContactSubmission]
	err        error

	created *CreateContactRequest
}

func (s *stubService) Create(ctx context.Context, in CreateContactRequest) (*domain.ContactSubmission, error) {
	s.created = &in
	return s.submission, s.err
}

func (s *stubService) Get(ctx context.Context, id uint) (*domain.ContactSubmission, error) {
	return s.submission, s.err
}

func (s *stubService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.ContactSubmission], error) {
	return s.page, s.err
}

func (s *stubService) Delete(ctx context.Context, id uint) error {
	return s.err
}

func newTestRouter(svc Service) *gin.Engine {
	r := gin.New()
	public := r.Group("/api/v1")
	staff := r.Group("/api/v1")
	NewModule(NewHandler(svc)).RegisterRoutes(public, staff)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validSubmission = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "+62 21 555 0100",
	"subject": "Quote request",
	"message": "Please send pricing for the fiber laser series."
}`

func TestHandler_Create(t *testing.T) {
	svc := &stubService{submission: &domain.ContactSubmission{Name: "Jane Doe"}}
	r := newTestRouter(svc)

	w := postJSON(t, r, "/api/v1/contact-forms", validSubmission)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if svc.created == nil {
		t.Fatal("service never received the submission")
	}
	if svc.created.Email != "jane@example.com" {
		t.Errorf("Email = %q, want bound value", svc.created.Email)
	}
}

func TestHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantIssue string
	}{
		{"missing name", `{"email":"a@b.com","subject":"s","message":"m"}`, "name"},
		{"bad email", `{"name":"x","email":"not-an-email","subject":"s","message":"m"}`, "email"},
		{"missing subject", `{"name":"x","email":"a@b.com","message":"m"}`, "subject"},
		{"missing message", `{"name":"x","email":"a@b.com","subject":"s"}`, "message"},
		{
			name:      "message over 2000 chars",
			body:      `{"name":"x","email":"a@b.com","subject":"s","message":"` + strings.Repeat("a", 2001) + `"}`,
			wantIssue: "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubService{})
			w := postJSON(t, r, "/api/v1/contact-forms", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}

			var resp struct {
				Issues map[string]string `json:"issues"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if _, ok := resp.Issues[tt.wantIssue]; !ok {
				t.Errorf("issues = %v, want %q entry", resp.Issues, tt.wantIssue)
			}
		})
	}
}

func TestHandler_MessageAtLimitAccepted(t *testing.T) {
	svc := &stubService{submission: &domain.ContactSubmission{}}
	r := newTestRouter(svc)

	body := `{"name":"x","email":"a@b.com","subject":"s","message":"` + strings.Repeat("a", 2000) + `"}`
	w := postJSON(t, r, "/api/v1/contact-forms", body)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d for message exactly at the limit", w.Code, http.StatusCreated)
	}
}

func TestHandler_NoUpdateRoute(t *testing.T) {
	r := newTestRouter(&stubService{})

	req := httptest.NewRequest("PUT", "/api/v1/contact-forms/1", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d (submissions are immutable)", w.Code, http.StatusNotFound)
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	r := newTestRouter(&stubService{err: domain.ErrNotFound})

	req := httptest.NewRequest("DELETE", "/api/v1/contact-forms/5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
