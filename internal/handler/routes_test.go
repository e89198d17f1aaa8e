package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/model"
	"schoolhub/pkg/ctxdata"
)

// ── helpers ─────────────────────────────────────────────────────────

// headerAuth trusts X-Test-User and X-Test-Role so routes can be exercised without tokens.
func headerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get("X-Test-User"))
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ctx := ctxdata.WithActor(r.Context(), ctxdata.Actor{UserID: id, Role: r.Header.Get("X-Test-Role")})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type routeRegistrar interface {
	RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

func newRouter(handlers ...routeRegistrar) chi.Router {
	r := chi.NewRouter()
	for _, h := range handlers {
		h.RegisterRoutes(r, headerAuth)
	}
	return r
}

func do(router http.Handler, r *http.Request, actor uuid.UUID, role model.Role) *httptest.ResponseRecorder {
	if actor != uuid.Nil {
		r.Header.Set("X-Test-User", actor.String())
		r.Header.Set("X-Test-Role", role.String())
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

// ── departments ─────────────────────────────────────────────────────

type fakeDepartments struct {
	DepartmentService
	getAllCalls int
	created     *model.CreateDepartmentInput
	head        uuid.UUID
}

func (f *fakeDepartments) GetAll(_ context.Context, params model.PageParams) (*model.Page[*model.Department], error) {
	f.getAllCalls++
	return model.NewPage([]*model.Department{{Name: "Math"}}, 1, params.Normalize()), nil
}

func (f *fakeDepartments) Create(_ context.Context, input *model.CreateDepartmentInput) (*model.Department, error) {
	f.created = input
	return &model.Department{Id: uuid.New(), Name: input.Name}, nil
}

func (f *fakeDepartments) IsTeacherHeadOfDepartment(_ context.Context, teacherId uuid.UUID) (bool, error) {
	return teacherId == f.head, nil
}

func TestDepartmentRoutes(t *testing.T) {
	svc := &fakeDepartments{}
	cache := newMemCache()
	router := newRouter(NewDepartmentHandler(svc, cache, time.Minute))
	admin := uuid.New()

	t.Run("unauthenticated", func(t *testing.T) {
		w := do(router, httptest.NewRequest(http.MethodGet, "/departments", nil), uuid.Nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("list is cached until a mutation", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			w := do(router, httptest.NewRequest(http.MethodGet, "/departments", nil), admin, model.RoleStudent)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Math")
		}
		assert.Equal(t, 1, svc.getAllCalls)

		w := do(router, httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Physics"}`)), admin, model.RoleAdmin)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Physics", svc.created.Name)

		do(router, httptest.NewRequest(http.MethodGet, "/departments", nil), admin, model.RoleAdmin)
		assert.Equal(t, 2, svc.getAllCalls)
	})

	t.Run("head of department probe", func(t *testing.T) {
		svc.head = uuid.New()
		w := do(router, httptest.NewRequest(http.MethodGet, "/departments/heads/"+svc.head.String(), nil), admin, model.RoleAdmin)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"isHeadOfDepartment":true}`, w.Body.String())
	})

	t.Run("create requires admin", func(t *testing.T) {
		w := do(router, httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"X"}`)), uuid.New(), model.RoleTeacher)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// ── batches ─────────────────────────────────────────────────────────

type fakeBatches struct {
	BatchService
	courseId, teacherId, id uuid.UUID
}

func (f *fakeBatches) Create(_ context.Context, courseId, teacherId uuid.UUID, input *model.CreateBatchInput) (*model.Batch, error) {
	f.courseId, f.teacherId = courseId, teacherId
	return &model.Batch{Id: uuid.New(), CourseId: courseId, TeacherId: teacherId, Name: input.Name}, nil
}

func (f *fakeBatches) Deactivate(_ context.Context, courseId, teacherId, id uuid.UUID) (*model.Batch, error) {
	f.courseId, f.teacherId, f.id = courseId, teacherId, id
	return &model.Batch{Id: id, CourseId: courseId, TeacherId: teacherId}, nil
}

func TestBatchRoutes(t *testing.T) {
	svc := &fakeBatches{}
	router := newRouter(NewBatchHandler(svc))
	teacher := uuid.New()
	courseId := uuid.New()

	t.Run("create uses the caller as teacher", func(t *testing.T) {
		body := `{"name":"A","semester":"Fall","startDate":"2025-09-01T00:00:00Z","endDate":"2025-12-20T00:00:00Z"}`
		w := do(router, httptest.NewRequest(http.MethodPost, "/courses/"+courseId.String()+"/batches", strings.NewReader(body)), teacher, model.RoleTeacher)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, courseId, svc.courseId)
		assert.Equal(t, teacher, svc.teacherId)
	})

	t.Run("deactivate", func(t *testing.T) {
		id := uuid.New()
		w := do(router, httptest.NewRequest(http.MethodPatch, "/courses/"+courseId.String()+"/batches/"+id.String()+"/deactivate", nil), teacher, model.RoleTeacher)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, svc.id)
	})

	t.Run("admin cannot mutate", func(t *testing.T) {
		w := do(router, httptest.NewRequest(http.MethodPost, "/courses/"+courseId.String()+"/batches", strings.NewReader(`{}`)), uuid.New(), model.RoleAdmin)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("malformed course id", func(t *testing.T) {
		w := do(router, httptest.NewRequest(http.MethodPost, "/courses/abc/batches", strings.NewReader(`{}`)), teacher, model.RoleTeacher)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// ── submissions ─────────────────────────────────────────────────────

type fakeSubmissions struct {
	SubmissionService
	file      *model.File
	studentId uuid.UUID
}

func (f *fakeSubmissions) Submit(_ context.Context, assignmentId, studentId uuid.UUID, file *model.File) (*model.Submission, error) {
	f.file, f.studentId = file, studentId
	return &model.Submission{Id: uuid.New(), AssignmentId: assignmentId, StudentId: studentId}, nil
}

func (f *fakeSubmissions) CheckForSubmission(_ context.Context, _, studentId uuid.UUID) (bool, error) {
	return studentId == f.studentId, nil
}

func multipartBody(t *testing.T, field, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestSubmissionRoutes(t *testing.T) {
	svc := &fakeSubmissions{}
	router := newRouter(NewSubmissionHandler(svc, 1<<20))
	student := uuid.New()
	base := "/assignments/" + uuid.New().String() + "/submissions"

	t.Run("upload", func(t *testing.T) {
		body, contentType := multipartBody(t, "file", "essay.pdf", []byte("%PDF-1.4"))
		r := httptest.NewRequest(http.MethodPost, base, body)
		r.Header.Set("Content-Type", contentType)

		w := do(router, r, student, model.RoleStudent)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, student, svc.studentId)
		assert.Equal(t, "essay.pdf", svc.file.Name)
		assert.Equal(t, []byte("%PDF-1.4"), svc.file.Content)
		assert.EqualValues(t, 8, svc.file.Size)
	})

	t.Run("missing file field", func(t *testing.T) {
		body, contentType := multipartBody(t, "other", "essay.pdf", []byte("x"))
		r := httptest.NewRequest(http.MethodPost, base, body)
		r.Header.Set("Content-Type", contentType)

		w := do(router, r, student, model.RoleStudent)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("check", func(t *testing.T) {
		w := do(router, httptest.NewRequest(http.MethodGet, base+"/check", nil), student, model.RoleStudent)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"submitted":true}`, w.Body.String())
	})

	t.Run("teacher cannot submit", func(t *testing.T) {
		w := do(router, httptest.NewRequest(http.MethodPost, base, nil), uuid.New(), model.RoleTeacher)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// ── notifications ───────────────────────────────────────────────────

type fakeNotifications struct {
	NotificationService
	role   model.Role
	userId uuid.UUID
}

func (f *fakeNotifications) GetForUser(_ context.Context, role model.Role, userId uuid.UUID, params model.PageParams) (*model.Page[*model.Notification], error) {
	f.role, f.userId = role, userId
	return model.NewPage[*model.Notification](nil, 0, params.Normalize()), nil
}

func TestNotificationRoutes(t *testing.T) {
	svc := &fakeNotifications{}
	router := newRouter(NewNotificationHandler(svc))
	student := uuid.New()

	w := do(router, httptest.NewRequest(http.MethodGet, "/notifications?pageSize=5", nil), student, model.RoleStudent)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Equal(t, model.RoleStudent, svc.role)
	assert.Equal(t, student, svc.userId)

	w = do(router, httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(`{}`)), student, model.RoleStudent)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// ── auth ────────────────────────────────────────────────────────────

type fakeAuth struct {
	AuthService
	refresh *model.RefreshTokenInput
}

func (f *fakeAuth) RefreshToken(_ context.Context, input *model.RefreshTokenInput) (*model.TokenPair, error) {
	f.refresh = input
	return &model.TokenPair{AccessToken: "new"}, nil
}

func TestAuthRefreshTokenFromHeader(t *testing.T) {
	svc := &fakeAuth{}
	router := newRouter(NewAuthHandler(svc))

	r := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", strings.NewReader(`{"refreshToken":"r1"}`))
	r.Header.Set("Authorization", "Bearer expired-access")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "expired-access", svc.refresh.AccessToken)
	assert.Equal(t, "r1", svc.refresh.RefreshToken)
}
