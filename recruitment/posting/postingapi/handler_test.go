package postingapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/recruitboard/internal/httpx"
	"github.com/Abraxas-365/recruitboard/pkg/iam/auth"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/Abraxas-365/recruitboard/recruitment/posting/postingapi"
	"github.com/Abraxas-365/recruitboard/recruitment/posting/postingsrv"
)

type memoryRepo struct {
	items []posting.Posting
}

func (m *memoryRepo) Create(_ context.Context, p *posting.Posting) error {
	m.items = append(m.items, *p)
	return nil
}

func (m *memoryRepo) Update(_ context.Context, id kernel.PostingID, p *posting.Posting) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i] = *p
			return nil
		}
	}
	return posting.ErrPostingNotFound()
}

func (m *memoryRepo) GetByID(_ context.Context, id kernel.PostingID) (*posting.Posting, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			p := m.items[i]
			return &p, nil
		}
	}
	return nil, posting.ErrPostingNotFound()
}

func (m *memoryRepo) Delete(_ context.Context, id kernel.PostingID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return posting.ErrPostingNotFound()
}

func (m *memoryRepo) List(_ context.Context) ([]posting.Posting, error) {
	return append([]posting.Posting(nil), m.items...), nil
}

func (m *memoryRepo) ListPaginated(_ context.Context, opts kernel.PaginationOptions) (*kernel.Paginated[posting.Posting], error) {
	page := kernel.NewPaginated(m.items, opts, len(m.items))
	return &page, nil
}

func setup(t *testing.T, scopes ...string) (*memoryRepo, func(method, path, body string) *http.Response) {
	t.Helper()
	repo := &memoryRepo{}
	tokens := auth.NewJWTService("secret", time.Hour, "recruitboard")
	token, _, err := tokens.GenerateAccessToken("u-1", "op@corp.kr", scopes)
	if err != nil {
		t.Fatal(err)
	}

	app := httpx.NewApp("test")
	postingapi.RegisterRoutes(app, postingapi.NewHandlers(postingsrv.NewPostingService(repo)), auth.NewTokenMiddleware(tokens, nil))

	do := func(method, path, body string) *http.Response {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}
	return repo, do
}

func TestCreateAndGetPosting(t *testing.T) {
	repo, do := setup(t, auth.ScopePostingsAll)

	resp := do(http.MethodPost, "/api/postings", `{"site":"사람인","position":"SALES","title":"영업 신입","start_date":"2024-05-01"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var created posting.PostingResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.Site != kernel.SiteSaramin || created.SiteLabel != "사람인" || created.Status != posting.PostingStatusOpen {
		t.Errorf("created = %+v", created)
	}
	if len(repo.items) != 1 {
		t.Fatalf("repo has %d items", len(repo.items))
	}

	resp = do(http.MethodGet, "/api/postings/"+created.ID.String(), "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("get status = %d", resp.StatusCode)
	}
}

func TestCreatePostingValidation(t *testing.T) {
	_, do := setup(t, auth.ScopePostingsWrite)

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"site":"SARAMIN","position":"SALES"}`},
		{"unknown site", `{"site":"WANTED","position":"SALES","title":"x"}`},
		{"bad date", `{"site":"SARAMIN","position":"SALES","title":"x","start_date":"05/01/2024"}`},
		{"inverted period", `{"site":"SARAMIN","position":"SALES","title":"x","start_date":"2024-05-10","end_date":"2024-05-01"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if resp := do(http.MethodPost, "/api/postings", tc.body); resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestPostingScopes(t *testing.T) {
	_, do := setup(t, auth.ScopePostingsRead)

	if resp := do(http.MethodGet, "/api/postings", ""); resp.StatusCode != http.StatusOK {
		t.Errorf("list status = %d", resp.StatusCode)
	}
	if resp := do(http.MethodPost, "/api/postings", `{}`); resp.StatusCode != http.StatusForbidden {
		t.Errorf("create status = %d, want 403", resp.StatusCode)
	}
}

func TestDeleteMissingPosting(t *testing.T) {
	_, do := setup(t, auth.ScopeAll)
	if resp := do(http.MethodDelete, "/api/postings/nope", ""); resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
