package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"

	"daycare/internal/service"
)

// fakeAPI serves the subset of the Tasks REST API the client uses.
type fakeAPI struct {
	lists   []map[string]string
	tasks   map[string][]map[string]string
	created []string
	patched []string
	status  int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.status != 0 {
		w.WriteHeader(f.status)
		io.WriteString(w, `{"error":{"code":401,"message":"denied"}}`)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/tasks/v1/")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case path == "users/@me/lists" && r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(map[string]any{"items": f.lists})

	case path == "users/@me/lists" && r.Method == http.MethodPost:
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		list := map[string]string{"id": "new-list", "title": body["title"]}
		f.lists = append(f.lists, list)
		json.NewEncoder(w).Encode(list)

	case strings.HasPrefix(path, "lists/"):
		parts := strings.Split(path, "/")
		listID := parts[1]
		switch {
		case len(parts) == 3 && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"items": f.tasks[listID]})
		case len(parts) == 3 && r.Method == http.MethodPost:
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			f.created = append(f.created, body["title"])
			json.NewEncoder(w).Encode(map[string]string{"id": "t-new", "title": body["title"]})
		case len(parts) == 4 && r.Method == http.MethodPatch:
			f.patched = append(f.patched, parts[3])
			json.NewEncoder(w).Encode(map[string]string{"id": parts[3], "status": "completed"})
		default:
			http.NotFound(w, r)
		}

	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c, err := NewWithHTTPClient(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("NewWithHTTPClient: %v", err)
	}
	return c
}

func TestResolveList(t *testing.T) {
	api := &fakeAPI{lists: []map[string]string{
		{"id": "L1", "title": "Mochi (daycare)"},
		{"id": "L2", "title": "Twin"},
		{"id": "L3", "title": "twin "},
	}}
	c := newTestClient(t, api)
	ctx := context.Background()

	list, err := c.ResolveList(ctx, "mochi (DAYCARE)")
	if err != nil {
		t.Fatalf("ResolveList: %v", err)
	}
	if list.ID != "L1" {
		t.Errorf("id = %q, want L1", list.ID)
	}

	if _, err := c.ResolveList(ctx, "Twin"); !errors.Is(err, service.ErrAmbiguousList) {
		t.Errorf("expected ErrAmbiguousList, got %v", err)
	}
	if _, err := c.ResolveList(ctx, "Nope"); !errors.Is(err, service.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestCreateListAndTasks(t *testing.T) {
	api := &fakeAPI{tasks: map[string][]map[string]string{
		"L1": {{"id": "t1", "title": "Feed", "status": "needsAction"}},
	}}
	c := newTestClient(t, api)
	ctx := context.Background()

	list, err := c.CreateList(ctx, "Mochi (daycare)")
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	if list.ID != "new-list" || list.Title != "Mochi (daycare)" {
		t.Errorf("unexpected list %+v", list)
	}

	open, err := c.ListOpenTasks(ctx, "L1", 1)
	if err != nil {
		t.Fatalf("ListOpenTasks: %v", err)
	}
	if len(open) != 1 || open[0].Title != "Feed" || open[0].Status != service.StatusNeedsAction {
		t.Errorf("unexpected tasks %+v", open)
	}

	if err := c.CreateTask(ctx, "L1", "Brush"); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := c.CompleteTask(ctx, "L1", "t1"); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if len(api.created) != 1 || api.created[0] != "Brush" {
		t.Errorf("created = %v", api.created)
	}
	if len(api.patched) != 1 || api.patched[0] != "t1" {
		t.Errorf("patched = %v", api.patched)
	}
}

func TestUnauthorizedMapsToErrAuth(t *testing.T) {
	c := newTestClient(t, &fakeAPI{status: http.StatusUnauthorized})

	_, err := c.ListOpenTasks(context.Background(), "L1", 1)
	if !errors.Is(err, ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}
}
