package mirror_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"daycare/internal/mirror"
	"daycare/internal/service"
	"daycare/internal/task"
	"daycare/internal/testutil"
)

func checklist(items ...string) []task.Task {
	// items alternate description, "0"/"1"
	var tasks []task.Task
	for i := 0; i < len(items); i += 2 {
		status := task.Incomplete
		if items[i+1] == "1" {
			status = task.Complete
		}
		tasks = append(tasks, task.Task{PetID: "00001", ID: fmt.Sprint(10000 + i), Description: items[i], Status: status})
	}
	return tasks
}

func TestSync_CreatesListAndOpenTasks(t *testing.T) {
	svc := testutil.NewFakeService()

	res, err := mirror.Sync(context.Background(), svc, "Mochi", checklist("Feed", "0", "Brush", "1", "Play", "0"))
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if res.List.Title != "Mochi (daycare)" {
		t.Errorf("list title = %q", res.List.Title)
	}
	if res.Created != 2 || res.Completed != 0 || res.Unchanged != 1 {
		t.Errorf("unexpected result %+v", res)
	}

	remote := svc.Tasks(res.List.ID)
	if len(remote) != 2 || remote[0].Title != "Feed" || remote[1].Title != "Play" {
		t.Errorf("remote tasks = %+v", remote)
	}
}

func TestSync_CompletesMatchingOpenTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("L1", "mochi (daycare)")
	svc.AddTask("L1", "r1", "feed")
	svc.AddTask("L1", "r2", "Brush")
	svc.AddTask("L1", "r3", "Vet visit")

	res, err := mirror.Sync(context.Background(), svc, "Mochi", checklist("Feed", "1", "Brush", "0"))
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if res.Created != 0 || res.Completed != 1 || res.Unchanged != 1 {
		t.Errorf("unexpected result %+v", res)
	}

	status := map[string]string{}
	for _, rt := range svc.Tasks("L1") {
		status[rt.ID] = rt.Status
	}
	want := map[string]string{
		"r1": service.StatusCompleted,
		"r2": service.StatusNeedsAction,
		"r3": service.StatusNeedsAction,
	}
	for id, s := range want {
		if status[id] != s {
			t.Errorf("%s status = %q, want %q", id, status[id], s)
		}
	}
	if len(svc.Lists()) != 1 {
		t.Errorf("list should be reused, got %+v", svc.Lists())
	}
}

func TestSync_IsIdempotent(t *testing.T) {
	svc := testutil.NewFakeService()
	tasks := checklist("Feed", "0", "Feed", "0", "Brush", "1")

	if _, err := mirror.Sync(context.Background(), svc, "Mochi", tasks); err != nil {
		t.Fatal(err)
	}
	res, err := mirror.Sync(context.Background(), svc, "Mochi", tasks)
	if err != nil {
		t.Fatal(err)
	}
	if res.Created != 0 || res.Completed != 0 || res.Unchanged != 3 {
		t.Errorf("second sync changed things: %+v", res)
	}
	if n := len(svc.Tasks(res.List.ID)); n != 1 {
		t.Errorf("expected one remote task, got %d", n)
	}
}

func TestSync_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("ambiguous list", func(t *testing.T) {
		svc := testutil.NewFakeService()
		svc.AddList("L1", "Mochi (daycare)")
		svc.AddList("L2", "Mochi (daycare)")
		_, err := mirror.Sync(context.Background(), svc, "Mochi", nil)
		if !errors.Is(err, service.ErrAmbiguousList) {
			t.Errorf("expected ErrAmbiguousList, got %v", err)
		}
	})

	t.Run("create task", func(t *testing.T) {
		svc := testutil.NewFakeService()
		svc.CreateTaskErr = boom
		_, err := mirror.Sync(context.Background(), svc, "Mochi", checklist("Feed", "0"))
		if !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	})

	t.Run("list tasks", func(t *testing.T) {
		svc := testutil.NewFakeService()
		svc.ListOpenTasksErr = boom
		_, err := mirror.Sync(context.Background(), svc, "Mochi", checklist("Feed", "0"))
		if !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	})
}

func TestSync_PagesThroughOpenTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("L1", "Mochi (daycare)")
	for i := 0; i < service.PageSize+5; i++ {
		svc.AddTask("L1", fmt.Sprintf("r%d", i), fmt.Sprintf("Chore %d", i))
	}

	last := fmt.Sprintf("Chore %d", service.PageSize+4)
	res, err := mirror.Sync(context.Background(), svc, "Mochi", checklist(last, "1"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Completed != 1 {
		t.Errorf("task on second page not completed: %+v", res)
	}
}
