package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nmoreras/ganttboard/internal/config"
	"github.com/nmoreras/ganttboard/internal/feature"
)

type fakeRepo struct {
	loadTasks func(projectID string) ([]feature.Feature, error)
}

func (f fakeRepo) LoadTasks(ctx context.Context, projectID string) ([]feature.Feature, error) {
	if f.loadTasks == nil {
		return nil, errors.New("not implemented")
	}
	return f.loadTasks(projectID)
}

func (f fakeRepo) SaveTasks(ctx context.Context, projectID string, features []feature.Feature) error {
	return errors.New("not implemented")
}

func (f fakeRepo) ListProjects(ctx context.Context) ([]feature.ProjectInfo, error) {
	return nil, errors.New("not implemented")
}

func (f fakeRepo) DeleteProject(ctx context.Context, projectID string) error {
	return errors.New("not implemented")
}

func (f fakeRepo) Close() error {
	return nil
}

func TestLoadProjectReturnsProjectLoadedMsg(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	repo := fakeRepo{
		loadTasks: func(projectID string) ([]feature.Feature, error) {
			if projectID != "demo" {
				t.Fatalf("projectID = %q, want demo", projectID)
			}
			return []feature.Feature{
				{
					ID:   "f1",
					Name: "登入",
					Assignments: []feature.Assignment{
						{ID: "a1", Role: "FE", Start: start, End: start.AddDate(0, 0, 2)},
					},
				},
			}, nil
		},
	}

	msg := LoadProject(repo, "demo")()

	loaded, ok := msg.(ProjectLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ProjectLoadedMsg", msg)
	}
	if len(loaded.Features) != 1 || loaded.Features[0].Name != "登入" {
		t.Fatalf("unexpected features: %+v", loaded.Features)
	}
}

func TestLoadProjectTreatsMissingProjectAsEmpty(t *testing.T) {
	repo := fakeRepo{
		loadTasks: func(string) ([]feature.Feature, error) {
			return nil, feature.ErrProjectNotFound
		},
	}

	msg := LoadProject(repo, "fresh")()

	loaded, ok := msg.(ProjectLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ProjectLoadedMsg", msg)
	}
	if len(loaded.Features) != 0 {
		t.Fatalf("features = %+v, want empty", loaded.Features)
	}
}

func TestLoadProjectWrapsErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	repo := fakeRepo{
		loadTasks: func(string) ([]feature.Feature, error) {
			return nil, boom
		},
	}

	msg := LoadProject(repo, "demo")()

	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Fatalf("err = %v, want wrapped %v", errMsg.Err, boom)
	}
}

func TestImportRejectsUnknownProvider(t *testing.T) {
	cfg := config.Default()
	cfg.LLM.Provider = "carrier-pigeon"

	msg := Import(cfg, "登入 FE 3天")()

	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
}
