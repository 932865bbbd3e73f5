package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nexonbooks/docintake/gen/ent"
	"github.com/nexonbooks/docintake/gen/ent/workspace"
	"github.com/nexonbooks/docintake/internal/entity"
)

type WorkspaceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error)
	GetOrCreateByName(ctx context.Context, name string) (*entity.Workspace, error)
	CreateWorkspace(ctx context.Context, name string) (*entity.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]entity.Workspace, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type workspaceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewWorkspaceRepository(client *ent.Client, logger *slog.Logger) WorkspaceRepository {
	return &workspaceRepository{
		client: client,
		logger: logger,
	}
}

func (r *workspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	ws, err := r.client.Workspace.
		Query().
		Where(workspace.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	w := toWorkspace(ws)
	return &w, nil
}

func (r *workspaceRepository) GetOrCreateByName(ctx context.Context, name string) (*entity.Workspace, error) {
	ws, err := r.client.Workspace.
		Query().
		Where(workspace.Name(name)).
		First(ctx)
	if err == nil {
		w := toWorkspace(ws)
		return &w, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to query workspace", "name", name, "error", err)
		return nil, err
	}
	return r.CreateWorkspace(ctx, name)
}

func (r *workspaceRepository) CreateWorkspace(ctx context.Context, name string) (*entity.Workspace, error) {
	ws, err := r.client.Workspace.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create workspace", "name", name, "error", err)
		return nil, err
	}
	w := toWorkspace(ws)
	return &w, nil
}

func (r *workspaceRepository) ListWorkspaces(ctx context.Context) ([]entity.Workspace, error) {
	wss, err := r.client.Workspace.Query().Order(workspace.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list workspaces", "error", err)
		return nil, err
	}
	result := make([]entity.Workspace, len(wss))
	for i, ws := range wss {
		result[i] = toWorkspace(ws)
	}
	return result, nil
}

func (r *workspaceRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Workspace.Query().Where(workspace.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check workspace existence", "workspace_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

func toWorkspace(ws *ent.Workspace) entity.Workspace {
	return entity.Workspace{
		ID:        ws.ID,
		Name:      ws.Name,
		CreatedAt: ws.CreatedAt,
		UpdatedAt: ws.UpdatedAt,
	}
}
