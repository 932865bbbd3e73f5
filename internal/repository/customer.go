package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nexonbooks/docintake/gen/ent"
	"github.com/nexonbooks/docintake/gen/ent/customer"
	"github.com/nexonbooks/docintake/internal/entity"
)

// CustomerRepository satisfies pipeline.CustomerStore so the resolver can
// read the full workspace roster and persist freshly detected counterparties.
type CustomerRepository interface {
	List(ctx context.Context, workspaceID uuid.UUID) ([]entity.Customer, error)
	Create(ctx context.Context, c entity.Customer) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}

type customerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCustomerRepository(client *ent.Client, logger *slog.Logger) CustomerRepository {
	return &customerRepository{
		client: client,
		logger: logger,
	}
}

func (r *customerRepository) List(ctx context.Context, workspaceID uuid.UUID) ([]entity.Customer, error) {
	recs, err := r.client.Customer.Query().
		Where(customer.WorkspaceID(workspaceID)).
		Order(customer.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list customers", "workspace_id", workspaceID, "error", err)
		return nil, err
	}
	result := make([]entity.Customer, len(recs))
	for i, rec := range recs {
		result[i] = toCustomer(rec)
	}
	return result, nil
}

func (r *customerRepository) Create(ctx context.Context, c entity.Customer) (uuid.UUID, error) {
	builder := r.client.Customer.Create().
		SetWorkspaceID(c.WorkspaceID).
		SetName(c.Name)
	if c.Address != "" {
		builder = builder.SetAddress(c.Address)
	}
	if c.VATNumber != "" {
		builder = builder.SetVatNumber(c.VATNumber)
	}
	if c.Email != "" {
		builder = builder.SetEmail(c.Email)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create customer", "workspace_id", c.WorkspaceID, "name", c.Name, "error", err)
		return uuid.Nil, err
	}
	return rec.ID, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	rec, err := r.client.Customer.Query().Where(customer.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	c := toCustomer(rec)
	return &c, nil
}

func toCustomer(rec *ent.Customer) entity.Customer {
	c := entity.Customer{
		ID:          rec.ID,
		WorkspaceID: rec.WorkspaceID,
		Name:        rec.Name,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if rec.Address != nil {
		c.Address = *rec.Address
	}
	if rec.VatNumber != nil {
		c.VATNumber = *rec.VatNumber
	}
	if rec.Email != nil {
		c.Email = *rec.Email
	}
	return c
}
