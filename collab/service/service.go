package service

import (
	"context"
	"sort"

	"github.com/MarisolRV/crossover/collab"
	"github.com/MarisolRV/crossover/internal"
	"github.com/MarisolRV/crossover/validate"
)

type service struct {
	cr collab.Repository
}

func NewCollabService(cr collab.Repository) collab.Service {
	return &service{
		cr: cr,
	}
}

func (s *service) Create(ctx context.Context, kind collab.Kind, values map[string]string) (*collab.Record, error) {
	var record collab.Record
	for _, f := range kind.Fields {
		v := values[f.Name]
		if err := validate.Var(v, "required,"+f.Rules); err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid %s provided", f.Name)
		}
		record.SetValue(f.Name, v)
	}
	created, err := s.cr.Create(ctx, kind, record)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to create %s", kind.Singular)
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, kind collab.Kind, id int, values map[string]string) (*collab.Record, error) {
	found, err := s.cr.Get(ctx, kind, id)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "%v", internal.ErrRecordNotFound)
	}
	// Merge-patch: a blank value means "not provided" so a field can only
	// ever be replaced with a non-empty value, never cleared
	for _, f := range kind.Fields {
		v, ok := values[f.Name]
		if !ok || v == "" {
			continue
		}
		if err := validate.Var(v, f.Rules); err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid %s provided", f.Name)
		}
		found.SetValue(f.Name, v)
	}
	updated, err := s.cr.Update(ctx, kind, *found)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to update %s %d", kind.Singular, id)
	}
	return updated, nil
}

func (s *service) Find(ctx context.Context, kind collab.Kind, id int) (*collab.Record, error) {
	found, err := s.cr.Get(ctx, kind, id)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "%v", internal.ErrRecordNotFound)
	}
	return found, nil
}

func (s *service) List(ctx context.Context, kind collab.Kind) ([]collab.Record, error) {
	records, err := s.cr.List(ctx, kind)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to list %ss", kind.Singular)
	}
	return records, nil
}

func (s *service) ListByDate(ctx context.Context, kind collab.Kind) ([]collab.Record, error) {
	records, err := s.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	// Dates are free-form strings so ordering is plain byte-wise string
	// comparison, not calendar order
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CollaborationDate > records[j].CollaborationDate
	})
	return records, nil
}

func (s *service) ListDeleted(ctx context.Context, kind collab.Kind) ([]collab.Record, error) {
	records, err := s.cr.ListDeleted(ctx, kind)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to list deleted %ss", kind.Singular)
	}
	return records, nil
}

func (s *service) SearchByField(ctx context.Context, kind collab.Kind, field string, value string) ([]collab.Record, error) {
	// An unregistered field name is "no matches", not a client error
	f, ok := kind.Field(field)
	if !ok {
		return []collab.Record{}, nil
	}
	records, err := s.cr.Search(ctx, kind, f.Column, value)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to search %ss by %s", kind.Singular, field)
	}
	return records, nil
}

func (s *service) Delete(ctx context.Context, kind collab.Kind, id int) (*collab.Record, error) {
	found, err := s.cr.Get(ctx, kind, id)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "%v", internal.ErrRecordNotFound)
	}
	// The deleted table carries the same constraints, so the copy must
	// hold them before anything is removed from the active table
	for _, f := range kind.Fields {
		if err := validate.Var(found.Value(f.Name), "required,"+f.Rules); err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to validate deleted copy of %s %d", kind.Singular, id)
		}
	}
	if err := s.cr.SoftDelete(ctx, kind, *found); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to delete %s %d", kind.Singular, id)
	}
	return found, nil
}
