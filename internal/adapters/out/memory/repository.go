package memory

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrDuplicateID is returned by Add for an id that is already stored.
var ErrDuplicateID = errors.New("memory: duplicate id")

type aggregate interface {
	ID() kernel.ID
	Validate() error
}

// repository implements the operations every aggregate repository shares.
// A is the aggregate pointer type, R its record.
type repository[A aggregate, R any] struct {
	uow      *UnitOfWork
	entity   string
	table    func(tx *txState) *stagedTable[R]
	toRecord func(A) R
	toDomain func(R) (A, error)
}

func (r repository[A, R]) NextID(ctx context.Context) (kernel.ID, error) {
	var id kernel.ID
	err := r.uow.write(ctx, func(tx *txState) error {
		id = r.table(tx).nextID()
		return nil
	})
	return id, err
}

func (r repository[A, R]) Add(ctx context.Context, a A) error {
	if err := a.Validate(); err != nil {
		return err
	}

	return r.uow.write(ctx, func(tx *txState) error {
		t := r.table(tx)
		if _, exists := t.get(a.ID()); exists {
			return fmt.Errorf("%w: %s %s", ErrDuplicateID, r.entity, a.ID())
		}
		t.put(a.ID(), r.toRecord(a))
		return nil
	})
}

func (r repository[A, R]) Update(ctx context.Context, a A) error {
	if err := a.Validate(); err != nil {
		return err
	}

	return r.uow.write(ctx, func(tx *txState) error {
		t := r.table(tx)
		if _, exists := t.get(a.ID()); !exists {
			return errs.NewObjectNotFoundError(r.entity, a.ID())
		}
		t.put(a.ID(), r.toRecord(a))
		return nil
	})
}

func (r repository[A, R]) Get(ctx context.Context, id kernel.ID) (A, error) {
	var (
		result A
		row    R
		found  bool
	)

	if err := r.uow.read(ctx, func(tx *txState) error {
		row, found = r.table(tx).get(id)
		return nil
	}); err != nil {
		return result, err
	}

	if !found {
		return result, errs.NewObjectNotFoundError(r.entity, id)
	}

	return r.toDomain(row)
}

func (r repository[A, R]) GetAll(ctx context.Context) ([]A, error) {
	return r.find(ctx, func(R) bool { return true })
}

// find returns the aggregates whose records satisfy match, ordered by id.
func (r repository[A, R]) find(ctx context.Context, match func(R) bool) ([]A, error) {
	var rows []R
	if err := r.uow.read(ctx, func(tx *txState) error {
		rows = r.table(tx).all()
		return nil
	}); err != nil {
		return nil, err
	}

	result := make([]A, 0, len(rows))
	for _, row := range rows {
		if !match(row) {
			continue
		}
		a, err := r.toDomain(row)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}

	return result, nil
}
