package repository

import (
	"context"

	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/pkg/query"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// findPage runs the page fetch and the total count for the same filter
// scopes. Outside a transaction the two reads run concurrently; a
// transaction owns a single connection, so there they run in turn.
func findPage[T any](db *gorm.DB, q entity.ListQuery, preloads []string, scopes ...query.Scope) ([]T, int64, error) {
	var (
		items []T
		total int64
	)

	fetch := func(db *gorm.DB) error {
		tx := db.Model(new(T)).
			Scopes(scopes...).
			Scopes(q.Sort.Scope(), query.Paginate(q.Page.Limit, q.Page.Skip()))
		for _, p := range preloads {
			tx = tx.Preload(p)
		}
		return tx.Find(&items).Error
	}
	count := func(db *gorm.DB) error {
		return db.Model(new(T)).Scopes(scopes...).Count(&total).Error
	}

	if inTransaction(db) {
		if err := fetch(db); err != nil {
			return nil, 0, translate(err)
		}
		if err := count(db); err != nil {
			return nil, 0, translate(err)
		}
		return items, total, nil
	}

	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return fetch(db.WithContext(gctx)) })
	g.Go(func() error { return count(db.WithContext(gctx)) })
	if err := g.Wait(); err != nil {
		return nil, 0, translate(err)
	}

	return items, total, nil
}

func inTransaction(db *gorm.DB) bool {
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}
