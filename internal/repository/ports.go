package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	CreateRecord(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any, preload ...string) error
	FirstOrCreateBy(ctx context.Context, column string, value any, entity any) error
	DeleteWhere(ctx context.Context, model any, filters map[string]any) error
}
