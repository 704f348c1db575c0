package project

import "context"

// Repository provides persistence for projects.
type Repository interface {
	Upsert(ctx context.Context, name, color string) (int64, error)
	List(ctx context.Context) ([]Project, error)
}
