package pages

import "context"

// System defines read operations on pages.
type System interface {
	FindByID(ctx context.Context, id int64) (*Page, error)
	FindByURL(ctx context.Context, url string) (*Page, error)
}
