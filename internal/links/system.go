package links

import "context"

// System defines read operations on links.
type System interface {
	// ByMenu returns the links of a menu ordered by position.
	ByMenu(ctx context.Context, menuID int64) ([]Link, error)
}
