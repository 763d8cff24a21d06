package api

import (
	"github.com/JaimeStill/quarx/internal/links"
	"github.com/JaimeStill/quarx/internal/menus"
	"github.com/JaimeStill/quarx/internal/pages"
	"github.com/JaimeStill/quarx/internal/quarx"
	"github.com/JaimeStill/quarx/internal/widgets"
)

// NewDomain creates the content repositories from the module runtime.
func NewDomain(runtime *Runtime) quarx.Domain {
	db := runtime.Database.Connection()

	return quarx.Domain{
		Menus:   menus.New(db, runtime.Logger),
		Links:   links.New(db, runtime.Logger),
		Pages:   pages.New(db, runtime.Logger),
		Widgets: widgets.New(db, runtime.Logger),
	}
}
