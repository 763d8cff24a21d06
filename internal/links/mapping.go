package links

import (
	"github.com/JaimeStill/quarx/pkg/query"
	"github.com/JaimeStill/quarx/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "links", "l").
	Project("id", "ID").
	Project("menu_id", "MenuID").
	Project("name", "Name").
	Project("external", "External").
	Project("external_url", "ExternalURL").
	Project("page_id", "PageID").
	Project("position", "Position").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

func scanLink(s repository.Scanner) (Link, error) {
	var l Link
	err := s.Scan(
		&l.ID, &l.MenuID, &l.Name, &l.External, &l.ExternalURL,
		&l.PageID, &l.Position, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// byMenuQuery selects a menu's links by position, breaking ties on id.
func byMenuQuery(menuID int64) (string, []any) {
	return query.NewBuilder(projection).
		WhereEquals("MenuID", menuID).
		OrderBy("Position", false).
		OrderBy("ID", false).
		BuildList()
}
