package menus

import (
	"github.com/JaimeStill/quarx/pkg/query"
	"github.com/JaimeStill/quarx/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "menus", "m").
	Project("id", "ID").
	Project("uuid", "UUID").
	Project("name", "Name").
	Project("slug", "Slug").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const defaultSort = "Name"

func scanMenu(s repository.Scanner) (Menu, error) {
	var m Menu
	err := s.Scan(&m.ID, &m.UUID, &m.Name, &m.Slug, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func singleQuery(field string, value any) (string, []any) {
	return query.NewBuilder(projection).BuildSingle(field, value)
}

func listQuery() (string, []any) {
	return query.NewBuilder(projection, defaultSort).BuildList()
}
