package widgets

import (
	"github.com/JaimeStill/quarx/pkg/query"
	"github.com/JaimeStill/quarx/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "widgets", "w").
	Project("id", "ID").
	Project("uuid", "UUID").
	Project("name", "Name").
	Project("slug", "Slug").
	Project("content", "Content").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

func scanWidget(s repository.Scanner) (Widget, error) {
	var w Widget
	err := s.Scan(&w.ID, &w.UUID, &w.Name, &w.Slug, &w.Content, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

func singleQuery(field string, value any) (string, []any) {
	return query.NewBuilder(projection).BuildSingle(field, value)
}
