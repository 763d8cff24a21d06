package pages

import (
	"github.com/JaimeStill/quarx/pkg/query"
	"github.com/JaimeStill/quarx/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "pages", "p").
	Project("id", "ID").
	Project("uuid", "UUID").
	Project("title", "Title").
	Project("url", "URL").
	Project("entry", "Entry").
	Project("is_published", "IsPublished").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

func scanPage(s repository.Scanner) (Page, error) {
	var p Page
	err := s.Scan(
		&p.ID, &p.UUID, &p.Title, &p.URL, &p.Entry,
		&p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func byIDQuery(id int64) (string, []any) {
	return query.NewBuilder(projection).BuildSingle("ID", id)
}

// publishedByURLQuery matches only published pages; unpublished rows at the
// same url are never returned.
func publishedByURLQuery(url string) (string, []any) {
	return query.NewBuilder(projection).
		WhereEquals("URL", url).
		WhereTrue("IsPublished").
		BuildFirst()
}
