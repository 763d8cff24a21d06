package pages

var (
	ByIDQuery           = byIDQuery
	PublishedByURLQuery = publishedByURLQuery
)
