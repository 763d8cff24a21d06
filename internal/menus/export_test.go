package menus

var (
	SingleQuery = singleQuery
	ListQuery   = listQuery
)
