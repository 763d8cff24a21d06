package links

var ByMenuQuery = byMenuQuery
