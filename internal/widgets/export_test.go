package widgets

var SingleQuery = singleQuery
