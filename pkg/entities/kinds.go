package entities

// Entity kinds served by the dashboard forms.
const (
	KindBrand        = "brand"
	KindBrandItem    = "brand_item"
	KindCity         = "city"
	KindState        = "state"
	KindRegion       = "region"
	KindCategory     = "category"
	KindNationality  = "nationality"
	KindRole         = "role"
	KindPermission   = "permission"
	KindStock        = "stock"
	KindTodo         = "todo"
	KindAttachment   = "attachment"
	KindContentBlock = "content_block"
)

// Publication statuses shared by catalogue and location entities.
const (
	StatusPublished = "Published"
	StatusDraft     = "Draft"
)

// Todo statuses.
const (
	TodoPending    = "Pending"
	TodoInProgress = "InProgress"
	TodoCompleted  = "Completed"
)
