package entities

import v "github.com/dmitrymomot/entityforms/pkg/validator"

func publicationStatus() v.Rule {
	return v.OneOf(StatusPublished, StatusDraft)
}

func reference() v.Rule {
	return v.Number(v.Integer(), v.Min(1))
}

func brandSchema() (*v.Schema, error) {
	return v.NewSchema(KindBrand,
		v.Localized("name"),
		v.Field("logo", v.PassThrough()),
		v.Field("status", publicationStatus()),
	)
}

// brandItemSchema is declared separately from brandSchema: the two forms
// evolve independently even though both carry a localized name.
func brandItemSchema() (*v.Schema, error) {
	return v.NewSchema(KindBrandItem,
		v.Localized("name"),
		v.Field("brand_id", reference()),
		v.Field("image", v.PassThrough()),
	)
}

func citySchema() (*v.Schema, error) {
	return v.NewSchema(KindCity,
		v.Localized("name"),
		v.Field("country_id", reference()),
		v.Field("state_id", v.Optional(reference())),
		v.Field("status", publicationStatus()),
	)
}

func stateSchema() (*v.Schema, error) {
	return v.NewSchema(KindState,
		v.Localized("name"),
		v.Field("country_id", reference()),
		v.Field("status", publicationStatus()),
	)
}

func regionSchema() (*v.Schema, error) {
	return v.NewSchema(KindRegion,
		v.Localized("name"),
		v.Field("city_id", reference()),
		v.Field("status", v.Optional(publicationStatus())),
	)
}

func categorySchema() (*v.Schema, error) {
	return v.NewSchema(KindCategory,
		v.Localized("name"),
		v.Field("parent_id", v.Optional(v.Number(v.Integer(), v.Min(0)))),
		v.Field("image", v.PassThrough()),
		v.Field("status", publicationStatus()),
	)
}

func nationalitySchema() (*v.Schema, error) {
	return v.NewSchema(KindNationality,
		v.Localized("name"),
		v.Field("code", v.Text(v.MinLen(2))),
	)
}

func roleSchema() (*v.Schema, error) {
	return v.NewSchema(KindRole,
		v.Field("name", v.Text(v.MinLen(3))),
		v.Field("description", v.Optional(v.Text())),
		v.Field("permissions", v.PassThrough()),
	)
}

func permissionSchema() (*v.Schema, error) {
	return v.NewSchema(KindPermission,
		v.Field("name", v.Text()),
		v.Field("group", v.Text()),
		v.Field("guard_name", v.Optional(v.String())),
	)
}

func stockSchema() (*v.Schema, error) {
	return v.NewSchema(KindStock,
		v.Field("product_id", reference()),
		v.Field("quantity", v.Number(v.Min(0))),
		v.Field("price", v.Number(v.Min(0))),
		v.Field("note", v.Optional(v.String())),
	)
}

func todoSchema() (*v.Schema, error) {
	return v.NewSchema(KindTodo,
		v.Field("title", v.Text()),
		v.Field("description", v.Optional(v.String())),
		v.Field("status", v.OneOf(TodoPending, TodoInProgress, TodoCompleted)),
	)
}

func attachmentSchema() (*v.Schema, error) {
	return v.NewSchema(KindAttachment,
		v.Localized("title"),
		v.Field("file", v.PassThrough()),
		v.Field("attachments", v.PassThrough()),
	)
}

// contentBlockSchema validates the rich content form: localized title and
// description plus slider and child blocks that are not constrained yet.
func contentBlockSchema() (*v.Schema, error) {
	return v.NewSchema(KindContentBlock,
		v.Localized("title"),
		v.Localized("description"),
		v.Field("sliders", v.PassThrough()),
		v.Field("children", v.PassThrough()),
	)
}

var definitions = []func() (*v.Schema, error){
	brandSchema,
	brandItemSchema,
	citySchema,
	stateSchema,
	regionSchema,
	categorySchema,
	nationalitySchema,
	roleSchema,
	permissionSchema,
	stockSchema,
	todoSchema,
	attachmentSchema,
	contentBlockSchema,
}
