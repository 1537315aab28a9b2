package entities_test

import (
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entityforms/pkg/entities"
	"github.com/dmitrymomot/entityforms/pkg/validator"
)

func localized(en, ar string) map[string]any {
	return map[string]any{"en": en, "ar": ar}
}

// minimalPayloads supply every required field and omit every optional one.
var minimalPayloads = map[string]map[string]any{
	entities.KindBrand:       {"name": localized("Acme", "أكمي"), "status": "Published"},
	entities.KindBrandItem:   {"name": localized("Widget", "أداة"), "brand_id": 1},
	entities.KindCity:        {"name": localized("Riyadh", "الرياض"), "country_id": 3, "status": "Draft"},
	entities.KindState:       {"name": localized("Najd", "نجد"), "country_id": 1, "status": "Published"},
	entities.KindRegion:      {"name": localized("Olaya", "العليا"), "city_id": 2},
	entities.KindCategory:    {"name": localized("Shoes", "أحذية"), "status": "Draft"},
	entities.KindNationality: {"name": localized("Saudi", "سعودي"), "code": "SA"},
	entities.KindRole:        {"name": "editor"},
	entities.KindPermission:  {"name": "brands.create", "group": "brands"},
	entities.KindStock:       {"product_id": 10, "quantity": 0, "price": "19.99"},
	entities.KindTodo:        {"title": "Review brands", "status": "Pending"},
	entities.KindAttachment:  {"title": localized("Invoice", "فاتورة")},
	entities.KindContentBlock: {
		"title":       localized("Home", "الرئيسية"),
		"description": localized("Landing", "الصفحة"),
	},
}

// requiredTextFields lists every required text leaf per kind.
var requiredTextFields = map[string][]string{
	entities.KindBrand:        {"name.en", "name.ar"},
	entities.KindBrandItem:    {"name.en", "name.ar"},
	entities.KindCity:         {"name.en", "name.ar"},
	entities.KindState:        {"name.en", "name.ar"},
	entities.KindRegion:       {"name.en", "name.ar"},
	entities.KindCategory:     {"name.en", "name.ar"},
	entities.KindNationality:  {"name.en", "name.ar", "code"},
	entities.KindRole:         {"name"},
	entities.KindPermission:   {"name", "group"},
	entities.KindTodo:         {"title"},
	entities.KindAttachment:   {"title.en", "title.ar"},
	entities.KindContentBlock: {"title.en", "title.ar", "description.en", "description.ar"},
}

func clonePayload(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if m, ok := v.(map[string]any); ok {
			v = maps.Clone(m)
		}
		out[k] = v
	}
	return out
}

func setPath(payload map[string]any, path string, value any, remove bool) {
	parts := strings.Split(path, validator.PathSeparator)
	target := payload
	for _, p := range parts[:len(parts)-1] {
		target = target[p].(map[string]any)
	}
	last := parts[len(parts)-1]
	if remove {
		delete(target, last)
		return
	}
	target[last] = value
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	reg, err := entities.NewRegistry()
	require.NoError(t, err)
	assert.True(t, reg.Sealed())
	assert.Equal(t, []string{
		"attachment", "brand", "brand_item", "category", "city", "content_block",
		"nationality", "permission", "region", "role", "state", "stock", "todo",
	}, reg.Kinds())

	assert.Same(t, entities.Default(), entities.Default())
}

func TestMinimalPayloadsAreValid(t *testing.T) {
	t.Parallel()
	reg := entities.Default()

	require.Len(t, minimalPayloads, len(reg.Kinds()))
	for kind, payload := range minimalPayloads {
		t.Run(kind, func(t *testing.T) {
			res, err := reg.Validate(kind, clonePayload(payload))
			require.NoError(t, err)
			assert.True(t, res.Valid(), "%s: %v", kind, res.Errors)
		})
	}
}

func TestRequiredTextFields(t *testing.T) {
	t.Parallel()
	reg := entities.Default()

	for kind, fields := range requiredTextFields {
		for _, field := range fields {
			for _, mode := range []string{"empty", "omitted"} {
				t.Run(kind+"/"+field+"/"+mode, func(t *testing.T) {
					payload := clonePayload(minimalPayloads[kind])
					setPath(payload, field, "", mode == "omitted")

					res, err := reg.Validate(kind, payload)
					require.NoError(t, err)
					require.Len(t, res.Errors, 1, res.Errors)
					assert.Equal(t, field, res.Errors[0].Field)
				})
			}
		}
	}
}

func TestErrorsAreExhaustive(t *testing.T) {
	t.Parallel()

	res, err := entities.Default().Validate(entities.KindPermission, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "group"}, res.Errors.Fields())

	res, err = entities.Default().Validate(entities.KindStock, map[string]any{"quantity": 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"product_id", "price"}, res.Errors.Fields())
}

func TestCityLocalizedName(t *testing.T) {
	t.Parallel()

	payload := clonePayload(minimalPayloads[entities.KindCity])
	payload["name"] = localized("Riyadh", "")

	res, err := entities.Default().Validate(entities.KindCity, payload)
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "name.ar", res.Errors[0].Field)
	assert.False(t, res.Errors.Has("name.en"))
}

func TestBlankOptionalFields(t *testing.T) {
	t.Parallel()
	reg := entities.Default()

	res, err := reg.Validate(entities.KindRole, map[string]any{"name": "editor", "description": ""})
	require.NoError(t, err)
	require.True(t, res.Valid(), res.Errors)
	assert.NotContains(t, res.Value, "description")

	city := clonePayload(minimalPayloads[entities.KindCity])
	city["state_id"] = ""
	res, err = reg.Validate(entities.KindCity, city)
	require.NoError(t, err)
	require.True(t, res.Valid(), res.Errors)
	assert.NotContains(t, res.Value, "state_id")

	city["state_id"] = "abc"
	res, err = reg.Validate(entities.KindCity, city)
	require.NoError(t, err)
	assert.Equal(t, []string{"state_id"}, res.Errors.Fields())
}

func TestStatusEnumeration(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{entities.KindCity, entities.KindState} {
		t.Run(kind, func(t *testing.T) {
			payload := clonePayload(minimalPayloads[kind])

			payload["status"] = "Archived"
			res, err := entities.Default().Validate(kind, payload)
			require.NoError(t, err)
			assert.Equal(t, []string{"status"}, res.Errors.Fields())

			payload["status"] = "Draft"
			res, err = entities.Default().Validate(kind, payload)
			require.NoError(t, err)
			assert.True(t, res.Valid())
			assert.Equal(t, "Draft", res.Value["status"])
		})
	}
}

func TestCityCountryMinimum(t *testing.T) {
	t.Parallel()

	payload := clonePayload(minimalPayloads[entities.KindCity])

	payload["country_id"] = 0
	res, err := entities.Default().Validate(entities.KindCity, payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"country_id"}, res.Errors.Fields())

	payload["country_id"] = "abc"
	res, err = entities.Default().Validate(entities.KindCity, payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"country_id"}, res.Errors.Fields())

	payload["country_id"] = "9223372036854775808"
	res, err = entities.Default().Validate(entities.KindCity, payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"country_id"}, res.Errors.Fields())

	payload["country_id"] = "3"
	res, err = entities.Default().Validate(entities.KindCity, payload)
	require.NoError(t, err)
	require.True(t, res.Valid())
	assert.Equal(t, int64(3), res.Value["country_id"])
}

func TestNormalizationIsIdempotent(t *testing.T) {
	t.Parallel()
	reg := entities.Default()

	for kind, payload := range minimalPayloads {
		t.Run(kind, func(t *testing.T) {
			first, err := reg.Validate(kind, clonePayload(payload))
			require.NoError(t, err)
			require.True(t, first.Valid())

			second, err := reg.Validate(kind, first.Value)
			require.NoError(t, err)
			require.True(t, second.Valid())
			assert.Equal(t, first.Value, second.Value)
		})
	}
}

func TestUnknownKind(t *testing.T) {
	t.Parallel()

	res, err := entities.Default().Validate("country", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, validator.ErrUnknownEntityKind)
	assert.Nil(t, res.Value)
}

func TestDecodeRecords(t *testing.T) {
	t.Parallel()
	reg := entities.Default()

	t.Run("city", func(t *testing.T) {
		res, err := reg.Validate(entities.KindCity, map[string]any{
			"name":       localized("Riyadh", "الرياض"),
			"country_id": "3",
			"state_id":   5,
			"status":     "Published",
		})
		require.NoError(t, err)

		var city entities.City
		require.NoError(t, res.Decode(&city))
		assert.Equal(t, entities.LocalizedText{En: "Riyadh", Ar: "الرياض"}, city.Name)
		assert.Equal(t, int64(3), city.CountryID)
		require.NotNil(t, city.StateID)
		assert.Equal(t, int64(5), *city.StateID)
	})

	t.Run("stock", func(t *testing.T) {
		res, err := reg.Validate(entities.KindStock, minimalPayloads[entities.KindStock])
		require.NoError(t, err)

		var stock entities.Stock
		require.NoError(t, res.Decode(&stock))
		assert.Equal(t, int64(10), stock.ProductID)
		assert.Equal(t, 19.99, stock.Price)
		assert.Zero(t, stock.Quantity)
	})

	t.Run("content block keeps free-form children", func(t *testing.T) {
		payload := clonePayload(minimalPayloads[entities.KindContentBlock])
		payload["children"] = []any{map[string]any{"type": "slider", "items": []any{"a", "b"}}}

		res, err := reg.Validate(entities.KindContentBlock, payload)
		require.NoError(t, err)

		var block entities.ContentBlock
		require.NoError(t, res.Decode(&block))
		assert.Equal(t, payload["children"], block.Children)
	})
}
