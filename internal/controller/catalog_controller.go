package controller

import (
	"github.com/gofiber/fiber/v2"

	"listora_admin/internal/catalog"
)

// GetCatalog sihirbazın ihtiyaç duyduğu statik kategori konfigürasyonunu döner
func GetCatalog(c *fiber.Ctx) error {
	categories := make([]fiber.Map, 0)
	for _, cat := range append(catalog.Categories(), catalog.ServiceCategories()...) {
		categories = append(categories, fiber.Map{
			"category":          cat,
			"needs":             catalog.NeedsFor(cat),
			"default_need":      catalog.DefaultNeed(cat),
			"sub_types":         catalog.SubTypesFor(cat),
			"requires_sub_type": catalog.RequiresSubType(cat),
			"amenities":         catalog.CategoryAmenities(cat),
			"supports_rooms":    catalog.SupportsRooms(cat),
		})
	}

	return c.JSON(fiber.Map{
		"categories":         categories,
		"service_categories": catalog.ServiceCategories(),
		"general_amenities":  catalog.GeneralAmenities(),
		"currencies":         catalog.Currencies(),
		"size_units":         catalog.SizeUnits(),
		"payment_options": fiber.Map{
			string(catalog.NeedBuy):  catalog.PaymentOptionsFor(catalog.NeedBuy),
			string(catalog.NeedRent): catalog.PaymentOptionsFor(catalog.NeedRent),
		},
	})
}

// GetCategoryConfig tek bir kategorinin konfigürasyonunu döner
func GetCategoryConfig(c *fiber.Ctx) error {
	cat := catalog.Category(c.Params("category"))
	if !catalog.ValidCategory(cat) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown category",
		})
	}

	return c.JSON(fiber.Map{
		"category":          cat,
		"needs":             catalog.NeedsFor(cat),
		"default_need":      catalog.DefaultNeed(cat),
		"sub_types":         catalog.SubTypesFor(cat),
		"requires_sub_type": catalog.RequiresSubType(cat),
		"amenities":         catalog.CategoryAmenities(cat),
		"supports_rooms":    catalog.SupportsRooms(cat),
	})
}
