package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"listora_admin/internal/catalog"
	"listora_admin/internal/gateway"
)

var listingsGW *gateway.Client

// InitListingController ilan yönetimi uç noktalarının bağımlılıklarını kurar
func InitListingController(client *gateway.Client) {
	listingsGW = client
}

type StatusInput struct {
	Status string `json:"status"`
}

type FeaturedInput struct {
	Featured bool `json:"featured"`
}

// ListListings yönetim tablosu için ilanları listeler
func ListListings(c *fiber.Ctx) error {
	filter := gateway.ListingFilter{
		Status:   catalog.Status(c.Query("status")),
		Category: catalog.Category(c.Query("category")),
		Kind:     catalog.ListingKind(c.Query("kind")),
		Page:     c.QueryInt("page"),
		PerPage:  c.QueryInt("per_page"),
	}

	page, err := listingsGW.ListListings(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(page)
}

// GetListing ilan detayını döner
func GetListing(c *fiber.Ctx) error {
	rec, err := listingsGW.GetListing(c.Context(), c.Params("id"))
	if err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(rec)
}

// UpdateListingStatus ilan durumunu değiştirir (yayınla, arşivle, kapat)
func UpdateListingStatus(c *fiber.Ctx) error {
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	to := catalog.Status(input.Status)
	if !catalog.ValidStatus(to) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown status",
		})
	}

	if err := listingsGW.UpdateListingStatus(c.Context(), c.Params("id"), to); err != nil {
		if errors.Is(err, gateway.ErrIllegalTransition) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return gatewayError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Status updated",
	})
}

// SetListingFeatured öne çıkarma bayrağını değiştirir
func SetListingFeatured(c *fiber.Ctx) error {
	input := new(FeaturedInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := listingsGW.SetFeatured(c.Context(), c.Params("id"), input.Featured); err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Featured flag updated",
	})
}

// DeleteListing ilanı kalıcı olarak siler
func DeleteListing(c *fiber.Ctx) error {
	if err := listingsGW.DeleteListing(c.Context(), c.Params("id")); err != nil {
		return gatewayError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// gatewayError pazaryeri API hatalarını HTTP cevabına çevirir
func gatewayError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gateway.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Record not found",
		})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": err.Error(),
	})
}
