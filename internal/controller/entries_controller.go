package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"listora_admin/internal/catalog"
	"listora_admin/internal/composer"
)

// Taslağın sıralı koleksiyonları (SSS, yakın çevre olanakları, custom
// olanaklar) ID ile hedefli güncellenir; kardeş kayıtlar ve sıraları
// bozulmaz.

type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type LocalAmenityInput struct {
	Name         string `json:"name"`
	MinutesDrive int    `json:"minutes_drive"`
}

type CustomAmenityInput struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type AmenitySelectionInput struct {
	Selected bool `json:"selected"`
}

type PaymentOptionsInput struct {
	Options []catalog.PaymentOption `json:"options"`
}

func entryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, composer.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Entry not found",
		})
	case errors.Is(err, composer.ErrNotCustom):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only custom amenities can be removed",
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// AddFAQ taslağa yeni SSS kaydı ekler
func AddFAQ(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	input := new(FAQInput)
	if err := c.BodyParser(input); err != nil || input.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question is required",
		})
	}

	s.Lock()
	defer s.Unlock()
	faq := s.Composer.Draft().AddFAQ(input.Question, input.Answer)
	return c.Status(fiber.StatusCreated).JSON(faq)
}

// UpdateFAQ ID ile eşleşen SSS kaydını günceller
func UpdateFAQ(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	input := new(FAQInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	s.Lock()
	defer s.Unlock()
	if err := s.Composer.Draft().UpdateFAQ(c.Params("faq_id"), input.Question, input.Answer); err != nil {
		return entryError(c, err)
	}
	return c.JSON(composerState(s))
}

// RemoveFAQ ID ile eşleşen SSS kaydını siler
func RemoveFAQ(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()
	if err := s.Composer.Draft().RemoveFAQ(c.Params("faq_id")); err != nil {
		return entryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddLocalAmenity taslağa yakın çevre olanağı ekler
func AddLocalAmenity(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	input := new(LocalAmenityInput)
	if err := c.BodyParser(input); err != nil || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if input.MinutesDrive < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Minutes drive must be non-negative",
		})
	}

	s.Lock()
	defer s.Unlock()
	la := s.Composer.Draft().AddLocalAmenity(input.Name, input.MinutesDrive)
	return c.Status(fiber.StatusCreated).JSON(la)
}

// UpdateLocalAmenity ID ile eşleşen kaydı günceller
func UpdateLocalAmenity(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	input := new(LocalAmenityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	s.Lock()
	defer s.Unlock()
	if err := s.Composer.Draft().UpdateLocalAmenity(c.Params("amenity_id"), input.Name, input.MinutesDrive); err != nil {
		return entryError(c, err)
	}
	return c.JSON(composerState(s))
}

// RemoveLocalAmenity ID ile eşleşen kaydı siler
func RemoveLocalAmenity(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()
	if err := s.Composer.Draft().RemoveLocalAmenity(c.Params("amenity_id")); err != nil {
		return entryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddCustomAmenity kullanıcı tanımlı olanak ekler
func AddCustomAmenity(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	input := new(CustomAmenityInput)
	if err := c.BodyParser(input); err != nil || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	s.Lock()
	defer s.Unlock()
	a := s.Composer.Draft().AddCustomAmenity(input.Name, input.Icon)
	return c.Status(fiber.StatusCreated).JSON(a)
}

// SetAmenitySelected olanağın seçim durumunu değiştirir
func SetAmenitySelected(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	input := new(AmenitySelectionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	s.Lock()
	defer s.Unlock()
	if err := s.Composer.Draft().SetAmenitySelected(c.Params("amenity_id"), input.Selected); err != nil {
		return entryError(c, err)
	}
	return c.JSON(composerState(s))
}

// RemoveCustomAmenity kullanıcı tanımlı olanağı siler
func RemoveCustomAmenity(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()
	if err := s.Composer.Draft().RemoveCustomAmenity(c.Params("amenity_id")); err != nil {
		return entryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPaymentOptions seçili ödeme seçeneklerini değiştirir. Seçenekler
// taslağın need değeri için yasal olmalıdır.
func SetPaymentOptions(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	input := new(PaymentOptionsInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	s.Lock()
	defer s.Unlock()

	need := s.Composer.Draft().Need
	for _, opt := range input.Options {
		if !catalog.ValidPaymentOption(need, opt) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Payment option not allowed for " + string(need),
			})
		}
	}

	opts := input.Options
	if err := s.Composer.Merge(composer.DraftUpdate{PaymentOptions: &opts}); err != nil {
		return mergeError(c, err)
	}
	return c.JSON(composerState(s))
}
