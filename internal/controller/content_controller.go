package controller

import (
	"github.com/gofiber/fiber/v2"

	"listora_admin/internal/gateway"
)

var contentGW *gateway.Client

// InitContentController içerik yönetimi uç noktalarının bağımlılıklarını kurar
func InitContentController(client *gateway.Client) {
	contentGW = client
}

// Partnerler

func ListPartners(c *fiber.Ctx) error {
	partners, err := contentGW.ListPartners(c.Context())
	if err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(partners)
}

func CreatePartner(c *fiber.Ctx) error {
	input := new(gateway.Partner)
	if err := c.BodyParser(input); err != nil || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	partner, err := contentGW.CreatePartner(c.Context(), *input)
	if err != nil {
		return gatewayError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(partner)
}

func UpdatePartner(c *fiber.Ctx) error {
	input := new(gateway.Partner)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := contentGW.UpdatePartner(c.Context(), c.Params("id"), *input); err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Partner updated"})
}

func DeletePartner(c *fiber.Ctx) error {
	if err := contentGW.DeletePartner(c.Context(), c.Params("id")); err != nil {
		return gatewayError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Ekip üyeleri

func ListTeamMembers(c *fiber.Ctx) error {
	members, err := contentGW.ListTeamMembers(c.Context())
	if err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(members)
}

func CreateTeamMember(c *fiber.Ctx) error {
	input := new(gateway.TeamMember)
	if err := c.BodyParser(input); err != nil || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	member, err := contentGW.CreateTeamMember(c.Context(), *input)
	if err != nil {
		return gatewayError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func UpdateTeamMember(c *fiber.Ctx) error {
	input := new(gateway.TeamMember)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := contentGW.UpdateTeamMember(c.Context(), c.Params("id"), *input); err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Team member updated"})
}

func DeleteTeamMember(c *fiber.Ctx) error {
	if err := contentGW.DeleteTeamMember(c.Context(), c.Params("id")); err != nil {
		return gatewayError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// İş ilanları

func ListJobs(c *fiber.Ctx) error {
	jobs, err := contentGW.ListJobs(c.Context())
	if err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(jobs)
}

func CreateJob(c *fiber.Ctx) error {
	input := new(gateway.JobPost)
	if err := c.BodyParser(input); err != nil || input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}
	job, err := contentGW.CreateJob(c.Context(), *input)
	if err != nil {
		return gatewayError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func UpdateJob(c *fiber.Ctx) error {
	input := new(gateway.JobPost)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := contentGW.UpdateJob(c.Context(), c.Params("id"), *input); err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job updated"})
}

func DeleteJob(c *fiber.Ctx) error {
	if err := contentGW.DeleteJob(c.Context(), c.Params("id")); err != nil {
		return gatewayError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Politika sayfaları

func ListPolicyPages(c *fiber.Ctx) error {
	pages, err := contentGW.ListPolicyPages(c.Context())
	if err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(pages)
}

func CreatePolicyPage(c *fiber.Ctx) error {
	input := new(gateway.PolicyPage)
	if err := c.BodyParser(input); err != nil || input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}
	page, err := contentGW.CreatePolicyPage(c.Context(), *input)
	if err != nil {
		return gatewayError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

func UpdatePolicyPage(c *fiber.Ctx) error {
	input := new(gateway.PolicyPage)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := contentGW.UpdatePolicyPage(c.Context(), c.Params("id"), *input); err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Policy page updated"})
}

func DeletePolicyPage(c *fiber.Ctx) error {
	if err := contentGW.DeletePolicyPage(c.Context(), c.Params("id")); err != nil {
		return gatewayError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
