package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"listora_admin/internal/catalog"
	"listora_admin/internal/composer"
	"listora_admin/internal/gateway"
	"listora_admin/internal/session"
	"listora_admin/pkg/media"
)

var (
	sessions *session.Registry
	gw       *gateway.Client
	staging  media.Store
)

// InitComposerController composer uç noktalarının bağımlılıklarını kurar
func InitComposerController(reg *session.Registry, client *gateway.Client, store media.Store) {
	sessions = reg
	gw = client
	staging = store
}

type OpenComposerInput struct {
	Kind      string `json:"kind"`
	Category  string `json:"category"`
	ListingID string `json:"listing_id"`
}

type SubmitInput struct {
	Confirm bool `json:"confirm"`
}

// composerState oturumun UI'a dönen anlık görüntüsünü kurar
func composerState(s *session.Session) fiber.Map {
	comp := s.Composer
	return fiber.Map{
		"session_id":  s.ID,
		"draft":       comp.Draft(),
		"step":        comp.Step(),
		"step_name":   comp.StepName(),
		"total_steps": comp.TotalSteps(),
		"step_valid":  comp.StepValid(),
		"submittable": comp.Submittable(),
		"submitting":  comp.Submitting(),
	}
}

func getSession(c *fiber.Ctx) (*session.Session, error) {
	s, err := sessions.Get(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Composer session not found",
		})
	}
	return s, nil
}

// OpenComposer yeni bir sihirbaz oturumu açar. listing_id verilirse
// mevcut ilan pazaryeri API'sinden çekilip edit modunda hydrate edilir.
func OpenComposer(c *fiber.Ctx) error {
	input := new(OpenComposerInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var comp *composer.Composer
	if input.ListingID != "" {
		rec, err := gw.GetListing(c.Context(), input.ListingID)
		if err != nil {
			if errors.Is(err, gateway.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Listing not found",
				})
			}
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		comp = composer.NewForEdit(gw, *rec)
	} else {
		kind := catalog.ListingKind(input.Kind)
		if kind == "" {
			kind = catalog.KindProperty
		}
		var err error
		comp, err = composer.New(gw, kind, catalog.Category(input.Category))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown category",
			})
		}
	}

	s := sessions.Open(comp)
	s.Lock()
	defer s.Unlock()
	return c.Status(fiber.StatusCreated).JSON(composerState(s))
}

// GetComposerState oturumun taslağını ve adım durumunu döner
func GetComposerState(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}
	s.Lock()
	defer s.Unlock()
	return c.JSON(composerState(s))
}

// MergeDraft taslağa kısmi güncelleme uygular. Her merge sonrası adım
// kapıları yeniden değerlendirilmiş state döner.
func MergeDraft(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	update := new(composer.DraftUpdate)
	if err := c.BodyParser(update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	s.Lock()
	defer s.Unlock()

	if err := s.Composer.Merge(*update); err != nil {
		return mergeError(c, err)
	}
	return c.JSON(composerState(s))
}

func mergeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, composer.ErrComposerClosed):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{
			"error": "Composer session is closed",
		})
	case errors.Is(err, composer.ErrUnknownCategory):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown category",
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// AdvanceStep geçerli adımın kapısı sağlanıyorsa bir adım ilerler.
// UI ile aynı kapı burada da uygulanır.
func AdvanceStep(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}
	s.Lock()
	defer s.Unlock()

	if !s.Composer.StepValid() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Current step is incomplete",
		})
	}
	s.Composer.Advance()
	return c.JSON(composerState(s))
}

// RetreatStep bir adım geri gider
func RetreatStep(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}
	s.Lock()
	defer s.Unlock()

	s.Composer.Retreat()
	return c.JSON(composerState(s))
}

// SubmitListing son adımdaki açık submit aksiyonudur. Gateway çağrısı
// oturum kilidi bırakılarak yapılır, sonuç üretim sayacıyla eşlenir.
func SubmitListing(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}

	input := new(SubmitInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	s.Lock()
	payload, generation, beginErr := s.Composer.BeginSubmit(input.Confirm)
	var mediaKeys []string
	if beginErr == nil {
		mediaKeys = s.Composer.Draft().MediaKeys()
	}
	s.Unlock()

	if beginErr != nil {
		return submitError(c, beginErr)
	}

	submitErr := gw.SubmitListing(c.Context(), payload)

	s.Lock()
	closed, finishErr := s.Composer.FinishSubmit(generation, submitErr)
	s.Unlock()

	if finishErr != nil {
		// Taslak korunur, kullanıcı düzeltip yeniden deneyebilir
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": finishErr.Error(),
		})
	}
	if !closed {
		return c.Status(fiber.StatusGone).JSON(fiber.Map{
			"error": "Composer session was superseded",
		})
	}

	sessions.Remove(c.Context(), s.ID, mediaKeys)
	return c.JSON(fiber.Map{
		"message": "Listing submitted successfully",
	})
}

func submitError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, composer.ErrConfirmationRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Submission requires confirmation",
		})
	case errors.Is(err, composer.ErrSubmitInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "A submission is already in flight",
		})
	case errors.Is(err, composer.ErrDraftIncomplete):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Draft does not pass all step gates",
		})
	case errors.Is(err, composer.ErrComposerClosed):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{
			"error": "Composer session is closed",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// CancelComposer oturumu kapatır ve taslağı terk eder
func CancelComposer(c *fiber.Ctx) error {
	if err := sessions.Close(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Composer session not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
