package controller

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"listora_admin/internal/composer"
	"listora_admin/internal/session"
	"listora_admin/pkg/media"
)

const MaxListingPhotos = 16

// UploadComposerMedia aktif oturuma medya yükler. slot değerleri:
// front, photo, floor-plan, video. Görseller doğrulanıp yeniden encode
// edilir, submit edilene kadar staging alanında bekler.
func UploadComposerMedia(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}
	slot := c.Params("slot")

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if slot == "video" {
		return uploadVideo(c, s, file)
	}

	if slot != "front" && slot != "photo" && slot != "floor-plan" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown media slot",
		})
	}

	if err := media.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Fotoğraf sayısı kontrolü
	if slot == "photo" {
		s.Lock()
		count := len(s.Composer.Draft().Photos)
		s.Unlock()
		if count >= MaxListingPhotos {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Maximum photo limit reached",
			})
		}
	}

	buf, contentType, err := media.ProcessImage(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	mediaID := uuid.NewString()
	key := s.ID + "/" + mediaID + filepath.Ext(strings.ToLower(file.Filename))
	if err := staging.Save(c.Context(), key, contentType, buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not stage file",
		})
	}

	ref := composer.MediaRef{
		ID:          mediaID,
		FileName:    filepath.Base(file.Filename),
		ContentType: contentType,
		Key:         key,
		Size:        int64(buf.Len()),
	}

	s.Lock()
	defer s.Unlock()
	switch slot {
	case "front":
		replaceStagedRef(c, s.Composer.Draft().FrontImage)
		s.Composer.Draft().SetFrontImage(&ref)
	case "photo":
		s.Composer.Draft().AddPhoto(ref)
	case "floor-plan":
		s.Composer.Draft().AddFloorPlan(ref)
	}

	return c.Status(fiber.StatusCreated).JSON(ref)
}

func uploadVideo(c *fiber.Ctx, s *session.Session, file *multipart.FileHeader) error {
	if err := media.ValidateVideo(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not read file",
		})
	}
	defer src.Close()

	mediaID := uuid.NewString()
	key := s.ID + "/" + mediaID + filepath.Ext(strings.ToLower(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if err := staging.Save(c.Context(), key, contentType, src); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not stage file",
		})
	}

	ref := composer.MediaRef{
		ID:          mediaID,
		FileName:    filepath.Base(file.Filename),
		ContentType: contentType,
		Key:         key,
		Size:        file.Size,
	}

	s.Lock()
	defer s.Unlock()
	replaceStagedRef(c, s.Composer.Draft().Video)
	s.Composer.Draft().SetVideo(&ref)

	return c.Status(fiber.StatusCreated).JSON(ref)
}

// replaceStagedRef değiştirilen tekil medyanın staged kopyasını temizler
func replaceStagedRef(c *fiber.Ctx, old *composer.MediaRef) {
	if old != nil && old.Key != "" {
		staging.Remove(c.Context(), old.Key)
	}
}

// DeleteComposerMedia taslaktaki medya referansını ID ile kaldırır ve
// varsa staged kopyasını siler. Kaldırılan medya bir sonraki assemble'da
// payload'dan kaybolur.
func DeleteComposerMedia(c *fiber.Ctx) error {
	s, err := getSession(c)
	if err != nil {
		return err
	}
	mediaID := c.Params("media_id")

	s.Lock()
	key, found := removeMediaRef(s.Composer.Draft(), mediaID)
	s.Unlock()

	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Media not found",
		})
	}
	if key != "" {
		staging.Remove(c.Context(), key)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// removeMediaRef referansı hangi slotta olursa olsun bulup kaldırır
func removeMediaRef(d *composer.ListingDraft, mediaID string) (key string, found bool) {
	if d.FrontImage != nil && d.FrontImage.ID == mediaID {
		key = d.FrontImage.Key
		d.SetFrontImage(nil)
		return key, true
	}
	if d.Video != nil && d.Video.ID == mediaID {
		key = d.Video.Key
		d.SetVideo(nil)
		return key, true
	}
	for _, p := range d.Photos {
		if p.ID == mediaID {
			d.RemovePhoto(mediaID)
			return p.Key, true
		}
	}
	for _, fp := range d.FloorPlans {
		if fp.ID == mediaID {
			d.RemoveFloorPlan(mediaID)
			return fp.Key, true
		}
	}
	return "", false
}
