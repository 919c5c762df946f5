package handlers

import (
	"bytes"
	"errors"
	"io"
	"log"
	"mime/multipart"

	"botaniq/internal/middleware"
	"botaniq/internal/models"
	"botaniq/internal/services"
	"botaniq/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// avatarField is the multipart field carrying the profile picture.
const avatarField = "foto"

// maxFieldBytes bounds a single text field of the profile form.
const maxFieldBytes = 4096

var (
	errUploadTooLarge = errors.New("upload exceeds the size limit")
	errFieldTooLarge  = errors.New("form field exceeds the size limit")
)

// ProfileHandler handles HTTP requests for the caller's own profile.
type ProfileHandler struct {
	service        *services.ProfileService
	maxUploadBytes int64
}

// NewProfileHandler creates a new ProfileHandler. maxUploadBytes bounds the whole
// multipart body of a profile update.
func NewProfileHandler(service *services.ProfileService, maxUploadBytes int) *ProfileHandler {
	return &ProfileHandler{service: service, maxUploadBytes: int64(maxUploadBytes)}
}

// RegisterRoutes registers the profile routes; both need a token.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/profile", auth, h.HandleGetProfile)
	router.Put("/users/:id", auth, h.HandleUpdateProfile)
}

// HandleGetProfile returns the authenticated user's profile.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "authentication required")
	}

	user, err := h.service.GetProfile(c.UserContext(), principal.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "user not found")
		}
		log.Printf("Error getting profile of %s: %v", principal.ID, err)
		return fail(c, fiber.StatusInternalServerError, "could not retrieve profile")
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   user,
	})
}

// HandleUpdateProfile edits the profile from a multipart form. Fields absent from
// the form keep their stored values; a "foto" file replaces the avatar.
//
// The form is read part by part from the request stream and the avatar goes
// straight to the staging area, so the upload is never held in memory.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "authentication required")
	}
	userID := c.Params("id")

	boundary := string(c.Request().Header.MultipartFormBoundary())
	if boundary == "" {
		return fail(c, fiber.StatusBadRequest, "request must be multipart/form-data")
	}

	var src io.Reader = c.Context().RequestBodyStream()
	if src == nil {
		src = bytes.NewReader(c.Body())
	}
	body := newCappedReader(src, h.maxUploadBytes)

	changes, staged, err := h.readProfileForm(multipart.NewReader(body, boundary), principal, userID)
	if err != nil {
		if staged != nil {
			if discardErr := staged.Discard(); discardErr != nil {
				log.Printf("Failed to discard staged avatar %s: %v", staged.Name, discardErr)
			}
		}
		switch {
		case body.exceeded || errors.Is(err, errUploadTooLarge):
			return fail(c, fiber.StatusRequestEntityTooLarge, "payload too large")
		case errors.Is(err, services.ErrNotFoundOrForbidden):
			return fail(c, fiber.StatusNotFound, "user not found or access denied")
		}
		log.Printf("Error reading profile form for %s: %v", userID, err)
		return fail(c, fiber.StatusBadRequest, "malformed multipart form")
	}

	user, err := h.service.UpdateProfile(c.UserContext(), principal, userID, changes, staged)
	if err != nil {
		if errors.Is(err, services.ErrNotFoundOrForbidden) {
			return fail(c, fiber.StatusNotFound, "user not found or access denied")
		}
		log.Printf("Error updating profile of %s: %v", userID, err)
		return fail(c, fiber.StatusInternalServerError, "an internal server error occurred")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "user updated successfully",
		"data":    user,
	})
}

// readProfileForm walks the form parts. Editable text fields are collected, the
// first value of each winning; the first "foto" file is staged as it streams in.
// A staged file is returned even alongside an error so the caller can discard it.
func (h *ProfileHandler) readProfileForm(form *multipart.Reader, principal models.Principal, userID string) (models.ProfileUpdate, *storage.StagedFile, error) {
	var changes models.ProfileUpdate
	fields := map[string]**string{
		"nama":          &changes.Name,
		"nama_belakang": &changes.LastName,
		"telepon":       &changes.Phone,
		"alamat":        &changes.Address,
		"negara":        &changes.Country,
		"kota":          &changes.City,
	}

	var staged *storage.StagedFile
	for {
		part, err := form.NextPart()
		if errors.Is(err, io.EOF) {
			return changes, staged, nil
		}
		if err != nil {
			return changes, staged, err
		}

		name := part.FormName()
		switch {
		case name == avatarField && part.FileName() != "":
			if staged != nil {
				break
			}
			staged, err = h.service.StageAvatar(principal, userID, services.AvatarUpload{
				Filename: part.FileName(),
				Content:  part,
			})
			if err != nil {
				part.Close()
				return changes, nil, err
			}
		case fields[name] != nil && part.FileName() == "":
			if *fields[name] != nil {
				break
			}
			value, err := readField(part)
			if err != nil {
				part.Close()
				return changes, staged, err
			}
			*fields[name] = &value
		}
		part.Close()
	}
}

func readField(part *multipart.Part) (string, error) {
	value, err := io.ReadAll(io.LimitReader(part, maxFieldBytes+1))
	if err != nil {
		return "", err
	}
	if len(value) > maxFieldBytes {
		return "", errFieldTooLarge
	}
	return string(value), nil
}

// cappedReader fails with errUploadTooLarge once more than limit bytes have been read.
type cappedReader struct {
	r        io.Reader
	limit    int64
	read     int64
	exceeded bool
}

func newCappedReader(r io.Reader, limit int64) *cappedReader {
	return &cappedReader{r: io.LimitReader(r, limit+1), limit: limit}
}

func (r *cappedReader) Read(p []byte) (int, error) {
	if r.exceeded {
		return 0, errUploadTooLarge
	}
	n, err := r.r.Read(p)
	r.read += int64(n)
	if r.read > r.limit {
		r.exceeded = true
		return n, errUploadTooLarge
	}
	return n, err
}
