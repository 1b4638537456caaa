package handlers

import (
	"Bagged/internal/services"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseIDs accepts ?ids=1&ids=2, ?ids[]=1&ids[]=2 and ?ids=1,2.
func parseIDs(c *fiber.Ctx) ([]uint, error) {
	args := c.Context().QueryArgs()
	values := append(args.PeekMulti("ids"), args.PeekMulti("ids[]")...)
	ids := make([]uint, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(string(value), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid id %q", part)
			}
			ids = append(ids, uint(id))
		}
	}
	return ids, nil
}

// parseBody decodes and validates the request body, writing the 400 response itself.
// It reports whether the handler may continue.
func parseBody(c *fiber.Ctx, validate *validator.Validate, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "error": err.Error()})
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}

func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCuboidNotFound), errors.Is(err, services.ErrBagNotFound):
		return c.SendStatus(http.StatusNotFound)
	case errors.Is(err, services.ErrVolumeOverflow):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Dimensions are too large"})
	case errors.Is(err, services.ErrInsufficientCapacity):
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Insufficient capacity in bag"})
	case errors.Is(err, services.ErrBagNotEmpty):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"message": "Bag is not empty"})
	default:
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
