package handlers

import (
	"Bagged/internal/dto"
	"Bagged/internal/mapper"
	"Bagged/internal/services"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type BagHandler struct {
	service  services.BagService
	validate *validator.Validate
}

func NewBagHandler(service services.BagService) *BagHandler {
	return &BagHandler{service: service, validate: validator.New()}
}

func (h *BagHandler) CreateBag(c *fiber.Ctx) error {
	var req dto.BagWriteDTO
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}
	bag, err := h.service.CreateBag(req.Title, req.Width, req.Height, req.Depth)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToBagGetDTO(bag))
}

func (h *BagHandler) GetBagByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid bag ID"})
	}
	bag, err := h.service.GetBagByID(id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(mapper.ToBagGetDTO(bag))
}

func (h *BagHandler) ListBags(c *fiber.Ctx) error {
	bags, err := h.service.GetBags()
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(mapper.ToBagGetDTOs(bags))
}

func (h *BagHandler) DeleteBag(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid bag ID"})
	}
	if err := h.service.DeleteBag(id); err != nil {
		return writeServiceError(c, err)
	}
	return c.SendStatus(http.StatusOK)
}
