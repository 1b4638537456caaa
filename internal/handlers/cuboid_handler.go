package handlers

import (
	"Bagged/internal/dto"
	"Bagged/internal/mapper"
	"Bagged/internal/services"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type CuboidHandler struct {
	service  services.CuboidService
	validate *validator.Validate
}

func NewCuboidHandler(service services.CuboidService) *CuboidHandler {
	return &CuboidHandler{service: service, validate: validator.New()}
}

func (h *CuboidHandler) ListCuboids(c *fiber.Ctx) error {
	ids, err := parseIDs(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	cuboids, err := h.service.ListCuboids(ids)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(cuboids)
}

func (h *CuboidHandler) GetCuboidByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid cuboid ID"})
	}
	cuboid, err := h.service.GetCuboidByID(id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToCuboidVolumeDTO(id, cuboid))
}

func (h *CuboidHandler) CreateCuboid(c *fiber.Ctx) error {
	var req dto.CuboidWriteDTO
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}
	cuboid, err := h.service.CreateCuboid(req.Width, req.Height, req.Depth, req.BagID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(cuboid)
}

func (h *CuboidHandler) UpdateCuboid(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid cuboid ID"})
	}
	var req dto.CuboidWriteDTO
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}
	cuboid, err := h.service.UpdateCuboid(id, req.Width, req.Height, req.Depth, req.BagID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(cuboid)
}

func (h *CuboidHandler) DeleteCuboid(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid cuboid ID"})
	}
	if err := h.service.DeleteCuboid(id); err != nil {
		return writeServiceError(c, err)
	}
	return c.SendStatus(http.StatusOK)
}
