package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"fileuploader/internal/service"
)

const carEntity = "car"

// CreateCar handles POST /api/cars.
//
// @Summary Create a car
// @Tags cars
// @Accept json
// @Produce json
// @Param car body carPayload true "Car without id"
// @Success 201 {object} model.Car
// @Failure 400 {object} errorPayload
// @Router /api/cars [post]
func CreateCar(svc service.CarService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p carPayload
		if err := bind(c, &p, true); err != nil {
			return writeServiceError(c, err)
		}
		car, err := svc.Create(c.UserContext(), p.toModel())
		if err != nil {
			return writeServiceError(c, err)
		}
		alert.created(c, carEntity, *car.ID)
		c.Location("/api/cars/" + strconv.FormatInt(*car.ID, 10))
		return c.Status(fiber.StatusCreated).JSON(car)
	}
}

// UpdateCar handles PUT /api/cars/:id.
//
// @Summary Replace a car
// @Tags cars
// @Accept json
// @Produce json
// @Param id path int true "Car id"
// @Param car body carPayload true "Car"
// @Success 200 {object} model.Car
// @Failure 400 {object} errorPayload
// @Router /api/cars/{id} [put]
func UpdateCar(svc service.CarService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		var p carPayload
		if err := bind(c, &p, true); err != nil {
			return writeServiceError(c, err)
		}
		car, err := svc.Update(c.UserContext(), id, p.toModel())
		if err != nil {
			return writeUpdateError(c, err)
		}
		alert.updated(c, carEntity, id)
		return c.JSON(car)
	}
}

// PatchCar handles PATCH /api/cars/:id with a JSON merge patch.
//
// @Summary Partially update a car
// @Tags cars
// @Accept json
// @Accept application/merge-patch+json
// @Produce json
// @Param id path int true "Car id"
// @Param car body carPayload true "Fields to change, with id"
// @Success 200 {object} model.Car
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /api/cars/{id} [patch]
func PatchCar(svc service.CarService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		if !isMergePatch(c) {
			return fiber.ErrUnsupportedMediaType
		}
		var p carPayload
		if err := bind(c, &p, false); err != nil {
			return writeServiceError(c, err)
		}
		car, err := svc.PartialUpdate(c.UserContext(), id, p.toPatch())
		if err != nil {
			return writeServiceError(c, err)
		}
		alert.updated(c, carEntity, id)
		return c.JSON(car)
	}
}

// GetCar handles GET /api/cars/:id.
//
// @Summary Get a car with its documents
// @Tags cars
// @Produce json
// @Param id path int true "Car id"
// @Success 200 {object} model.Car
// @Failure 404 {object} errorPayload
// @Router /api/cars/{id} [get]
func GetCar(svc service.CarService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		car, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(car)
	}
}

// ListCars handles GET /api/cars.
//
// @Summary List cars
// @Tags cars
// @Produce json
// @Success 200 {array} model.Car
// @Router /api/cars [get]
func ListCars(svc service.CarService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cars, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cars)
	}
}

// DeleteCar handles DELETE /api/cars/:id.
//
// @Summary Delete a car
// @Tags cars
// @Param id path int true "Car id"
// @Success 204
// @Router /api/cars/{id} [delete]
func DeleteCar(svc service.CarService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		alert.deleted(c, carEntity, id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
