package controller

import (
	"membership-be/internal/dto"
	"membership-be/internal/pkg/apperror"
	"membership-be/internal/pkg/serverutils"
	"membership-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICheckoutController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	ValidatePromo(ctx *fiber.Ctx) error
	ApplyPromo(ctx *fiber.Ctx) error
	RemovePromo(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type checkoutController struct {
	checkoutService service.ICheckoutService
}

func NewCheckoutController(checkoutService service.ICheckoutService) ICheckoutController {
	return &checkoutController{
		checkoutService: checkoutService,
	}
}

func (c *checkoutController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/checkout")
	// The promo preview is public: pricing pages call it before login.
	h.Get("promo/validate", c.ValidatePromo)
	h.Use(serverutils.JwtMiddleware)
	h.Post("sessions", c.CreateSession)
	h.Get("sessions/:id", c.ShowSession)
	h.Post("sessions/:id/promo", c.ApplyPromo)
	h.Delete("sessions/:id/promo", c.RemovePromo)
	h.Post("sessions/:id/complete", c.Complete)
}

func (c *checkoutController) CreateSession(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.GetOrCreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create checkout session", res))
}

func (c *checkoutController) ShowSession(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	sessionId, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.checkoutService.GetSession(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show checkout session", res))
}

func (c *checkoutController) ValidatePromo(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return apperror.Validation("code query parameter is required")
	}
	planId, err := uuid.Parse(ctx.Query("plan_id"))
	if err != nil {
		return apperror.Validation("plan_id query parameter is invalid")
	}

	res, err := c.checkoutService.ValidatePromoCode(ctx.Context(), code, planId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success validate promo code", res))
}

func (c *checkoutController) ApplyPromo(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	sessionId, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ApplyPromoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.ApplyPromoCode(ctx.Context(), userId, sessionId, req.Code)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success apply promo code", res))
}

func (c *checkoutController) RemovePromo(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	sessionId, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.checkoutService.RemovePromoCode(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove promo code", res))
}

func (c *checkoutController) Complete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	sessionId, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CompleteSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.Complete(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success complete checkout", res))
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid session id")
	}
	return id, nil
}
