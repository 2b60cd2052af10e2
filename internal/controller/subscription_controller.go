package controller

import (
	"membership-be/internal/dto"
	"membership-be/internal/pkg/serverutils"
	"membership-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	MyCurrent(ctx *fiber.Ctx) error
	MyFeatures(ctx *fiber.Ctx) error
	ResolveFeature(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	subscriptionService service.ISubscriptionService
	entitlementService  service.IEntitlementService
}

func NewSubscriptionController(
	subscriptionService service.ISubscriptionService,
	entitlementService service.IEntitlementService,
) ISubscriptionController {
	return &subscriptionController{
		subscriptionService: subscriptionService,
		entitlementService:  entitlementService,
	}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscriptions")
	h.Use(serverutils.JwtMiddleware)
	h.Get("me", c.MyCurrent)
	h.Get("me/features", c.MyFeatures)
	h.Get("me/features/:slug", c.ResolveFeature)
	h.Post("me/cancel", c.Cancel)
}

func (c *subscriptionController) MyCurrent(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	res, err := c.subscriptionService.MyCurrent(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show subscription", res))
}

func (c *subscriptionController) MyFeatures(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	res, err := c.entitlementService.ListFeatures(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list features", res))
}

func (c *subscriptionController) ResolveFeature(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	res, err := c.entitlementService.ResolveFeature(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve feature", res))
}

func (c *subscriptionController) Cancel(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.CancelSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}
	if err := c.subscriptionService.Cancel(ctx.Context(), userId, reason); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cancel subscription", struct{}{}))
}
