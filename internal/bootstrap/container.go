package bootstrap

import (
	"log"

	"membership-be/internal/config"
	"membership-be/internal/controller"
	"membership-be/internal/pkg/logger"
	"membership-be/internal/repository/unitofwork"
	"membership-be/internal/service"
	pktNats "membership-be/pkg/nats"
	"membership-be/pkg/payment"

	"gorm.io/gorm"
)

type Container struct {
	PlanController         controller.IPlanController
	CheckoutController     controller.ICheckoutController
	SubscriptionController controller.ISubscriptionController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		// Events are best-effort; the checkout core works without the bus.
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	gateway := payment.NewMidtransGateway(cfg.Midtrans.ServerKey, cfg.Midtrans.Production)

	planService := service.NewPlanService(uowFactory)
	entitlementService := service.NewEntitlementService(uowFactory, planService)
	subscriptionService := service.NewSubscriptionService(uowFactory, entitlementService, natsPub, sysLogger)
	checkoutService := service.NewCheckoutService(
		uowFactory,
		planService,
		subscriptionService,
		gateway,
		natsPub,
		sysLogger,
		service.CheckoutConfig{
			SessionTTL:     cfg.Checkout.SessionTTL,
			PaymentTimeout: cfg.Checkout.PaymentTimeout,
		},
	)

	return &Container{
		PlanController:         controller.NewPlanController(planService),
		CheckoutController:     controller.NewCheckoutController(checkoutService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService, entitlementService),
		Logger:                 sysLogger,
	}
}
