package router

import (
	"log"
	"time"

	"collably/config"
	"collably/internal/domain"
	"collably/internal/handler"
	"collably/internal/middleware"
	"collably/internal/repository"
	"collably/internal/service"
	"collably/internal/ws"
	"collably/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, media cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	collabRepo := repository.NewCollaborationRepository(db)
	contractRepo := repository.NewContractRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	deliverableRepo := repository.NewDeliverableRepository(db)
	escrowRepo := repository.NewEscrowRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	collabHub := ws.NewCollabHub()

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	collabSvc := service.NewCollaborationService(cfg, db)
	contractSvc := service.NewContractService(db)
	milestoneSvc := service.NewMilestoneService(db)
	deliverableSvc := service.NewDeliverableService(db)
	walletSvc := service.NewWalletService(cfg, db)
	escrowSvc := service.NewEscrowService(db)
	invoiceSvc := service.NewInvoiceService(db)
	payoutSvc := service.NewPayoutMethodService(db)

	if media == nil {
		log.Printf("[Media] uploads disabled: set CLOUDINARY_* to enable")
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	campaignHandler := handler.NewCampaignHandler(campaignRepo)
	collabHandler := handler.NewCollaborationHandler(collabSvc, collabRepo)
	contractHandler := handler.NewContractHandler(contractSvc, collabSvc, contractRepo)
	milestoneHandler := handler.NewMilestoneHandler(milestoneSvc, collabSvc, milestoneRepo)
	deliverableHandler := handler.NewDeliverableHandler(deliverableSvc, collabSvc, deliverableRepo)
	walletHandler := handler.NewWalletHandler(walletSvc)
	escrowHandler := handler.NewEscrowHandler(escrowSvc, collabSvc, escrowRepo)
	invoiceHandler := handler.NewInvoiceHandler(invoiceSvc, collabSvc, invoiceRepo)
	payoutHandler := handler.NewPayoutMethodHandler(payoutSvc)
	messageHandler := handler.NewMessageHandler(messageRepo, collabSvc, collabHub)
	messageWSHandler := handler.NewMessageWSHandler(cfg, collabSvc, messageRepo, collabHub)
	uploadHandler := handler.NewUploadHandler(media)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
			authGroup.POST("/google/token", googleOAuthHandler.Token)
		}

		campaigns := api.Group("/campaigns")
		campaigns.Use(authMw)
		{
			campaigns.POST("", middleware.RequireRole(domain.RoleBrand), campaignHandler.Create)
			campaigns.GET("", middleware.RequireRole(domain.RoleBrand), campaignHandler.ListMine)
			campaigns.GET("/:id", campaignHandler.Get)
		}

		collabs := api.Group("/collaborations")
		collabs.Use(authMw)
		{
			collabs.POST("", middleware.RequireRole(domain.RoleBrand), collabHandler.Create)
			collabs.GET("", collabHandler.List)
			collabs.GET("/:id", collabHandler.Get)
			collabs.POST("/:id/transition", collabHandler.Transition)
			collabs.GET("/:id/history", collabHandler.History)

			collabs.POST("/:id/contract", contractHandler.Generate)
			collabs.GET("/:id/contract", contractHandler.Get)
			collabs.POST("/:id/contract/sign", contractHandler.Sign)

			collabs.POST("/:id/milestones", middleware.RequireRole(domain.RoleBrand, domain.RoleAdmin), milestoneHandler.CreateBatch)
			collabs.GET("/:id/milestones", milestoneHandler.List)

			collabs.POST("/:id/deliverables", deliverableHandler.Create)
			collabs.GET("/:id/deliverables", deliverableHandler.List)

			collabs.GET("/:id/messages", messageHandler.List)
			collabs.POST("/:id/messages", messageHandler.Send)
		}

		milestones := api.Group("/milestones")
		milestones.Use(authMw)
		{
			milestones.PATCH("/:id/status", milestoneHandler.UpdateStatus)
		}

		deliverables := api.Group("/deliverables")
		deliverables.Use(authMw)
		{
			deliverables.POST("/:id/submit", middleware.RequireRole(domain.RoleInfluencer, domain.RoleAdmin), deliverableHandler.Submit)
			deliverables.POST("/:id/review", middleware.RequireRole(domain.RoleBrand, domain.RoleAdmin), deliverableHandler.Review)
			deliverables.GET("/:id/versions", deliverableHandler.Versions)
		}

		wallet := api.Group("/wallet")
		wallet.Use(authMw)
		{
			wallet.GET("/balance", walletHandler.Balance)
			wallet.POST("/deposit", walletHandler.Deposit)
			wallet.POST("/withdraw", walletHandler.Withdraw)
			wallet.GET("/transactions", walletHandler.Transactions)
		}

		escrow := api.Group("/escrow")
		escrow.Use(authMw)
		{
			escrow.POST("", middleware.RequireRole(domain.RoleBrand, domain.RoleAdmin), escrowHandler.Create)
			escrow.GET("/:id", escrowHandler.Get)
			escrow.POST("/:id/fund", escrowHandler.Fund)
			escrow.POST("/:id/release", escrowHandler.Release)
			escrow.POST("/:id/refund", middleware.AdminRequired(), escrowHandler.Refund)
			escrow.GET("/:id/releases", escrowHandler.Releases)
		}

		invoices := api.Group("/invoices")
		invoices.Use(authMw)
		{
			invoices.POST("", invoiceHandler.Create)
			invoices.GET("", invoiceHandler.List)
			invoices.GET("/:id", invoiceHandler.Get)
			invoices.POST("/:id/send", invoiceHandler.Send)
			invoices.POST("/:id/pay", invoiceHandler.MarkPaid)
		}

		payouts := api.Group("/payout-methods")
		payouts.Use(authMw)
		{
			payouts.POST("", payoutHandler.Add)
			payouts.GET("", payoutHandler.List)
			payouts.PUT("/:id/default", payoutHandler.SetDefault)
			payouts.DELETE("/:id", payoutHandler.Delete)
			payouts.PUT("/:id/verify", middleware.AdminRequired(), payoutHandler.Verify)
		}

		api.POST("/uploads", authMw, uploadHandler.Upload)
	}

	r.GET("/ws/collaborations/:id", messageWSHandler.Serve)

	return r
}
