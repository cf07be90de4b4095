package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/lenslink/photo-marketplace/internal/audit"
	"github.com/lenslink/photo-marketplace/internal/config"
	"github.com/lenslink/photo-marketplace/internal/handlers"
	infraRepo "github.com/lenslink/photo-marketplace/internal/infra/repository"
	"github.com/lenslink/photo-marketplace/internal/middleware"
	"github.com/lenslink/photo-marketplace/internal/storage"
	ucApplication "github.com/lenslink/photo-marketplace/internal/usecase/application"
	ucBooking "github.com/lenslink/photo-marketplace/internal/usecase/booking"
	ucPayment "github.com/lenslink/photo-marketplace/internal/usecase/payment"
	ucReview "github.com/lenslink/photo-marketplace/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	summaryCache := ucReview.NewSummaryCache(redisClient)

	imageStore := storage.NewS3Storage(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, cfg.Timezone)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	selectApplicationUC := ucBooking.NewSelectApplication(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher, cfg.Timezone)

	applyUC := ucApplication.NewApply(bookingRepo, auditDispatcher)
	listApplicationsUC := ucApplication.NewListApplications(bookingRepo)

	payUC := ucPayment.NewPay(bookingRepo, auditDispatcher, cfg.Timezone)
	getPaymentUC := ucPayment.NewGetPayment(bookingRepo)

	postReviewUC := ucReview.NewPostReview(bookingRepo, auditDispatcher, summaryCache)
	listReviewsUC := ucReview.NewListByPhotographer(bookingRepo)
	reviewSummaryUC := ucReview.NewGetSummary(bookingRepo, summaryCache)
	bookingReviewUC := ucReview.NewGetByBooking(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		getBookingUC,
		selectApplicationUC,
		cancelBookingUC,
	)

	applicationHandler := handlers.NewApplicationHandler(applyUC, listApplicationsUC)
	paymentHandler := handlers.NewPaymentHandler(payUC, getPaymentUC)
	reviewHandler := handlers.NewReviewHandler(
		postReviewUC,
		listReviewsUC,
		reviewSummaryUC,
		bookingReviewUC,
	)

	portfolioHandler := handlers.NewPortfolioHandler(bookingRepo, imageStore, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC READS
		// ------------------------------
		api.GET("/bookings", bookingHandler.List)
		api.GET("/bookings/:id", bookingHandler.Get)

		api.GET("/reviews/photographer/:id", reviewHandler.ListByPhotographer)
		api.GET("/reviews/summary/:id", reviewHandler.Summary)

		api.GET("/portfolio/:photographerId", portfolioHandler.List)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			clientOnly := middleware.RequireRoles("client", "admin")
			photographerOnly := middleware.RequireRoles("photographer", "admin")

			secured.POST("/bookings", clientOnly, bookingHandler.Create)
			secured.POST("/bookings/:id/select", clientOnly, bookingHandler.Select)
			secured.POST("/bookings/:id/cancel", clientOnly, bookingHandler.Cancel)

			secured.POST("/bookings/:id/applications", photographerOnly, applicationHandler.Apply)
			secured.GET("/bookings/:id/applications", clientOnly, applicationHandler.List)

			// ------------------------------
			// PAYMENTS
			// ------------------------------
			secured.POST("/payments/:bookingId/pay", clientOnly, paymentHandler.Pay)
			secured.GET("/payments/:bookingId", paymentHandler.Get)

			// ------------------------------
			// REVIEWS
			// ------------------------------
			secured.POST("/reviews/:bookingId", clientOnly, reviewHandler.Post)
			secured.GET("/reviews/booking/:bookingId", reviewHandler.GetByBooking)

			// ------------------------------
			// PORTFOLIO
			// ------------------------------
			secured.POST("/portfolio/upload", photographerOnly, portfolioHandler.Upload)
			secured.DELETE("/portfolio/:id", photographerOnly, portfolioHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			secured.GET("/admin/audit-logs", middleware.RequireRoles("admin"), auditLogsHandler.List)
		}
	}
}
