package routes

import (
	"log"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/config"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/controllers"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/middlewares"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB

	// services
	ledger := services.NewActivityLedger(db)
	score := services.NewScoreService(db)
	sobriety := services.NewSobrietyService(db, ledger)
	devotionals := services.NewDevotionalService(db, ledger)
	chat := services.NewChatService(db)
	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(db)
	if err != nil {
		log.Printf("push disabled: %v", err)
	}
	services.InitAlertDeps(db, hub, push)

	// controllers with dependencies
	activityCtl := controllers.NewActivityController(ledger, score, hub)
	moodCtl := controllers.NewMoodController(ledger, score, hub)
	progressCtl := controllers.NewProgressController(score, sobriety)
	sobrietyCtl := controllers.NewSobrietyController(sobriety)
	devotionalCtl := controllers.NewDevotionalController(devotionals)
	chatCtl := controllers.NewChatController(chat)
	careCtl := controllers.NewCareController(score, sobriety)
	rtCtl := controllers.NewRealtimeController(hub)
	deviceCtl := controllers.NewDeviceController(push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.POST("/activities", activityCtl.LogActivity)
		user.POST("/activities/reset", activityCtl.ResetWindow)
		user.POST("/checkin", moodCtl.CheckIn)

		user.GET("/progress", progressCtl.GetProgress)
		user.GET("/progress/medals", progressCtl.ListMedals)

		user.POST("/sobriety", sobrietyCtl.Declare)

		user.GET("/devotionals/today", devotionalCtl.Today)
		user.POST("/devotionals/complete", devotionalCtl.Complete)

		user.POST("/chat", chatCtl.Send)
		user.GET("/chat/:conversationId", chatCtl.History)

		user.GET("/ws", rtCtl.ProgressWS)
		user.POST("/devices", deviceCtl.Register)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.GET("/notifications", controllers.ListAlerts)
	}

	// Professionals and family follow dependents read-only
	care := r.Group("/care")
	care.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleProfessional, models.RoleFamily))
	{
		care.GET("/dependents/:id/progress", careCtl.DependentProgress)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", controllers.ListUsers)
	}

	return r
}
