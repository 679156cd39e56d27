package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/report-card-api/internal/middleware"
	"github.com/noah-isme/report-card-api/internal/models"
)

// RegisterReportCardRoutes mounts the report card API under group. Every
// route requires a token; writes are limited to staff roles.
func RegisterReportCardRoutes(group gin.IRouter, h *ReportCardHandler, tokens middleware.TokenValidator) {
	staff := middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher)
	anyone := middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher, models.RoleStudent)

	cards := group.Group("/report-cards", middleware.JWT(tokens))
	cards.POST("", staff, h.Create)
	cards.GET("", anyone, h.List)
	cards.GET("/:id", anyone, h.Get)
	cards.GET("/:id/summary", anyone, h.Summary)
	cards.GET("/:id/export", anyone, h.Export)
	cards.PUT("/:id/grades/:subject", staff, h.UpdateGrade)
	cards.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), h.Delete)
}
