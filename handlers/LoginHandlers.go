package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"maintlog/models"
	"maintlog/utils"
)

// AdminLogin godoc
// @Summary      Exchange the admin password for a short-lived token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequest  true  "Admin password"
// @Success      200   {object}  models.LoginResponse
// @Failure      401   {object}  models.APIError
// @Router       /api/login [post]
func AdminLogin(passwordHash, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.APIError{
				Success: false,
				Message: "Invalid request body",
				Error:   err.Error(),
			})
			return
		}

		if passwordHash == "" {
			c.JSON(http.StatusServiceUnavailable, models.APIError{
				Success: false,
				Message: "Admin access is not configured",
			})
			return
		}

		if !utils.ValidatePassword(passwordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, models.APIError{
				Success: false,
				Message: "Invalid password",
			})
			return
		}

		token, err := utils.GenerateAdminJWT(jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.APIError{
				Success: false,
				Message: "Failed to issue token",
				Error:   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, models.LoginResponse{Success: true, Token: token})
	}
}

// AdminAuthMiddleware guards destructive routes with the admin JWT from
// the Authorization header.
func AdminAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIError{
				Success: false,
				Message: "Authorization token required",
			})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		if err := utils.ValidateAdminJWT(tokenStr, jwtSecret); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIError{
				Success: false,
				Message: "Invalid or expired token",
			})
			return
		}

		c.Next()
	}
}
