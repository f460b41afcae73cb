package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/interface/api/rest/dto/user"
	"user-account-api/internal/interface/api/rest/validator"
)

type RegistrationController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewRegistrationController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
) *RegistrationController {
	rc := &RegistrationController{
		userService: userService,
		logger:      logger,
	}

	r.POST(RouteRegister, rc.RegisterUserHandler)

	return rc
}

func (rc *RegistrationController) RegisterUserHandler(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid payload",
			"issues": []validator.Issue{{
				Path:    "body",
				Message: err.Error(),
				Code:    validator.CodeInvalidType,
			}},
		})
		return
	}

	reg, issues := validator.ValidateRegistration(req)
	if issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid payload",
			"issues":  issues,
		})
		return
	}

	newUser, err := rc.userService.CreateUser(c.Request.Context(), reg)
	if err != nil {
		// storage and hashing detail stays in the logs, the client gets
		// an opaque failure
		rc.logger.Error("CreateUser() error", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"message": "Internal server error"},
		)
		return
	}

	c.JSON(http.StatusCreated, user.RegisterResponse{
		NewUser: user.ToResponseUser(newUser),
	})
}
