package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/application/services"
	"user-account-api/internal/interface/api/rest/dto/user"
	"user-account-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

// NewUserController mounts the user routes. authMW guards the mutating
// endpoints; pass none to leave them open (role changes ship
// unauthenticated by default, the hook exists for deployments that
// configure a JWT secret).
func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	authMW ...gin.HandlerFunc,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.PATCH(RouteUserSetRole, append(authMW, uc.SetUserRoleHandler)...)
	r.PATCH(RouteUserDeactivate, append(authMW, uc.DeactivateUserHandler)...)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		uc.logger.Error("FindUsers() error", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"message": "Internal server error"},
		)
		return
	}

	c.JSON(http.StatusOK, user.UsersResponse{
		Users: user.ToResponseUsers(users),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, issues := validator.ValidateUserID(c.Param("user_id"))
	if issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid payload",
			"issues":  issues,
		})
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"message": "Internal server error"},
		)
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"message": fmt.Sprintf("User with id %s not found", id)},
		)
		return
	}

	c.JSON(http.StatusOK, user.UserResponse{User: user.ToResponseUser(u)})
}

func (uc *UserController) SetUserRoleHandler(c *gin.Context) {
	id, issues := validator.ValidateUserID(c.Param("user_id"))
	if issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid payload",
			"issues":  issues,
		})
		return
	}

	var req user.SetRoleRequest
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

	role, issues := validator.ValidateRole(req.Role)
	if issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid payload",
			"issues":  issues,
		})
		return
	}

	updated, err := uc.userService.SetUserRole(c.Request.Context(), id, role)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				gin.H{"message": fmt.Sprintf("User with id %s not found", id)},
			)
			return
		}
		uc.logger.Error("SetUserRole() error", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"message": "Internal server error"},
		)
		return
	}

	c.JSON(http.StatusOK, user.UpdateResponse{UpdatedUser: user.ToResponseUser(updated)})
}

func (uc *UserController) DeactivateUserHandler(c *gin.Context) {
	id, issues := validator.ValidateUserID(c.Param("user_id"))
	if issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid payload",
			"issues":  issues,
		})
		return
	}

	updated, err := uc.userService.DeactivateUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				gin.H{"message": fmt.Sprintf("User with id %s not found", id)},
			)
			return
		}
		uc.logger.Error("DeactivateUser() error", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"message": "Internal server error"},
		)
		return
	}

	c.JSON(http.StatusOK, user.UpdateResponse{UpdatedUser: user.ToResponseUser(updated)})
}
