package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"zreyas-photo-service/internal/error/code"
	"zreyas-photo-service/internal/error/response"
	"zreyas-photo-service/models"
	"zreyas-photo-service/services"
	"zreyas-photo-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceAdminController 定义管理员控制器接口
type InterfaceAdminController interface {
	Login()
	Verify()
	GetAdmins()
	CreateAdmin()
	DeleteAdmin()
}

// AdminController 管理员控制器
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理员控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// AdminLoginRequest 管理员登录请求
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required" example:"superadmin"`
	Password string `json:"password" binding:"required" example:"superadmin123"`
}

// CreateAdminRequest 创建管理员请求
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required" example:"admin01"`
	Password string `json:"password" binding:"required" example:"Admin@123"`
	Role     string `json:"role" binding:"required" example:"admin"`
}

// HandleAdminFunc 返回一个处理管理员请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "verify":
			controller.Verify()
		case "getAdmins":
			controller.GetAdmins()
		case "createAdmin":
			controller.CreateAdmin()
		case "deleteAdmin":
			controller.DeleteAdmin()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "无效的方法",
			})
		}
	}
}

// adminView 序列化管理员信息, 绝不携带密码
func adminView(admin *models.Admin) gin.H {
	return gin.H{
		"id":             admin.ID,
		"username":       admin.Username,
		"role":           admin.Role,
		"is_super_admin": admin.Role == models.RoleSuperAdmin, // 始终由角色推导
		"created_at":     admin.CreatedAt,
	}
}

// 1. Login 管理员登录
// @Summary      管理员登录
// @Description  校验用户名密码并签发24小时有效的JWT令牌
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body AdminLoginRequest true "登录请求参数"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /admin/login [post]
func (c *AdminController) Login() {
	var req AdminLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Please provide both username and password")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	admin, err := adminService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			response.Fail(c.Ctx, code.ErrAdminPasswordIncorrect)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	// 始终以数据库中的角色签发令牌
	token, err := jwtService.GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Admin login successful", gin.H{
		"token": token,
		"admin": adminView(admin),
	})
}

// 2. Verify 校验令牌并返回实时角色
// @Summary      校验管理员令牌
// @Description  重新从数据库读取管理员信息, 返回实时角色而非令牌中缓存的角色
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/verify [get]
// @Security     BearerAuth
func (c *AdminController) Verify() {
	adminID := c.Ctx.GetUint("adminID")

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(adminID)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.Fail(c.Ctx, code.ErrAdminNotFound)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Success", gin.H{"admin": adminView(admin)})
}

// 3. GetAdmins 获取管理员列表
// @Summary      获取管理员列表
// @Description  获取所有管理员账户, 按创建时间倒序, 不含密码
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/all [get]
// @Security     BearerAuth
func (c *AdminController) GetAdmins() {
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)

	admins, err := adminService.GetAllAdmins()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	views := make([]gin.H, 0, len(admins))
	for i := range admins {
		views = append(views, adminView(&admins[i]))
	}

	response.Success(c.Ctx, "Success", views)
}

// 4. CreateAdmin 创建管理员
// @Summary      创建管理员
// @Description  超级管理员创建新的管理员账户
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body CreateAdminRequest true "创建管理员请求参数"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admin/create [post]
// @Security     BearerAuth
func (c *AdminController) CreateAdmin() {
	var req CreateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Username, password, and role are required")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)

	admin, err := adminService.CreateAdmin(req.Username, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			response.Fail(c.Ctx, code.ErrAdminInvalidRole)
		case errors.Is(err, services.ErrAdminExists):
			response.Fail(c.Ctx, code.ErrAdminAlreadyExist)
		default:
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Created(c.Ctx, "Admin created successfully", adminView(admin))
}

// 5. DeleteAdmin 删除管理员
// @Summary      删除管理员
// @Description  超级管理员删除指定管理员账户, 不能删除自己
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "管理员ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/delete/{id} [delete]
// @Security     BearerAuth
func (c *AdminController) DeleteAdmin() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid admin ID")
		return
	}

	requestorID := c.Ctx.GetUint("adminID")

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.DeleteAdmin(uint(id), requestorID); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfDelete):
			response.Fail(c.Ctx, code.ErrAdminSelfDelete)
		case errors.Is(err, services.ErrAdminNotFound):
			response.Fail(c.Ctx, code.ErrAdminNotFound)
		default:
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Success(c.Ctx, "Admin deleted successfully", nil)
}
