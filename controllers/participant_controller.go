package controllers

import (
	"errors"
	"net/http"

	"zreyas-photo-service/internal/error/code"
	"zreyas-photo-service/internal/error/response"
	"zreyas-photo-service/services"
	"zreyas-photo-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceParticipantController 定义参与者控制器接口
type InterfaceParticipantController interface {
	CreateParticipant()
	Login()
}

// ParticipantController 参与者控制器
type ParticipantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewParticipantController 创建一个新的参与者控制器
func NewParticipantController(ctx *gin.Context, container *container.ServiceContainer) *ParticipantController {
	return &ParticipantController{
		Ctx:       ctx,
		Container: container,
	}
}

// ParticipantLoginRequest 参与者登录请求
type ParticipantLoginRequest struct {
	UniqueString string `json:"uniqueString" binding:"required" example:"f3b1a9c2d4e5f6a7b8c9d0e1f2a3b4c5"`
	RandomName   string `json:"randomName" binding:"required" example:"swift-amber-japan"`
}

// HandleParticipantFunc 返回一个处理参与者请求的Gin处理函数
func HandleParticipantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewParticipantController(ctx, container)

		switch method {
		case "createParticipant":
			controller.CreateParticipant()
		case "login":
			controller.Login()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "无效的方法",
			})
		}
	}
}

// 1. CreateParticipant 创建参与者账户
// @Summary      创建参与者账户
// @Description  生成随机身份密钥和昵称, 铸造一个新的匿名参与者身份
// @Tags         Participant
// @Accept       json
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /participants/create [post]
func (c *ParticipantController) CreateParticipant() {
	participantService := c.Container.GetService("participant").(services.InterfaceParticipantService)

	participant, err := participantService.CreateParticipant()
	if err != nil {
		if errors.Is(err, services.ErrParticipantCollision) {
			response.Fail(c.Ctx, code.ErrParticipantCollision)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, "Participant account created successfully", gin.H{
		"uniqueString": participant.UniqueString,
		"randomName":   participant.RandomName,
	})
}

// 2. Login 参与者登录
// @Summary      参与者登录
// @Description  通过身份密钥和昵称的精确匹配验证参与者身份
// @Tags         Participant
// @Accept       json
// @Produce      json
// @Param        request body ParticipantLoginRequest true "登录请求参数"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /participants/login [post]
func (c *ParticipantController) Login() {
	var req ParticipantLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Please provide both unique string and random name")
		return
	}

	participantService := c.Container.GetService("participant").(services.InterfaceParticipantService)

	participant, err := participantService.Login(req.UniqueString, req.RandomName)
	if err != nil {
		if errors.Is(err, services.ErrParticipantCredentials) {
			response.Fail(c.Ctx, code.ErrParticipantCredentials)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Login successful", gin.H{
		"uniqueString": participant.UniqueString,
		"randomName":   participant.RandomName,
	})
}
