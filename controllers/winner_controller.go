package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"zreyas-photo-service/internal/error/code"
	"zreyas-photo-service/internal/error/response"
	"zreyas-photo-service/services"
	"zreyas-photo-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceWinnerController 定义获奖控制器接口
type InterfaceWinnerController interface {
	RemoveWinner()
	ClaimPrize()
	EditClaim()
	GetWinnerByPhoto()
	GetAllWinners()
	GetLeaderboard()
}

// WinnerController 获奖控制器
type WinnerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewWinnerController 创建一个新的获奖控制器
func NewWinnerController(ctx *gin.Context, container *container.ServiceContainer) *WinnerController {
	return &WinnerController{
		Ctx:       ctx,
		Container: container,
	}
}

// RemoveWinnerRequest 撤销获奖状态请求
type RemoveWinnerRequest struct {
	AdminUsername string `json:"adminUsername" binding:"required" example:"superadmin"`
}

// ClaimRequest 领奖/修改领奖信息请求
type ClaimRequest struct {
	PhotoID                 uint   `json:"photoId" binding:"required" example:"1"`
	ParticipantUniqueString string `json:"participantUniqueString" binding:"required"`
	Name                    string `json:"name" binding:"required" example:"Jane"`
	Sic                     string `json:"sic" binding:"required" example:"S1"`
	Year                    string `json:"year" binding:"required" example:"2"`
}

// HandleWinnerFunc 返回一个处理获奖请求的Gin处理函数
func HandleWinnerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewWinnerController(ctx, container)

		switch method {
		case "removeWinner":
			controller.RemoveWinner()
		case "claimPrize":
			controller.ClaimPrize()
		case "editClaim":
			controller.EditClaim()
		case "getWinnerByPhoto":
			controller.GetWinnerByPhoto()
		case "getAllWinners":
			controller.GetAllWinners()
		case "getLeaderboard":
			controller.GetLeaderboard()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "无效的方法",
			})
		}
	}
}

// mapClaimError 领奖与修改共用的错误映射
func (c *WinnerController) mapClaimError(err error) {
	switch {
	case errors.Is(err, services.ErrPhotoNotFound):
		response.Fail(c.Ctx, code.ErrPhotoNotFound)
	case errors.Is(err, services.ErrPhotoNotOwner):
		response.FailWithMessage(c.Ctx, code.ErrPhotoNotOwner, "This photo does not belong to you")
	case errors.Is(err, services.ErrNotWinner):
		response.Fail(c.Ctx, code.ErrWinnerNotDeclared)
	case errors.Is(err, services.ErrWinnerNotFound):
		response.Fail(c.Ctx, code.ErrWinnerNotFound)
	case errors.Is(err, services.ErrWinnerAlreadyClaimed):
		response.Fail(c.Ctx, code.ErrWinnerAlreadyClaimed)
	case errors.Is(err, services.ErrWinnerNotClaimed):
		response.Fail(c.Ctx, code.ErrWinnerNotClaimed)
	default:
		response.ServerError(c.Ctx)
	}
}

// 1. RemoveWinner 撤销获奖状态
// @Summary      撤销获奖状态
// @Description  超级管理员撤销照片的获奖状态并删除获奖记录; 奖品已领取时禁止撤销
// @Tags         Winner
// @Accept       json
// @Produce      json
// @Param        photoId path int true "照片ID"
// @Param        request body RemoveWinnerRequest true "超级管理员用户名"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /winners/remove/{photoId} [delete]
func (c *WinnerController) RemoveWinner() {
	photoID, err := strconv.ParseUint(c.Ctx.Param("photoId"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid photo ID")
		return
	}

	var req RemoveWinnerRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Admin username is required")
		return
	}

	winnerService := c.Container.GetService("winner").(services.InterfaceWinnerService)
	photo, err := winnerService.RemoveWinner(uint(photoID), req.AdminUsername)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotSuperAdmin):
			response.FailWithMessage(c.Ctx, code.ErrSuperAdminRequired, "Only super admin can remove winner status")
		case errors.Is(err, services.ErrPhotoNotFound):
			response.Fail(c.Ctx, code.ErrPhotoNotFound)
		case errors.Is(err, services.ErrNotWinner):
			response.Fail(c.Ctx, code.ErrWinnerNotDeclared)
		case errors.Is(err, services.ErrWinnerNotFound):
			response.Fail(c.Ctx, code.ErrWinnerNotFound)
		case errors.Is(err, services.ErrRemoveAfterClaim):
			response.FailWithMessage(c.Ctx, code.ErrWinnerAlreadyClaimed, "Cannot remove winner status after prize has been claimed")
		default:
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Success(c.Ctx, "Winner status removed successfully", photo)
}

// 2. ClaimPrize 领取奖品
// @Summary      领取奖品
// @Description  获奖照片的所有者首次提交领奖信息
// @Tags         Winner
// @Accept       json
// @Produce      json
// @Param        request body ClaimRequest true "领奖请求参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /winners/claim [post]
func (c *WinnerController) ClaimPrize() {
	var req ClaimRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "")
		return
	}

	winnerService := c.Container.GetService("winner").(services.InterfaceWinnerService)
	winner, err := winnerService.ClaimPrize(req.PhotoID, req.ParticipantUniqueString, req.Name, req.Sic, req.Year)
	if err != nil {
		c.mapClaimError(err)
		return
	}

	response.Success(c.Ctx, "Prize claimed successfully", winner)
}

// 3. EditClaim 修改领奖信息
// @Summary      修改领奖信息
// @Description  奖品领取之后修改领奖人信息, 领取标记保持不变
// @Tags         Winner
// @Accept       json
// @Produce      json
// @Param        request body ClaimRequest true "修改请求参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /winners/edit [put]
func (c *WinnerController) EditClaim() {
	var req ClaimRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "")
		return
	}

	winnerService := c.Container.GetService("winner").(services.InterfaceWinnerService)
	winner, err := winnerService.EditClaim(req.PhotoID, req.ParticipantUniqueString, req.Name, req.Sic, req.Year)
	if err != nil {
		c.mapClaimError(err)
		return
	}

	response.Success(c.Ctx, "Winner details updated successfully", winner)
}

// 4. GetWinnerByPhoto 查询某照片的获奖记录
// @Summary      查询获奖记录
// @Tags         Winner
// @Produce      json
// @Param        photoId path int true "照片ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /winners/photo/{photoId} [get]
func (c *WinnerController) GetWinnerByPhoto() {
	photoID, err := strconv.ParseUint(c.Ctx.Param("photoId"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid photo ID")
		return
	}

	winnerService := c.Container.GetService("winner").(services.InterfaceWinnerService)
	winner, err := winnerService.GetWinnerByPhotoID(uint(photoID))
	if err != nil {
		if errors.Is(err, services.ErrWinnerNotFound) {
			response.Fail(c.Ctx, code.ErrWinnerNotFound)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Success", winner)
}

// 5. GetAllWinners 获取全部获奖记录
// @Summary      获取全部获奖记录
// @Tags         Winner
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /winners/all [get]
func (c *WinnerController) GetAllWinners() {
	winnerService := c.Container.GetService("winner").(services.InterfaceWinnerService)

	winners, err := winnerService.GetAllWinners()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Success", winners)
}

// 6. GetLeaderboard 公开排行榜
// @Summary      公开排行榜
// @Description  返回全部获奖作品及领奖状态, 未领奖显示占位文案
// @Tags         Winner
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /winners/leaderboard [get]
func (c *WinnerController) GetLeaderboard() {
	winnerService := c.Container.GetService("winner").(services.InterfaceWinnerService)

	leaderboard, err := winnerService.GetLeaderboard()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Success", leaderboard)
}
