package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"zreyas-photo-service/config"
	"zreyas-photo-service/internal/error/code"
	"zreyas-photo-service/internal/error/response"
	"zreyas-photo-service/services"
	"zreyas-photo-service/services/container"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 上传限制: 仅图片, 最大10MB
const maxUploadSize = 10 << 20

// InterfacePhotoController 定义照片控制器接口
type InterfacePhotoController interface {
	UploadPhoto()
	GetParticipantPhotos()
	GetAllPhotos()
	DeletePhoto()
	DeletePhotoAsAdmin()
	ToggleLike()
	DeclareWinner()
}

// PhotoController 照片控制器
type PhotoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPhotoController 创建一个新的照片控制器
func NewPhotoController(ctx *gin.Context, container *container.ServiceContainer) *PhotoController {
	return &PhotoController{
		Ctx:       ctx,
		Container: container,
	}
}

// DeletePhotoRequest 参与者删除照片请求
type DeletePhotoRequest struct {
	ParticipantUniqueString string `json:"participantUniqueString" binding:"required"`
}

// LikeRequest 点赞/宣布获奖请求, 携带操作管理员的用户名
type LikeRequest struct {
	AdminUsername string `json:"adminUsername" binding:"required" example:"admin01"`
}

// HandlePhotoFunc 返回一个处理照片请求的Gin处理函数
func HandlePhotoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPhotoController(ctx, container)

		switch method {
		case "uploadPhoto":
			controller.UploadPhoto()
		case "getParticipantPhotos":
			controller.GetParticipantPhotos()
		case "getAllPhotos":
			controller.GetAllPhotos()
		case "deletePhoto":
			controller.DeletePhoto()
		case "deletePhotoAsAdmin":
			controller.DeletePhotoAsAdmin()
		case "toggleLike":
			controller.ToggleLike()
		case "declareWinner":
			controller.DeclareWinner()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "无效的方法",
			})
		}
	}
}

// 1. UploadPhoto 上传照片
// @Summary      上传照片
// @Description  接收multipart图片文件, 压缩优化后存入资产存储并持久化照片记录
// @Tags         Photo
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo formData file true "图片文件 (最大10MB)"
// @Param        participantUniqueString formData string true "参与者身份密钥"
// @Param        caption formData string false "照片描述"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /photos/upload [post]
func (c *PhotoController) UploadPhoto() {
	file, err := c.Ctx.FormFile("photo")
	if err != nil {
		response.Fail(c.Ctx, code.ErrPhotoNoFile)
		return
	}

	participantUniqueString := c.Ctx.PostForm("participantUniqueString")
	if participantUniqueString == "" {
		response.ParamError(c.Ctx, "Participant unique string is required")
		return
	}
	caption := c.Ctx.PostForm("caption")

	if file.Size > maxUploadSize {
		response.ParamError(c.Ctx, "File too large, maximum size is 10MB")
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.ParamError(c.Ctx, "Only image files are allowed!")
		return
	}

	cfg := c.Container.GetConfig()

	// 先落到临时文件, 交给存储服务优化并上传
	tempDir := filepath.Join(cfg.UploadDir, "temp")
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		response.Fail(c.Ctx, code.ErrPhotoUploadFailed)
		return
	}
	tempPath := filepath.Join(tempDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.Ctx.SaveUploadedFile(file, tempPath); err != nil {
		response.Fail(c.Ctx, code.ErrPhotoUploadFailed)
		return
	}

	storageService := c.Container.GetService("storage").(services.InterfaceStorageService)
	stored, err := storageService.Upload(tempPath, participantUniqueString)

	// 临时文件清理失败不影响上传结果
	if removeErr := os.Remove(tempPath); removeErr != nil {
		config.Warning("Failed to delete temporary file %s: %v", tempPath, removeErr)
	}

	if err != nil {
		config.Error("Failed to store uploaded photo: %v", err)
		response.Fail(c.Ctx, code.ErrPhotoUploadFailed)
		return
	}

	photoService := c.Container.GetService("photo").(services.InterfacePhotoService)
	photo, err := photoService.CreatePhoto(participantUniqueString, caption, stored)
	if err != nil {
		response.Fail(c.Ctx, code.ErrPhotoUploadFailed)
		return
	}

	response.Created(c.Ctx, "Photo uploaded successfully", photo)
}

// 2. GetParticipantPhotos 获取某参与者的照片列表
// @Summary      获取参与者照片
// @Description  按上传时间倒序返回某参与者的全部照片
// @Tags         Photo
// @Produce      json
// @Param        uniqueString path string true "参与者身份密钥"
// @Success      200  {object}  response.Response
// @Router       /photos/participant/{uniqueString} [get]
func (c *PhotoController) GetParticipantPhotos() {
	uniqueString := c.Ctx.Param("uniqueString")

	photoService := c.Container.GetService("photo").(services.InterfacePhotoService)
	photos, err := photoService.GetPhotosByParticipant(uniqueString)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Success", photos)
}

// 3. GetAllPhotos 获取全部照片
// @Summary      获取全部照片
// @Description  默认按点赞数倒序再按上传时间倒序; sort=newest 时只按上传时间倒序
// @Tags         Photo
// @Produce      json
// @Param        sort query string false "排序方式: likes(默认) 或 newest"
// @Success      200  {object}  response.Response
// @Router       /photos/all [get]
func (c *PhotoController) GetAllPhotos() {
	sort := c.Ctx.DefaultQuery("sort", services.SortByLikes)

	photoService := c.Container.GetService("photo").(services.InterfacePhotoService)
	photos, err := photoService.GetAllPhotos(sort)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Success", photos)
}

// 4. DeletePhoto 参与者删除自己的照片
// @Summary      参与者删除照片
// @Description  校验所有权后删除照片, 外部存储资产尽力删除, 关联获奖记录级联删除
// @Tags         Photo
// @Accept       json
// @Produce      json
// @Param        id path int true "照片ID"
// @Param        request body DeletePhotoRequest true "身份密钥"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /photos/delete/{id} [delete]
func (c *PhotoController) DeletePhoto() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid photo ID")
		return
	}

	var req DeletePhotoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrTokenInvalid, "Authentication required")
		return
	}

	photoService := c.Container.GetService("photo").(services.InterfacePhotoService)
	if err := photoService.DeletePhoto(uint(id), req.ParticipantUniqueString); err != nil {
		switch {
		case errors.Is(err, services.ErrPhotoNotFound):
			response.Fail(c.Ctx, code.ErrPhotoNotFound)
		case errors.Is(err, services.ErrPhotoNotOwner):
			response.FailWithMessage(c.Ctx, code.ErrPhotoNotOwner, "You do not have permission to delete this photo")
		case errors.Is(err, services.ErrClaimedWinnerDelete):
			response.Fail(c.Ctx, code.ErrPhotoClaimedWinner)
		default:
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Success(c.Ctx, "Photo deleted successfully", nil)
}

// 5. DeletePhotoAsAdmin 超级管理员删除任意照片
// @Summary      管理员删除照片
// @Description  超级管理员删除任意照片, 不做所有权检查
// @Tags         Photo
// @Produce      json
// @Param        id path int true "照片ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /photos/admin/{id} [delete]
// @Security     BearerAuth
func (c *PhotoController) DeletePhotoAsAdmin() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid photo ID")
		return
	}

	photoService := c.Container.GetService("photo").(services.InterfacePhotoService)
	if err := photoService.DeletePhotoAsAdmin(uint(id)); err != nil {
		if errors.Is(err, services.ErrPhotoNotFound) {
			response.Fail(c.Ctx, code.ErrPhotoNotFound)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Photo deleted successfully by admin", nil)
}

// 6. ToggleLike 翻转点赞状态
// @Summary      点赞/取消点赞
// @Description  同一管理员再次调用即取消点赞, 点赞数始终等于点赞者集合大小
// @Tags         Photo
// @Accept       json
// @Produce      json
// @Param        id path int true "照片ID"
// @Param        request body LikeRequest true "管理员用户名"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /photos/like/{id} [post]
func (c *PhotoController) ToggleLike() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid photo ID")
		return
	}

	var req LikeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Admin username is required")
		return
	}

	photoService := c.Container.GetService("photo").(services.InterfacePhotoService)
	photo, liked, err := photoService.ToggleLike(uint(id), req.AdminUsername)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			response.Fail(c.Ctx, code.ErrAdminNotFound)
		case errors.Is(err, services.ErrPhotoNotFound):
			response.Fail(c.Ctx, code.ErrPhotoNotFound)
		default:
			response.ServerError(c.Ctx)
		}
		return
	}

	message := "Photo unliked successfully"
	if liked {
		message = "Photo liked successfully"
	}
	response.Success(c.Ctx, message, photo)
}

// 7. DeclareWinner 宣布获奖作品
// @Summary      宣布获奖
// @Description  超级管理员将照片宣布为获奖作品并创建获奖记录; 重复宣布返回冲突
// @Tags         Photo
// @Accept       json
// @Produce      json
// @Param        id path int true "照片ID"
// @Param        request body LikeRequest true "超级管理员用户名"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /photos/winner/{id} [patch]
func (c *PhotoController) DeclareWinner() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid photo ID")
		return
	}

	var req LikeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Admin username is required")
		return
	}

	winnerService := c.Container.GetService("winner").(services.InterfaceWinnerService)
	photo, err := winnerService.DeclareWinner(uint(id), req.AdminUsername)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotSuperAdmin):
			response.FailWithMessage(c.Ctx, code.ErrSuperAdminRequired, "Only super admin can declare winners")
		case errors.Is(err, services.ErrPhotoNotFound):
			response.Fail(c.Ctx, code.ErrPhotoNotFound)
		case errors.Is(err, services.ErrWinnerAlreadyDeclared):
			response.Fail(c.Ctx, code.ErrWinnerAlreadyDeclared)
		default:
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Success(c.Ctx, "Photo marked as winner", photo)
}
