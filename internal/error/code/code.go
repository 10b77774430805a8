package code

import "net/http"

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTokenExpired - 401: 令牌已过期.
	ErrTokenExpired
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase
)

// 管理员相关错误码 (101xxx).
const (
	// ErrAdminNotFound - 404: 管理员不存在.
	ErrAdminNotFound int = iota + 101000
	// ErrAdminAlreadyExist - 409: 用户名已存在.
	ErrAdminAlreadyExist
	// ErrAdminPasswordIncorrect - 401: 用户名或密码错误.
	ErrAdminPasswordIncorrect
	// ErrAdminInvalidRole - 400: 角色不合法.
	ErrAdminInvalidRole
	// ErrAdminSelfDelete - 400: 不能删除自己的账户.
	ErrAdminSelfDelete
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
	// ErrSuperAdminRequired - 403: 需要超级管理员权限.
	ErrSuperAdminRequired
)

// 参与者相关错误码 (102xxx).
const (
	// ErrParticipantNotFound - 404: 参与者不存在.
	ErrParticipantNotFound int = iota + 102000
	// ErrParticipantCollision - 409: 身份密钥冲突.
	ErrParticipantCollision
	// ErrParticipantCredentials - 401: 参与者凭证无效.
	ErrParticipantCredentials
)

// 照片相关错误码 (103xxx).
const (
	// ErrPhotoNotFound - 404: 照片不存在.
	ErrPhotoNotFound int = iota + 103000
	// ErrPhotoNotOwner - 403: 非照片所有者.
	ErrPhotoNotOwner
	// ErrPhotoNoFile - 400: 未上传图片文件.
	ErrPhotoNoFile
	// ErrPhotoUploadFailed - 500: 图片上传失败.
	ErrPhotoUploadFailed
	// ErrPhotoClaimedWinner - 409: 照片对应的奖品已被领取, 禁止删除.
	ErrPhotoClaimedWinner
)

// 获奖相关错误码 (104xxx).
const (
	// ErrWinnerNotFound - 404: 获奖记录不存在.
	ErrWinnerNotFound int = iota + 104000
	// ErrWinnerAlreadyDeclared - 409: 照片已被宣布为获奖作品.
	ErrWinnerAlreadyDeclared
	// ErrWinnerNotDeclared - 400: 照片未被标记为获奖作品.
	ErrWinnerNotDeclared
	// ErrWinnerAlreadyClaimed - 409: 奖品已被领取.
	ErrWinnerAlreadyClaimed
	// ErrWinnerNotClaimed - 400: 奖品尚未领取.
	ErrWinnerNotClaimed
)

// 错误码到HTTP状态码的映射
var codeStatusMap = map[int]int{
	ErrSuccess:    http.StatusOK,
	ErrUnknown:    http.StatusInternalServerError,
	ErrBind:       http.StatusBadRequest,
	ErrValidation: http.StatusBadRequest,

	ErrTokenInvalid: http.StatusUnauthorized,
	ErrTokenExpired: http.StatusUnauthorized,
	ErrDatabase:     http.StatusInternalServerError,

	ErrAdminNotFound:          http.StatusNotFound,
	ErrAdminAlreadyExist:      http.StatusConflict,
	ErrAdminPasswordIncorrect: http.StatusUnauthorized,
	ErrAdminInvalidRole:       http.StatusBadRequest,
	ErrAdminSelfDelete:        http.StatusBadRequest,
	ErrPermissionDenied:       http.StatusForbidden,
	ErrSuperAdminRequired:     http.StatusForbidden,

	ErrParticipantNotFound:    http.StatusNotFound,
	ErrParticipantCollision:   http.StatusConflict,
	ErrParticipantCredentials: http.StatusUnauthorized,

	ErrPhotoNotFound:      http.StatusNotFound,
	ErrPhotoNotOwner:      http.StatusForbidden,
	ErrPhotoNoFile:        http.StatusBadRequest,
	ErrPhotoUploadFailed:  http.StatusInternalServerError,
	ErrPhotoClaimedWinner: http.StatusConflict,

	ErrWinnerNotFound:        http.StatusNotFound,
	ErrWinnerAlreadyDeclared: http.StatusConflict,
	ErrWinnerNotDeclared:     http.StatusBadRequest,
	ErrWinnerAlreadyClaimed:  http.StatusConflict,
	ErrWinnerNotClaimed:      http.StatusBadRequest,
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(c int) int {
	if status, ok := codeStatusMap[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}
