package code

// 错误码消息映射 (面向前端的英文提示)
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:      "Success",
	ErrUnknown:      "Something went wrong!",
	ErrBind:         "Invalid request parameters",
	ErrValidation:   "Invalid request parameters",
	ErrTokenInvalid: "Invalid token",
	ErrTokenExpired: "Token has expired",
	ErrDatabase:     "Database error",

	// 管理员相关错误码
	ErrAdminNotFound:          "Admin not found",
	ErrAdminAlreadyExist:      "Username already exists",
	ErrAdminPasswordIncorrect: "Invalid credentials",
	ErrAdminInvalidRole:       `Role must be either "admin" or "superadmin"`,
	ErrAdminSelfDelete:        "Cannot delete your own account",
	ErrPermissionDenied:       "Access denied. Admin required.",
	ErrSuperAdminRequired:     "Access denied. Superadmin required.",

	// 参与者相关错误码
	ErrParticipantNotFound:    "Participant not found",
	ErrParticipantCollision:   "Please try again, unique string already exists.",
	ErrParticipantCredentials: "Invalid credentials",

	// 照片相关错误码
	ErrPhotoNotFound:      "Photo not found",
	ErrPhotoNotOwner:      "You do not have permission to modify this photo",
	ErrPhotoNoFile:        "No file uploaded",
	ErrPhotoUploadFailed:  "Failed to upload photo",
	ErrPhotoClaimedWinner: "Cannot delete a photo whose prize has been claimed",

	// 获奖相关错误码
	ErrWinnerNotFound:        "Winner record not found for this photo",
	ErrWinnerAlreadyDeclared: "This photo is already marked as a winner",
	ErrWinnerNotDeclared:     "This photo is not marked as a winner",
	ErrWinnerAlreadyClaimed:  "Prize already claimed for this photo",
	ErrWinnerNotClaimed:      "Prize has not been claimed yet. Use the claim endpoint instead.",
}

// GetMessage 获取错误码对应的提示消息
func GetMessage(c int) string {
	if msg, ok := codeMessageMap[c]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}
