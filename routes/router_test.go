package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"zreyas-photo-service/config"
	"zreyas-photo-service/models"
	"zreyas-photo-service/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// apiResponse 统一响应信封
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupTestRouter 构建完整的路由和一次性sqlite数据库, 并播种超级管理员
func setupTestRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "router_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	err = db.AutoMigrate(&models.Admin{}, &models.Participant{}, &models.Photo{}, &models.Winner{})
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		ServerPort:         "8080",
		JWTSecretKey:       "router-test-secret",
		StorageDriver:      "local",
		UploadDir:          t.TempDir(),
		SuperAdminPassword: "superadmin123",
	}

	if err := services.NewAdminService(db, cfg).EnsureSuperAdminExists(cfg.SuperAdminPassword); err != nil {
		t.Fatalf("Failed to seed superadmin: %v", err)
	}

	return SetupRouter(db, cfg, nil), cfg
}

// doJSON 发送JSON请求并解析响应信封
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) (int, apiResponse) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w.Code, resp
}

// pngBytes 生成一张可解码的PNG测试图片
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

// uploadPhoto 以multipart方式上传一张测试照片, 返回响应
func uploadPhoto(t *testing.T, r *gin.Engine, uniqueString, caption string) (int, apiResponse) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="photo"; filename="entry.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create multipart part: %v", err)
	}
	if _, err := part.Write(pngBytes(t, 64, 48)); err != nil {
		t.Fatalf("write image payload: %v", err)
	}
	mw.WriteField("participantUniqueString", uniqueString)
	mw.WriteField("caption", caption)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/photos/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal upload response %q: %v", w.Body.String(), err)
	}
	return w.Code, resp
}

func adminLogin(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	status, resp := doJSON(t, r, http.MethodPost, "/api/admin/login", gin.H{
		"username": username,
		"password": password,
	}, "")
	if status != http.StatusOK {
		t.Fatalf("admin login for %s returned %d: %s", username, status, resp.Message)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal login data: %v", err)
	}
	return data.Token
}

func TestPing(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("ping returned %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Errorf("ping body = %q", w.Body.String())
	}
}

// TestContestFlow 走完整个比赛流程:
// 铸造身份 -> 上传 -> 评委点赞 -> 宣布获奖 -> 排行榜 -> 领奖 -> 删除
func TestContestFlow(t *testing.T) {
	r, _ := setupTestRouter(t)

	// 铸造参与者身份
	status, resp := doJSON(t, r, http.MethodPost, "/api/participants/create", nil, "")
	if status != http.StatusCreated {
		t.Fatalf("participant create returned %d: %s", status, resp.Message)
	}
	var identity struct {
		UniqueString string `json:"uniqueString"`
		RandomName   string `json:"randomName"`
	}
	if err := json.Unmarshal(resp.Data, &identity); err != nil {
		t.Fatalf("unmarshal identity: %v", err)
	}

	// 身份对可以重新登录
	status, _ = doJSON(t, r, http.MethodPost, "/api/participants/login", gin.H{
		"uniqueString": identity.UniqueString,
		"randomName":   identity.RandomName,
	}, "")
	if status != http.StatusOK {
		t.Fatalf("participant login returned %d", status)
	}

	// 上传参赛照片
	status, resp = uploadPhoto(t, r, identity.UniqueString, "golden hour")
	if status != http.StatusCreated {
		t.Fatalf("upload returned %d: %s", status, resp.Message)
	}
	var photo models.Photo
	if err := json.Unmarshal(resp.Data, &photo); err != nil {
		t.Fatalf("unmarshal photo: %v", err)
	}
	if !strings.HasPrefix(photo.Path, "/uploads/photo-contest/") {
		t.Errorf("photo path = %q", photo.Path)
	}

	// 超级管理员登录并任命一位评委
	bossToken := adminLogin(t, r, "superadmin", "superadmin123")
	status, resp = doJSON(t, r, http.MethodPost, "/api/admin/create", gin.H{
		"username": "judge01",
		"password": "password123",
		"role":     models.RoleAdmin,
	}, bossToken)
	if status != http.StatusCreated {
		t.Fatalf("admin create returned %d: %s", status, resp.Message)
	}

	// 评委点赞
	likePath := fmt.Sprintf("/api/photos/like/%d", photo.ID)
	status, resp = doJSON(t, r, http.MethodPost, likePath, gin.H{"adminUsername": "judge01"}, "")
	if status != http.StatusOK || resp.Message != "Photo liked successfully" {
		t.Fatalf("like returned %d: %s", status, resp.Message)
	}
	// 再次调用取消点赞
	status, resp = doJSON(t, r, http.MethodPost, likePath, gin.H{"adminUsername": "judge01"}, "")
	if status != http.StatusOK || resp.Message != "Photo unliked successfully" {
		t.Fatalf("unlike returned %d: %s", status, resp.Message)
	}

	// 普通评委不能宣布获奖
	winnerPath := fmt.Sprintf("/api/photos/winner/%d", photo.ID)
	status, resp = doJSON(t, r, http.MethodPatch, winnerPath, gin.H{"adminUsername": "judge01"}, "")
	if status != http.StatusForbidden {
		t.Fatalf("declare by judge returned %d: %s", status, resp.Message)
	}

	// 超级管理员宣布获奖
	status, resp = doJSON(t, r, http.MethodPatch, winnerPath, gin.H{"adminUsername": "superadmin"}, "")
	if status != http.StatusOK || resp.Message != "Photo marked as winner" {
		t.Fatalf("declare returned %d: %s", status, resp.Message)
	}
	// 重复宣布返回冲突
	status, _ = doJSON(t, r, http.MethodPatch, winnerPath, gin.H{"adminUsername": "superadmin"}, "")
	if status != http.StatusConflict {
		t.Fatalf("re-declare returned %d, want 409", status)
	}

	// 排行榜: 领奖前显示占位文案
	status, resp = doJSON(t, r, http.MethodGet, "/api/winners/leaderboard", nil, "")
	if status != http.StatusOK {
		t.Fatalf("leaderboard returned %d", status)
	}
	var leaderboard []services.LeaderboardEntry
	if err := json.Unmarshal(resp.Data, &leaderboard); err != nil {
		t.Fatalf("unmarshal leaderboard: %v", err)
	}
	if len(leaderboard) != 1 || leaderboard[0].WinnerName != "Pending Claim" {
		t.Fatalf("pre-claim leaderboard = %+v", leaderboard)
	}
	if leaderboard[0].ParticipantName != identity.RandomName {
		t.Errorf("leaderboard participant = %q, want %q", leaderboard[0].ParticipantName, identity.RandomName)
	}

	// 参与者领奖
	status, resp = doJSON(t, r, http.MethodPost, "/api/winners/claim", gin.H{
		"photoId":                 photo.ID,
		"participantUniqueString": identity.UniqueString,
		"name":                    "Jane",
		"sic":                     "S1",
		"year":                    "2",
	}, "")
	if status != http.StatusOK || resp.Message != "Prize claimed successfully" {
		t.Fatalf("claim returned %d: %s", status, resp.Message)
	}

	// 排行榜: 领奖后显示真实信息
	status, resp = doJSON(t, r, http.MethodGet, "/api/winners/leaderboard", nil, "")
	if status != http.StatusOK {
		t.Fatalf("leaderboard returned %d", status)
	}
	if err := json.Unmarshal(resp.Data, &leaderboard); err != nil {
		t.Fatalf("unmarshal leaderboard: %v", err)
	}
	if leaderboard[0].WinnerName != "Jane" || !leaderboard[0].HasClaimed {
		t.Fatalf("post-claim leaderboard = %+v", leaderboard)
	}

	// 奖品已领取: 参与者不能删除自己的获奖照片
	deletePath := fmt.Sprintf("/api/photos/delete/%d", photo.ID)
	status, _ = doJSON(t, r, http.MethodDelete, deletePath, gin.H{
		"participantUniqueString": identity.UniqueString,
	}, "")
	if status != http.StatusConflict {
		t.Fatalf("delete claimed winner returned %d, want 409", status)
	}

	// 超级管理员仍可强制删除
	status, resp = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/photos/admin/%d", photo.ID), nil, bossToken)
	if status != http.StatusOK {
		t.Fatalf("admin delete returned %d: %s", status, resp.Message)
	}
}

func TestSuperAdminRouteGuards(t *testing.T) {
	r, _ := setupTestRouter(t)

	// 无令牌
	status, _ := doJSON(t, r, http.MethodGet, "/api/admin/all", nil, "")
	if status != http.StatusUnauthorized {
		t.Errorf("no token returned %d, want 401", status)
	}

	// 普通管理员令牌不足以访问超管路由
	bossToken := adminLogin(t, r, "superadmin", "superadmin123")
	status, _ = doJSON(t, r, http.MethodPost, "/api/admin/create", gin.H{
		"username": "judge01",
		"password": "password123",
		"role":     models.RoleAdmin,
	}, bossToken)
	if status != http.StatusCreated {
		t.Fatalf("admin create returned %d", status)
	}

	judgeToken := adminLogin(t, r, "judge01", "password123")
	status, _ = doJSON(t, r, http.MethodGet, "/api/admin/all", nil, judgeToken)
	if status != http.StatusForbidden {
		t.Errorf("admin token on superadmin route returned %d, want 403", status)
	}

	// 普通管理员可以通过 verify
	status, _ = doJSON(t, r, http.MethodGet, "/api/admin/verify", nil, judgeToken)
	if status != http.StatusOK {
		t.Errorf("verify with admin token returned %d, want 200", status)
	}

	// 超级管理员可以访问
	status, _ = doJSON(t, r, http.MethodGet, "/api/admin/all", nil, bossToken)
	if status != http.StatusOK {
		t.Errorf("superadmin token returned %d, want 200", status)
	}
}

func TestUploadValidation(t *testing.T) {
	r, _ := setupTestRouter(t)

	// 缺少文件
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	mw.WriteField("participantUniqueString", "abc")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/photos/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("upload without file returned %d, want 400", w.Code)
	}

	// 非图片类型被拒绝
	body = &bytes.Buffer{}
	mw = multipart.NewWriter(body)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="photo"; filename="notes.txt"`)
	hdr.Set("Content-Type", "text/plain")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create multipart part: %v", err)
	}
	part.Write([]byte("not an image"))
	mw.WriteField("participantUniqueString", "abc")
	mw.Close()

	req = httptest.NewRequest(http.MethodPost, "/api/photos/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-image upload returned %d, want 400", w.Code)
	}
}
