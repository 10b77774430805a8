package services

import (
	"testing"

	"zreyas-photo-service/config"
	"zreyas-photo-service/models"
)

func TestGenerateAndExtractToken(t *testing.T) {
	cfg := getTestConfig(t)
	service := NewJWTService(cfg)

	token, err := service.GenerateToken(7, "boss", models.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := service.ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims failed: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Username != "boss" {
		t.Errorf("Username = %q, want boss", claims.Username)
	}
	if claims.Role != models.RoleSuperAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleSuperAdmin)
	}
	if !claims.IsSuperAdmin {
		t.Error("IsSuperAdmin should be true for a superadmin token")
	}
}

func TestExtractClaimsRejectsTamperedToken(t *testing.T) {
	cfg := getTestConfig(t)
	service := NewJWTService(cfg)

	token, err := service.GenerateToken(1, "judge01", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	// 篡改载荷
	tampered := token[:len(token)-2] + "xx"
	if _, err := service.ExtractClaims(tampered); err == nil {
		t.Error("tampered token was accepted")
	}

	// 用不同密钥签发的令牌不可通过校验
	otherService := NewJWTService(&config.Config{JWTSecretKey: "another-secret"})
	foreign, err := otherService.GenerateToken(1, "judge01", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken with other secret failed: %v", err)
	}
	if _, err := service.ExtractClaims(foreign); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}
