package services

import (
	"errors"
	"testing"

	"zreyas-photo-service/models"
)

func TestCreateAdmin(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewAdminService(db, cfg)

	admin, err := service.CreateAdmin("judge01", "password123", models.RoleAdmin)
	if err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, models.RoleAdmin)
	}
	if admin.IsSuperAdmin {
		t.Error("IsSuperAdmin should be false for a regular admin")
	}
	if admin.Password == "password123" {
		t.Error("Password must be stored hashed, got plaintext")
	}

	// 重复用户名
	if _, err := service.CreateAdmin("judge01", "other", models.RoleAdmin); !errors.Is(err, ErrAdminExists) {
		t.Errorf("duplicate username: err = %v, want ErrAdminExists", err)
	}

	// 非法角色
	if _, err := service.CreateAdmin("judge02", "password123", "owner"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("invalid role: err = %v, want ErrInvalidRole", err)
	}

	// 超管角色同步 IsSuperAdmin 标记
	boss, err := service.CreateAdmin("boss", "password123", models.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("CreateAdmin superadmin failed: %v", err)
	}
	if !boss.IsSuperAdmin {
		t.Error("IsSuperAdmin should be true when role is superadmin")
	}
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewAdminService(db, cfg)
	seedAdmin(t, db, cfg, "judge01", models.RoleAdmin)

	admin, err := service.Authenticate("judge01", "password123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if admin.Username != "judge01" {
		t.Errorf("Username = %q, want judge01", admin.Username)
	}

	// 密码错误和用户不存在必须返回同一个错误, 防止枚举用户名
	if _, err := service.Authenticate("judge01", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("wrong password: err = %v, want ErrInvalidPassword", err)
	}
	if _, err := service.Authenticate("nobody", "password123"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("unknown user: err = %v, want ErrInvalidPassword", err)
	}
}

func TestDeleteAdmin(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewAdminService(db, cfg)

	boss := seedAdmin(t, db, cfg, "boss", models.RoleSuperAdmin)
	judge := seedAdmin(t, db, cfg, "judge01", models.RoleAdmin)

	// 不能删除自己
	if err := service.DeleteAdmin(boss.ID, boss.ID); !errors.Is(err, ErrSelfDelete) {
		t.Errorf("self delete: err = %v, want ErrSelfDelete", err)
	}

	if err := service.DeleteAdmin(judge.ID, boss.ID); err != nil {
		t.Fatalf("DeleteAdmin failed: %v", err)
	}
	if _, err := service.GetAdminByID(judge.ID); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("deleted admin still found: err = %v", err)
	}

	if err := service.DeleteAdmin(9999, boss.ID); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("missing admin: err = %v, want ErrAdminNotFound", err)
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewAdminService(db, cfg)

	seedAdmin(t, db, cfg, "boss", models.RoleSuperAdmin)
	seedAdmin(t, db, cfg, "judge01", models.RoleAdmin)

	if _, err := service.RequireSuperAdmin("boss"); err != nil {
		t.Errorf("RequireSuperAdmin(boss) = %v, want nil", err)
	}
	if _, err := service.RequireSuperAdmin("judge01"); !errors.Is(err, ErrNotSuperAdmin) {
		t.Errorf("RequireSuperAdmin(judge01) = %v, want ErrNotSuperAdmin", err)
	}
	if _, err := service.RequireSuperAdmin("nobody"); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("RequireSuperAdmin(nobody) = %v, want ErrAdminNotFound", err)
	}
}

func TestEnsureSuperAdminExists(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewAdminService(db, cfg)

	if err := service.EnsureSuperAdminExists(cfg.SuperAdminPassword); err != nil {
		t.Fatalf("EnsureSuperAdminExists failed: %v", err)
	}

	admin, err := service.GetAdminByUsername("superadmin")
	if err != nil {
		t.Fatalf("superadmin account not created: %v", err)
	}
	if admin.Role != models.RoleSuperAdmin || !admin.IsSuperAdmin {
		t.Errorf("seeded account role = %q, IsSuperAdmin = %v", admin.Role, admin.IsSuperAdmin)
	}

	// 重复调用不应再创建账户
	if err := service.EnsureSuperAdminExists(cfg.SuperAdminPassword); err != nil {
		t.Fatalf("second EnsureSuperAdminExists failed: %v", err)
	}
	var count int64
	db.Model(&models.Admin{}).Where("username = ?", "superadmin").Count(&count)
	if count != 1 {
		t.Errorf("superadmin account count = %d, want 1", count)
	}

	// 角色被改动后应修复
	db.Model(&models.Admin{}).Where("username = ?", "superadmin").Update("role", models.RoleAdmin)
	if err := service.EnsureSuperAdminExists(cfg.SuperAdminPassword); err != nil {
		t.Fatalf("repair EnsureSuperAdminExists failed: %v", err)
	}
	admin, _ = service.GetAdminByUsername("superadmin")
	if admin.Role != models.RoleSuperAdmin {
		t.Errorf("demoted superadmin not repaired, role = %q", admin.Role)
	}
}
