package services

import (
	"errors"
	"testing"

	"zreyas-photo-service/models"
)

func TestDeclareWinner(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewWinnerService(db, cfg, nil)

	seedAdmin(t, db, cfg, "boss", models.RoleSuperAdmin)
	seedAdmin(t, db, cfg, "judge01", models.RoleAdmin)
	photo := seedPhoto(t, db, "owner-secret")

	// 普通管理员不能宣布获奖
	if _, err := service.DeclareWinner(photo.ID, "judge01"); !errors.Is(err, ErrNotSuperAdmin) {
		t.Errorf("regular admin: err = %v, want ErrNotSuperAdmin", err)
	}
	if _, err := service.DeclareWinner(9999, "boss"); !errors.Is(err, ErrPhotoNotFound) {
		t.Errorf("missing photo: err = %v, want ErrPhotoNotFound", err)
	}

	got, err := service.DeclareWinner(photo.ID, "boss")
	if err != nil {
		t.Fatalf("DeclareWinner failed: %v", err)
	}
	if !got.IsWinner {
		t.Error("photo should be marked as winner")
	}

	winner, err := service.GetWinnerByPhotoID(photo.ID)
	if err != nil {
		t.Fatalf("winner record missing after declare: %v", err)
	}
	if winner.Name != models.ClaimPending || winner.Sic != models.ClaimPending || winner.Year != models.ClaimPending {
		t.Errorf("fresh winner fields = %q/%q/%q, want TBA placeholders", winner.Name, winner.Sic, winner.Year)
	}
	if winner.HasClaimed {
		t.Error("fresh winner record should not be claimed")
	}
	if winner.DeclaredBy != "boss" {
		t.Errorf("DeclaredBy = %q, want boss", winner.DeclaredBy)
	}

	// 重复宣布返回冲突
	if _, err := service.DeclareWinner(photo.ID, "boss"); !errors.Is(err, ErrWinnerAlreadyDeclared) {
		t.Errorf("re-declare: err = %v, want ErrWinnerAlreadyDeclared", err)
	}
}

func TestRemoveWinner(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewWinnerService(db, cfg, nil)

	seedAdmin(t, db, cfg, "boss", models.RoleSuperAdmin)
	photo := seedPhoto(t, db, "owner-secret")

	// 未获奖的照片无法撤销
	if _, err := service.RemoveWinner(photo.ID, "boss"); !errors.Is(err, ErrNotWinner) {
		t.Errorf("remove non-winner: err = %v, want ErrNotWinner", err)
	}

	if _, err := service.DeclareWinner(photo.ID, "boss"); err != nil {
		t.Fatalf("DeclareWinner failed: %v", err)
	}

	got, err := service.RemoveWinner(photo.ID, "boss")
	if err != nil {
		t.Fatalf("RemoveWinner failed: %v", err)
	}
	if got.IsWinner {
		t.Error("photo should no longer be a winner")
	}
	if _, err := service.GetWinnerByPhotoID(photo.ID); !errors.Is(err, ErrWinnerNotFound) {
		t.Errorf("winner record should be gone, err = %v", err)
	}
}

func TestRemoveWinnerAfterClaim(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewWinnerService(db, cfg, nil)

	seedAdmin(t, db, cfg, "boss", models.RoleSuperAdmin)
	photo := seedPhoto(t, db, "owner-secret")

	if _, err := service.DeclareWinner(photo.ID, "boss"); err != nil {
		t.Fatalf("DeclareWinner failed: %v", err)
	}
	if _, err := service.ClaimPrize(photo.ID, "owner-secret", "Jane", "S1", "2"); err != nil {
		t.Fatalf("ClaimPrize failed: %v", err)
	}

	// 奖品已领取后不允许撤销
	if _, err := service.RemoveWinner(photo.ID, "boss"); !errors.Is(err, ErrRemoveAfterClaim) {
		t.Errorf("remove after claim: err = %v, want ErrRemoveAfterClaim", err)
	}
}

func TestClaimPrize(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewWinnerService(db, cfg, nil)

	seedAdmin(t, db, cfg, "boss", models.RoleSuperAdmin)
	photo := seedPhoto(t, db, "owner-secret")
	plain := seedPhoto(t, db, "owner-secret")

	if _, err := service.DeclareWinner(photo.ID, "boss"); err != nil {
		t.Fatalf("DeclareWinner failed: %v", err)
	}

	// 非所有者不能领奖
	if _, err := service.ClaimPrize(photo.ID, "someone-else", "Eve", "S9", "4"); !errors.Is(err, ErrPhotoNotOwner) {
		t.Errorf("foreign claim: err = %v, want ErrPhotoNotOwner", err)
	}
	// 未获奖的照片无法领奖
	if _, err := service.ClaimPrize(plain.ID, "owner-secret", "Jane", "S1", "2"); !errors.Is(err, ErrNotWinner) {
		t.Errorf("claim non-winner: err = %v, want ErrNotWinner", err)
	}

	winner, err := service.ClaimPrize(photo.ID, "owner-secret", "Jane", "S1", "2")
	if err != nil {
		t.Fatalf("ClaimPrize failed: %v", err)
	}
	if winner.Name != "Jane" || winner.Sic != "S1" || winner.Year != "2" {
		t.Errorf("claimed fields = %q/%q/%q", winner.Name, winner.Sic, winner.Year)
	}
	if !winner.HasClaimed {
		t.Error("winner record should be marked claimed")
	}

	// 领取标记同步到照片
	var got models.Photo
	if err := db.First(&got, photo.ID).Error; err != nil {
		t.Fatalf("reload photo: %v", err)
	}
	if !got.HasClaimed {
		t.Error("photo HasClaimed should mirror the winner record")
	}

	// 重复领奖返回冲突
	if _, err := service.ClaimPrize(photo.ID, "owner-secret", "Janet", "S2", "3"); !errors.Is(err, ErrWinnerAlreadyClaimed) {
		t.Errorf("double claim: err = %v, want ErrWinnerAlreadyClaimed", err)
	}
}

func TestEditClaim(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewWinnerService(db, cfg, nil)

	seedAdmin(t, db, cfg, "boss", models.RoleSuperAdmin)
	photo := seedPhoto(t, db, "owner-secret")

	if _, err := service.DeclareWinner(photo.ID, "boss"); err != nil {
		t.Fatalf("DeclareWinner failed: %v", err)
	}

	// 领奖之前不能修改
	if _, err := service.EditClaim(photo.ID, "owner-secret", "Jane", "S1", "2"); !errors.Is(err, ErrWinnerNotClaimed) {
		t.Errorf("edit before claim: err = %v, want ErrWinnerNotClaimed", err)
	}

	if _, err := service.ClaimPrize(photo.ID, "owner-secret", "Jane", "S1", "2"); err != nil {
		t.Fatalf("ClaimPrize failed: %v", err)
	}

	winner, err := service.EditClaim(photo.ID, "owner-secret", "Jane Doe", "S2", "3")
	if err != nil {
		t.Fatalf("EditClaim failed: %v", err)
	}
	if winner.Name != "Jane Doe" || winner.Sic != "S2" || winner.Year != "3" {
		t.Errorf("edited fields = %q/%q/%q", winner.Name, winner.Sic, winner.Year)
	}
	if !winner.HasClaimed {
		t.Error("editing must not clear the claimed flag")
	}
}

func TestGetLeaderboard(t *testing.T) {
	db := setupTestDB(t)
	cfg := getTestConfig(t)
	service := NewWinnerService(db, cfg, nil)
	participantService := NewParticipantService(db, cfg)

	seedAdmin(t, db, cfg, "boss", models.RoleSuperAdmin)

	participant, err := participantService.CreateParticipant()
	if err != nil {
		t.Fatalf("CreateParticipant failed: %v", err)
	}
	claimed := seedPhoto(t, db, participant.UniqueString)
	pending := seedPhoto(t, db, "unknown-participant")

	for _, id := range []uint{claimed.ID, pending.ID} {
		if _, err := service.DeclareWinner(id, "boss"); err != nil {
			t.Fatalf("DeclareWinner(%d) failed: %v", id, err)
		}
	}
	if _, err := service.ClaimPrize(claimed.ID, participant.UniqueString, "Jane", "S1", "2"); err != nil {
		t.Fatalf("ClaimPrize failed: %v", err)
	}

	leaderboard, err := service.GetLeaderboard()
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(leaderboard) != 2 {
		t.Fatalf("leaderboard has %d entries, want 2", len(leaderboard))
	}

	var claimedEntry, pendingEntry *LeaderboardEntry
	for i := range leaderboard {
		if leaderboard[i].HasClaimed {
			claimedEntry = &leaderboard[i]
		} else {
			pendingEntry = &leaderboard[i]
		}
	}
	if claimedEntry == nil || pendingEntry == nil {
		t.Fatalf("expected one claimed and one pending entry, got %+v", leaderboard)
	}

	// 已领奖: 显示真实领奖信息和参与者昵称
	if claimedEntry.WinnerName != "Jane" || claimedEntry.Sic != "S1" || claimedEntry.Year != "2" {
		t.Errorf("claimed entry = %q/%q/%q", claimedEntry.WinnerName, claimedEntry.Sic, claimedEntry.Year)
	}
	if claimedEntry.ParticipantName != participant.RandomName {
		t.Errorf("ParticipantName = %q, want %q", claimedEntry.ParticipantName, participant.RandomName)
	}

	// 未领奖: 显示占位文案, 参与者无法解析时显示 Anonymous
	if pendingEntry.WinnerName != "Pending Claim" || pendingEntry.Sic != "Pending" || pendingEntry.Year != "Pending" {
		t.Errorf("pending entry = %q/%q/%q", pendingEntry.WinnerName, pendingEntry.Sic, pendingEntry.Year)
	}
	if pendingEntry.ParticipantName != "Anonymous" {
		t.Errorf("ParticipantName = %q, want Anonymous", pendingEntry.ParticipantName)
	}
}
