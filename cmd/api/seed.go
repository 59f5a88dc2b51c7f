package main

import (
	"context"

	"github.com/greenloopdev/wastetrack-backend/internal/bins"
	"github.com/greenloopdev/wastetrack-backend/internal/users"
	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

// seedMemory mirrors the SQL seed migration for the in-memory backend: the
// bootstrap admin account and the initial campus bins.
func seedMemory(ctx context.Context, userRepo users.Repository, binRepo bins.Repository) error {
	admin := &models.User{Username: "admin", Role: enums.RoleAdmin}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	campusBins := []struct {
		binType   enums.BinType
		latitude  float64
		longitude float64
		location  string
	}{
		{enums.BinTypeMetal, 8.546425, 76.906937, "Mech Department"},
		{enums.BinTypePaper, 8.545169, 76.904677, "Open Gym"},
		{enums.BinTypePlastic, 8.545369, 76.905679, "EC Department"},
		{enums.BinTypePaper, 8.545475, 76.906845, "Cooperative Store"},
	}
	for _, seed := range campusBins {
		location := seed.location
		bin := &models.Bin{
			Type:         seed.binType,
			Latitude:     seed.latitude,
			Longitude:    seed.longitude,
			LocationName: &location,
			Status:       enums.BinStatusActive,
			CreatedBy:    &admin.ID,
		}
		if err := binRepo.Create(ctx, bin); err != nil {
			return err
		}
	}
	return nil
}
