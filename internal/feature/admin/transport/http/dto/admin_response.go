package dto

import (
	authentity "buildright/internal/feature/auth/domain/entity"
	predentity "buildright/internal/feature/predictions/domain/entity"
)

type AdminUsersResp struct {
	Success     bool              `json:"success"`
	TotalUsers  int64             `json:"totalUsers"`
	RecentUsers []authentity.User `json:"recentUsers"`
}

type AdminPredictionsResp struct {
	Success           bool                             `json:"success"`
	TotalPredictions  int64                            `json:"totalPredictions"`
	RecentPredictions []predentity.PredictionWithOwner `json:"recentPredictions"`
}

type AdminDetailsResp struct {
	Success bool             `json:"success"`
	Admin   *authentity.User `json:"admin"`
}
