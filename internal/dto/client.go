package dto

import (
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
)

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	OwnerName       string `json:"ownerName" binding:"required"`
	Phone           string `json:"phone"`
	Email           string `json:"email" binding:"omitempty,email"`
	Address         string `json:"address"`
	WifiName        string `json:"wifiName"`
	WifiPassword    string `json:"wifiPassword"`
	AlarmCode       string `json:"alarmCode"`
	KeyBoxCode      string `json:"keyBoxCode"`
	KeyCount        int    `json:"keyCount" binding:"gte=0"`
	WaterShutoff    string `json:"waterShutoff"`
	ElectricShutoff string `json:"electricShutoff"`
	GarbageSchedule string `json:"garbageSchedule"`
	PoolSchedule    string `json:"poolSchedule"`
	GardenSchedule  string `json:"gardenSchedule"`
	ContractType    string `json:"contractType"`
	Notes           string `json:"notes"`
}

// UpdateClientRequest defines the fields allowed for updating a client.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateClientRequest struct {
	OwnerName       *string `json:"ownerName" binding:"omitempty,min=1"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Address         *string `json:"address"`
	WifiName        *string `json:"wifiName"`
	WifiPassword    *string `json:"wifiPassword"`
	AlarmCode       *string `json:"alarmCode"`
	KeyBoxCode      *string `json:"keyBoxCode"`
	KeyCount        *int    `json:"keyCount" binding:"omitempty,gte=0"`
	WaterShutoff    *string `json:"waterShutoff"`
	ElectricShutoff *string `json:"electricShutoff"`
	GarbageSchedule *string `json:"garbageSchedule"`
	PoolSchedule    *string `json:"poolSchedule"`
	GardenSchedule  *string `json:"gardenSchedule"`
	ContractType    *string `json:"contractType"`
	Notes           *string `json:"notes"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID        string    `json:"clientID"`
	OwnerName       string    `json:"ownerName"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Address         string    `json:"address"`
	WifiName        string    `json:"wifiName"`
	WifiPassword    string    `json:"wifiPassword"`
	AlarmCode       string    `json:"alarmCode"`
	KeyBoxCode      string    `json:"keyBoxCode"`
	KeyCount        int       `json:"keyCount"`
	WaterShutoff    string    `json:"waterShutoff"`
	ElectricShutoff string    `json:"electricShutoff"`
	GarbageSchedule string    `json:"garbageSchedule"`
	PoolSchedule    string    `json:"poolSchedule"`
	GardenSchedule  string    `json:"gardenSchedule"`
	ContractType    string    `json:"contractType"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:        c.ClientID,
		OwnerName:       c.OwnerName,
		Phone:           c.Phone,
		Email:           c.Email,
		Address:         c.Address,
		WifiName:        c.WifiName,
		WifiPassword:    c.WifiPassword,
		AlarmCode:       c.AlarmCode,
		KeyBoxCode:      c.KeyBoxCode,
		KeyCount:        c.KeyCount,
		WaterShutoff:    c.WaterShutoff,
		ElectricShutoff: c.ElectricShutoff,
		GarbageSchedule: c.GarbageSchedule,
		PoolSchedule:    c.PoolSchedule,
		GardenSchedule:  c.GardenSchedule,
		ContractType:    c.ContractType,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		LastUpdatedAt:   c.LastUpdatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client to a slice of ClientResponse DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
