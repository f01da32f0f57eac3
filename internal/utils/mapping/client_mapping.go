package mapping

import (
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:        d.ClientID,
		OwnerName:       d.OwnerName,
		Phone:           d.Phone,
		Email:           d.Email,
		Address:         d.Address,
		WifiName:        d.WifiName,
		WifiPassword:    d.WifiPassword,
		AlarmCode:       d.AlarmCode,
		KeyBoxCode:      d.KeyBoxCode,
		KeyCount:        d.KeyCount,
		WaterShutoff:    d.WaterShutoff,
		ElectricShutoff: d.ElectricShutoff,
		GarbageSchedule: d.GarbageSchedule,
		PoolSchedule:    d.PoolSchedule,
		GardenSchedule:  d.GardenSchedule,
		ContractType:    d.ContractType,
		Notes:           d.Notes,
		AuditFields:     auditToModel(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:        m.ClientID,
		OwnerName:       m.OwnerName,
		Phone:           m.Phone,
		Email:           m.Email,
		Address:         m.Address,
		WifiName:        m.WifiName,
		WifiPassword:    m.WifiPassword,
		AlarmCode:       m.AlarmCode,
		KeyBoxCode:      m.KeyBoxCode,
		KeyCount:        m.KeyCount,
		WaterShutoff:    m.WaterShutoff,
		ElectricShutoff: m.ElectricShutoff,
		GarbageSchedule: m.GarbageSchedule,
		PoolSchedule:    m.PoolSchedule,
		GardenSchedule:  m.GardenSchedule,
		ContractType:    m.ContractType,
		Notes:           m.Notes,
		AuditFields:     auditToDomain(m.AuditFields),
	}
}

// ToModelMission converts a domain Mission to a model Mission
func ToModelMission(d domain.Mission) models.Mission {
	return models.Mission{
		MissionID:   d.MissionID,
		ClientID:    d.ClientID,
		Date:        formatDate(d.Date),
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Description: d.Description,
		AuditFields: auditToModel(d.AuditFields),
	}
}

// ToDomainMission converts a model Mission to a domain Mission
func ToDomainMission(m models.Mission) (domain.Mission, error) {
	date, err := parseDate(m.Date)
	if err != nil {
		return domain.Mission{}, err
	}
	return domain.Mission{
		MissionID:   m.MissionID,
		ClientID:    m.ClientID,
		Date:        date,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Description: m.Description,
		AuditFields: auditToDomain(m.AuditFields),
	}, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.MissionDateLayout)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.MissionDateLayout, s)
}
