package export

import (
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

func amount(d decimal.Decimal) float64 {
	f, _ := utils.RoundMoney(d).Float64()
	return f
}

func dateCell(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.MissionDateLayout)
}
