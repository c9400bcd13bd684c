package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dados de recebimento via PIX exibidos na página de formas de pagamento.
// Tabela de linha única.
type PaymentSettingModel struct {
	PaymentSettingID        string    `gorm:"column:payment_setting_id;primaryKey;type:uuid"`
	PaymentSettingPixKey    string    `gorm:"column:payment_setting_pix_key;type:varchar(120);not null"`
	PaymentSettingHolder    string    `gorm:"column:payment_setting_holder;type:varchar(25);not null"`
	PaymentSettingCity      string    `gorm:"column:payment_setting_city;type:varchar(15);not null"`
	PaymentSettingUpdatedAt time.Time `gorm:"column:payment_setting_updated_at;autoUpdateTime"`
}

func (PaymentSettingModel) TableName() string {
	return "payment_settings"
}

func (m *PaymentSettingModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentSettingID == "" {
		m.PaymentSettingID = uuid.NewString()
	}
	return nil
}
