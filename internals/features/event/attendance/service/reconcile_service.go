// file: internals/features/event/attendance/service/reconcile_service.go
package service

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"profoli_backend/internals/features/event/attendance/dto"
	"profoli_backend/internals/features/event/attendance/model"
	themeModel "profoli_backend/internals/features/event/themes/model"
)

var ErrInvalidSession = errors.New("Sessão inválida: tema não encontrado")

// Reconcile grava a chamada de uma sessão (data + tema): cada inscrito
// enviado tem sua linha criada ou substituída via upsert na chave composta;
// inscritos fora da lista ficam como estão. Reenviar a mesma chamada produz
// o mesmo estado final.
//
// A flag de finalização é de sessão: uma vez finalizada (nesta chamada ou
// em alguma anterior), todas as linhas da sessão passam a carregá-la.
func Reconcile(db *gorm.DB, req dto.ReconcileRequest) error {
	var themeCount int64
	if err := db.Model(&themeModel.ThemeModel{}).
		Where("theme_id = ?", req.ThemeID).
		Count(&themeCount).Error; err != nil {
		return err
	}
	if themeCount == 0 {
		return ErrInvalidSession
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var finalizedCount int64
		if err := tx.Model(&model.AttendanceModel{}).
			Where("attendance_date = ? AND attendance_theme_id = ? AND attendance_finalized = ?", req.Date, req.ThemeID, true).
			Count(&finalizedCount).Error; err != nil {
			return err
		}
		finalized := req.Finalized || finalizedCount > 0

		for _, r := range req.Records {
			rec := model.AttendanceModel{
				AttendanceAttendeeID: r.AttendeeID,
				AttendanceDate:       req.Date,
				AttendanceThemeID:    req.ThemeID,
				AttendancePresent:    r.Present,
				AttendanceFinalized:  finalized,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "attendance_attendee_id"},
					{Name: "attendance_date"},
					{Name: "attendance_theme_id"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"attendance_present", "attendance_finalized"}),
			}).Create(&rec).Error; err != nil {
				return err
			}
		}

		if finalized {
			// invariante: sessão finalizada lê finalized=true em toda linha
			if err := tx.Model(&model.AttendanceModel{}).
				Where("attendance_date = ? AND attendance_theme_id = ?", req.Date, req.ThemeID).
				Update("attendance_finalized", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// List devolve as linhas de presença, filtráveis por data e/ou tema.
func List(db *gorm.DB, date, themeID string) ([]model.AttendanceModel, error) {
	q := db.Model(&model.AttendanceModel{})
	if date != "" {
		q = q.Where("attendance_date = ?", date)
	}
	if themeID != "" {
		q = q.Where("attendance_theme_id = ?", themeID)
	}
	var records []model.AttendanceModel
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
