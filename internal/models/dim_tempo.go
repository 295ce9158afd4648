package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// DimTempo is a calendar dimension row, one per day. It backs the
// business-day counts used when generating monthly HR capacity.
type DimTempo struct {
	Data    time.Time `gorm:"primaryKey;type:date"`
	Ano     int       `gorm:"index:dim_tempo_ano_mes"`
	Mes     int       `gorm:"index:dim_tempo_ano_mes"`
	Dia     int
	DiaUtil bool
}

func (DimTempo) TableName() string {
	return "dim_tempo"
}

var ErrAnoInvalido = errors.New("the year must be between 1900 and 2999")

// AfterFind updates the date to use UTC as timezone, not +0000.
func (d *DimTempo) AfterFind(_ *gorm.DB) error {
	d.Data = d.Data.In(time.UTC)
	return nil
}

// PopulateDimTempo fills the calendar dimension for a whole year,
// replacing any rows already loaded for it. Saturdays and Sundays are
// not business days.
func PopulateDimTempo(db *gorm.DB, ano int) (int, error) {
	if ano < 1900 || ano > 2999 {
		return 0, ErrAnoInvalido
	}

	first := time.Date(ano, time.January, 1, 0, 0, 0, 0, time.UTC)

	days := make([]DimTempo, 0, 366)
	for day := first; day.Year() == ano; day = day.AddDate(0, 0, 1) {
		weekday := day.Weekday()

		days = append(days, DimTempo{
			Data:    day,
			Ano:     ano,
			Mes:     int(day.Month()),
			Dia:     day.Day(),
			DiaUtil: weekday != time.Saturday && weekday != time.Sunday,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&DimTempo{Ano: ano}).Delete(&DimTempo{}).Error
		if err != nil {
			return err
		}

		return tx.Create(&days).Error
	})
	if err != nil {
		return 0, err
	}

	return len(days), nil
}

// BusinessDays returns the number of business days in a month according
// to the calendar dimension.
func BusinessDays(db *gorm.DB, ano, mes int) (int64, error) {
	var count int64
	err := db.Model(&DimTempo{}).
		Where(&DimTempo{Ano: ano, Mes: mes, DiaUtil: true}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
