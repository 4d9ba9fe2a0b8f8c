// Package types содержит общие типы данных, используемые между слоями сервиса.
package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	displayFormat = "15:04"    // HH:MM — внешняя (отображаемая) форма
	storageFormat = "15:04:05" // HH:MM:SS — внутренняя форма и форма хранения
)

// TimeString время суток в нормализованной форме HH:MM:SS.
// Снаружи время приходит как HH:MM или HH:MM:SS; все внутренние сравнения
// выполняются над полной формой HH:MM:SS.
type TimeString string

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(storageFormat))
}

// NewTimeStringFromString парсит строку времени в формате HH:MM или HH:MM:SS
// и нормализует её к HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(storageFormat, s); err == nil {
		return TimeString(t.Format(storageFormat)), nil
	}
	t, err := time.Parse(displayFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}
	return TimeString(t.Format(storageFormat)), nil
}

// String возвращает полную форму HH:MM:SS
func (t TimeString) String() string {
	return string(t)
}

// Display возвращает отображаемую форму HH:MM
func (t TimeString) Display() string {
	parsed, err := time.Parse(storageFormat, string(t))
	if err != nil {
		return string(t)
	}
	return parsed.Format(displayFormat)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение является корректным временем в форме HH:MM:SS
func (t TimeString) Validate() error {
	if _, err := time.Parse(storageFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time string: %q", string(t))
	}
	return nil
}

// IsBefore возвращает true, если t строго раньше other.
// Обе величины нормализованы к HH:MM:SS, поэтому лексикографическое
// сравнение совпадает с хронологическим.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Выход за границу суток считается ошибкой: слоты не пересекают полночь.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(storageFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time string: %q", string(t))
	}
	total := parsed.Hour()*60 + parsed.Minute() + minutes
	if total >= 24*60 || total < 0 {
		return "", fmt.Errorf("time %q + %d minutes is out of day bounds", string(t), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d:%02d", total/60, total%60, parsed.Second())), nil
}

// Value реализует driver.Valuer для записи в колонки типа TIME
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения колонок типа TIME
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}
