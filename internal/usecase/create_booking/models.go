package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	OfficeID  int64     // ID офиса; 0 означает офис зала
	HallID    int64     // ID зала
	SessionID int64     // ID сессии (тип использования)
	SlotDate  time.Time // Дата слота (без времени)
	SlotTime  string    // Метка времени слота, например "09:00-10:00"

	EmpCode     string
	EmpName     string
	EmpEmail    string
	EmpMobileNo string
	TeamName    string
	Shift       string

	ITSupport        bool
	HRSupport        bool
	FinanceSupport   bool
	CafeteriaSupport bool

	Description *string // Описание мероприятия (опционально)
}
