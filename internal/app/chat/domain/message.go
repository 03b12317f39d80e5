package domain

import "time"

// Role identifies who authored a transcript entry.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Fixed texts shown by the advisor. They are part of the user-facing contract.
const (
	Greeting            = "Советник Легион Тигр на связи. Готов помочь с выбором снаряжения и экипировки."
	FallbackOffline     = "Тактический советник офлайн: Ключ API отсутствует."
	FallbackInterrupted = "Связь прервана. Попробуйте снова."
	FallbackSignalLost  = "Сигнал потерян. Советник недоступен."
)

// Message is one transcript entry. Timestamp is UTC.
type Message struct {
	Role      Role
	Text      string
	Timestamp time.Time
}
