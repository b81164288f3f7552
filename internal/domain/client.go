package domain

import (
	"strconv"
	"strings"
	"time"
)

// PaymentState состояние оплаты клиента
type PaymentState string

const (
	PaymentActive PaymentState = "Activo"
	PaymentCut    PaymentState = "Cortado"
)

// Client абонент провайдера
type Client struct {
	ID                   int64
	Name                 string
	NationalID           string // DNI, уникален
	Phone                *string
	Address              *string
	Plan                 *string
	Code                 *string // "5001-JUAN-PEREZ", у импортированных клиентов может отсутствовать
	ProvisioningPassword *string // PPPoE
	PaymentState         PaymentState
	NextPaymentDate      *time.Time
	OnuSerial            *string
	CreatedAt            time.Time
}

// IsCut returns true if the client's service has been cut for non-payment
func (c *Client) IsCut() bool {
	return c.PaymentState == PaymentCut
}

// IsOverdue returns true if the next payment date is strictly before today
func (c *Client) IsOverdue(today time.Time) bool {
	if c.NextPaymentDate == nil {
		return false
	}
	y, m, d := today.Date()
	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return c.NextPaymentDate.Before(startOfToday)
}

// FormatClientCodeName приводит имя клиента к виду "JUAN-PEREZ"
func FormatClientCodeName(name string) string {
	return strings.Join(strings.Fields(strings.ToUpper(name)), "-")
}

// ClientCodeNumber извлекает числовой префикс кода клиента провайдера
// Возвращает false, если код не начинается с ClientCodePrefix или префикс не числовой
func ClientCodeNumber(code string) (int, bool) {
	prefix, _, found := strings.Cut(code, "-")
	if !found || !strings.HasPrefix(prefix, ClientCodePrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(prefix)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// NextClientCode формирует следующий код клиента
// lastNumber - максимальный существующий номер, hasLast == false, если кодов ещё нет
func NextClientCode(lastNumber int, hasLast bool, name string) string {
	next := FirstClientCodeNumber
	if hasLast {
		next = lastNumber + 1
	}
	return strconv.Itoa(next) + "-" + FormatClientCodeName(name)
}
