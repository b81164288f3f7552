package models

import (
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// ClientInput данные клиента из формы заявки
type ClientInput struct {
	NationalID string
	Name       string
	Phone      *string
	Address    *string
	Plan       *string
}

// ClientResponse клиент в ответах API
type ClientResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"nombre"`
	NationalID      string    `json:"dni"`
	Phone           *string   `json:"telefono,omitempty"`
	Address         *string   `json:"direccion,omitempty"`
	Plan            *string   `json:"plan,omitempty"`
	Code            *string   `json:"codigoCliente,omitempty"`
	PaymentState    string    `json:"estadoPago"`
	NextPaymentDate *string   `json:"fechaProximoPago,omitempty"`
	OnuSerial       *string   `json:"onuSn,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PersonResponse результат поиска по DNI
type PersonResponse struct {
	NationalID string `json:"dni"`
	Name       string `json:"nombre"`
	Cached     bool   `json:"cached"`
}

// RouterUserResponse PPPoE-пользователь роутера
type RouterUserResponse struct {
	Username string `json:"username"`
	Service  string `json:"service"`
	Phone    string `json:"phone"`
	Disabled bool   `json:"disabled"`
}

// FromDomainClient конвертирует domain.Client в ответ API
// Пароль PPPoE в ответы не попадает
func FromDomainClient(c *domain.Client) *ClientResponse {
	resp := &ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		NationalID:   c.NationalID,
		Phone:        c.Phone,
		Address:      c.Address,
		Plan:         c.Plan,
		Code:         c.Code,
		PaymentState: string(c.PaymentState),
		OnuSerial:    c.OnuSerial,
		CreatedAt:    c.CreatedAt,
	}
	if c.NextPaymentDate != nil {
		date := c.NextPaymentDate.Format(domain.DateFormat)
		resp.NextPaymentDate = &date
	}
	return resp
}

// FromDomainClientList конвертирует список клиентов
func FromDomainClientList(clients []*domain.Client) []*ClientResponse {
	out := make([]*ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromDomainClient(c))
	}
	return out
}
