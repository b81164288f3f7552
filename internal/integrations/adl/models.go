package adl

// DeactivateRequest запрос на отключение услуги клиента
type DeactivateRequest struct {
	Name      string `json:"nombre"`
	OnuSerial string `json:"onu_sn"`
}
