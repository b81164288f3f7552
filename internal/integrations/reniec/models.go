package reniec

// Person данные гражданина по DNI
type Person struct {
	NationalID string `json:"dni"`
	Name       string `json:"nombre"`
}

type lookupResponse struct {
	Name string `json:"nombre"`
}
