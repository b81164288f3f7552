package whatsapp

// Config параметры WhatsApp Cloud API
type Config struct {
	BaseURL       string // https://graph.facebook.com
	APIVersion    string // v15.0
	PhoneNumberID string
	Token         string
}

type textBody struct {
	Body string `json:"body"`
}

type sendMessageRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

// SendMessageResponse ответ API на отправку сообщения
type SendMessageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// ErrorResponse модель ошибки Graph API
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}
