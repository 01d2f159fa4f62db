package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsPermissionDenied verifica se o token não tem permissão para a operação (códigos 10 e 200-299)
func (e *ErrorResponse) IsPermissionDenied() bool {
	return e.Error.Code == 10 || (e.Error.Code >= 200 && e.Error.Code < 300)
}

// IsRateLimited verifica se a chamada foi limitada pela plataforma
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613, 80004:
		return true
	}
	return false
}

func (e *ErrorResponse) String() string {
	return fmt.Sprintf("meta: %s (code: %d, subcode: %d, trace: %s)",
		e.Error.Message, e.Error.Code, e.Error.ErrorSubcode, e.Error.FBTraceID)
}
