package models

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ValidationResponse struct {
	Success bool        `json:"success"`
	Errors  interface{} `json:"errors"`
}

type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type ListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

type MarkResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Changed bool        `json:"changed"`
}

func NewMessageResponse(success bool, message string) MessageResponse {
	return MessageResponse{
		Success: success,
		Message: message,
	}
}

func NewValidationResponse(errors interface{}) ValidationResponse {
	return ValidationResponse{
		Success: false,
		Errors:  errors,
	}
}

func NewDataResponse(data interface{}) DataResponse {
	return DataResponse{
		Success: true,
		Data:    data,
	}
}

func NewListResponse(count int, data interface{}) ListResponse {
	return ListResponse{
		Success: true,
		Count:   count,
		Data:    data,
	}
}

func NewMarkResponse(data interface{}, changed bool) MarkResponse {
	return MarkResponse{
		Success: true,
		Data:    data,
		Changed: changed,
	}
}
