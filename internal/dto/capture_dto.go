package dto

import "github.com/google/uuid"

type CaptureRequest struct {
	Text string `json:"text" validate:"required"`
}

type CaptureResponse struct {
	Type    string    `json:"type"` // task or note
	Id      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}
