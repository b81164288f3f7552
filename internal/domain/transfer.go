package domain

import (
	"fmt"
	"strings"
	"time"
)

// TransferStatus represents the status of a transfer request
type TransferStatus string

const (
	TransferPending  TransferStatus = "Pendiente"
	TransferAccepted TransferStatus = "Aceptada"
	TransferRejected TransferStatus = "Rechazada"
)

// TransferRequest peer-to-peer handoff of a task between technicians
type TransferRequest struct {
	ID          int64
	TaskID      int64
	RequesterID int64
	RecipientID int64
	Status      TransferStatus
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// IsPending returns true if the recipient has not answered yet
func (r *TransferRequest) IsPending() bool {
	return r.Status == TransferPending
}

// TransferDecision ответ получателя на запрос передачи
type TransferDecision string

const (
	DecisionAccept TransferDecision = "accept"
	DecisionReject TransferDecision = "reject"
)

// ParseTransferDecision принимает accept/reject (и aceptar/rechazar из веб-формы)
func ParseTransferDecision(s string) (TransferDecision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept", "aceptar":
		return DecisionAccept, nil
	case "reject", "rechazar":
		return DecisionReject, nil
	default:
		return "", fmt.Errorf("%w: unknown transfer decision %q", ErrInvalidAction, s)
	}
}

// ResultStatus статус запроса после решения
func (d TransferDecision) ResultStatus() TransferStatus {
	if d == DecisionAccept {
		return TransferAccepted
	}
	return TransferRejected
}
