package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	MsgCategoryNotFound  = "Categoria não encontrada"
	MsgFoodNotFound      = "Produto não encontrado"
	MsgSizeNotFound      = "Tamanho não encontrado"
	MsgAddonNotFound     = "Extra não encontrada"
	MsgSizeFoodNotFound  = "Tamanho não encontrado"
	MsgAddonFoodNotFound = "Adicional não encontrado"
	MsgTableNotFound     = "Mesa não encontrada"
	MsgSessionNotFound   = "Sessão não encontrada"
	MsgOrderNotFound     = "Pedido não encontrado"
)

// AppError is a domain failure that already knows its HTTP status.
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

var (
	ErrSessionPaid      = Conflict("Sessão já está paga")
	ErrSessionVersion   = Conflict("Sessão foi alterada por outro terminal")
	ErrReferenceInUse   = Conflict("Registro está em uso por outro registro")
	ErrDuplicateRecord  = Conflict("Registro já existe")
	ErrInvalidReference = Conflict("Registro referenciado não existe")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Issues []FieldError `json:"issues"`
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Issues: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrNotFound is returned by repositories when no row matches; services turn
// it into a NotFound AppError carrying the resource message.
var ErrNotFound = errors.New("record not found")
