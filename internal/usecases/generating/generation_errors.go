package generating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/creative-rotation-api/internal/domain"
)

var ErrGenerationFailed = errors.New("creative generation failed")

// GenerationError registra a falta de variantes de um tipo depois da nova tentativa
type GenerationError struct {
	Kind      domain.VariantKind
	Requested int
	Received  int
	Cause     error
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("%s: %s %d/%d", ErrGenerationFailed.Error(), e.Kind, e.Received, e.Requested)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", msg, e.Cause.Error())
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return ErrGenerationFailed
}

// FailedKind retorna o tipo de variante que ficou incompleto
func (e *GenerationError) FailedKind() domain.VariantKind {
	return e.Kind
}
