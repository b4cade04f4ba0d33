// Package shift contains shift-related use cases.
package shift

import (
	"context"

	"github.com/taxometer/backend/internal/domain/entity"
)

// PreviewShiftInput represents an unsaved shift being edited.
type PreviewShiftInput struct {
	Fields ShiftFields
}

// PreviewShiftOutput represents the derived figures of an unsaved shift.
type PreviewShiftOutput struct {
	Breakdown entity.ShiftBreakdown
}

// PreviewShiftUseCase computes live figures for the shift editor without saving anything.
type PreviewShiftUseCase struct{}

// NewPreviewShiftUseCase creates a new PreviewShiftUseCase instance.
func NewPreviewShiftUseCase() *PreviewShiftUseCase {
	return &PreviewShiftUseCase{}
}

// Execute computes the breakdown. The date is not required for a preview.
func (uc *PreviewShiftUseCase) Execute(ctx context.Context, input PreviewShiftInput) (*PreviewShiftOutput, error) {
	var s entity.Shift
	applyFields(&s, input.Fields)

	return &PreviewShiftOutput{
		Breakdown: s.Breakdown(),
	}, nil
}
