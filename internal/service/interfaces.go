package service

import (
	"context"

	"github.com/alexanderramin/doseplan/internal/contract"
)

// PlanService generates treatment plans and assembles the printable
// document.
type PlanService interface {
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.PlanResult, error)
}
