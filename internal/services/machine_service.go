package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"machsight/internal/models/db_models"
	"machsight/internal/models/request_models"
	"machsight/internal/models/response_models"
	"machsight/internal/repositories"
	"machsight/pkg/utils"
)

type MachineServiceInterface interface {
	AddMachine(ctx context.Context, userID string, req request_models.AddMachineRequest) error
	ListMachines(ctx context.Context, userID string) ([]response_models.MachineResponse, error)
}

type MachineService struct {
	machineRepo repositories.MachineRepositoryInterface
}

func NewMachineService(machineRepo repositories.MachineRepositoryInterface) MachineServiceInterface {
	return &MachineService{machineRepo: machineRepo}
}

// clean drops the junk values forms send for empty optional fields.
func clean(v string) string {
	v = strings.TrimSpace(v)
	if v == "null" {
		return ""
	}
	return v
}

func (s *MachineService) AddMachine(ctx context.Context, userID string, req request_models.AddMachineRequest) error {

	machine := &db_models.Machine{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Type:        clean(req.Type),
		ModelNumber: clean(req.ModelNumber),
	}

	if d := clean(req.InstallDate); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, d)
		}
		if err == nil {
			machine.InstallDate = &parsed
		}
	}

	if specs := clean(req.Specifications); specs != "" {
		blob, _ := json.Marshal(map[string]string{"notes": specs})
		machine.Specifications = blob
	}

	if err := s.machineRepo.Create(ctx, machine); err != nil {
		log.Printf("AddMachine: create failed: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *MachineService) ListMachines(ctx context.Context, userID string) ([]response_models.MachineResponse, error) {
	machines, err := s.machineRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	counts, err := s.machineRepo.ReportCounts(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.MachineResponse, 0, len(machines))
	for _, m := range machines {
		resp := response_models.MachineResponse{
			ID:          m.ID.String(),
			Name:        m.Name,
			Type:        m.Type,
			ModelNumber: m.ModelNumber,
			ReportCount: counts[m.ID],
			CreatedAt:   m.CreatedAt,
		}
		if m.InstallDate != nil {
			resp.InstallDate = m.InstallDate.Format("2006-01-02")
		}
		if len(m.Specifications) > 0 {
			var specs map[string]string
			if json.Unmarshal(m.Specifications, &specs) == nil {
				resp.Specifications = specs["notes"]
			}
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
