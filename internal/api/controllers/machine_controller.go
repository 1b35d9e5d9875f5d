package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"machsight/internal/models/request_models"
	"machsight/internal/services"
	"machsight/pkg/utils"
)

type MachineController struct {
	machineService services.MachineServiceInterface
}

func NewMachineController(machineService services.MachineServiceInterface) *MachineController {
	return &MachineController{
		machineService: machineService,
	}
}

// AddMachine godoc
// @Summary Register a machine
// @Description Register an asset owned by the authenticated user
// @Tags Machines
// @Accept json
// @Produce json
// @Param request body request_models.AddMachineRequest true "Machine payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /machines [post]
func (m *MachineController) AddMachine(c *gin.Context) {

	var request request_models.AddMachineRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Machine name is required (min 2 characters)")
		return
	}

	userID := c.GetString("user_id")

	if err := m.machineService.AddMachine(c.Request.Context(), userID, request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Machine registered successfully")
}

// ListMachines godoc
// @Summary List machines
// @Description List the authenticated user's machines, newest first, with report counts
// @Tags Machines
// @Produce json
// @Success 200 {array} response_models.MachineResponse
// @Security BearerAuth
// @Router /machines [get]
func (m *MachineController) ListMachines(c *gin.Context) {
	userID := c.GetString("user_id")

	machines, err := m.machineService.ListMachines(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, machines, "Machines fetched successfully")
}
