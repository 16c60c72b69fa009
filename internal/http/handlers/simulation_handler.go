// README: Simulation handlers; run an event list and fetch a cached report.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dispatchsim/internal/modules/simulation"
)

type SimulationHandler struct {
	sim *simulation.Service
}

func NewSimulationHandler(svc *simulation.Service) *SimulationHandler {
	return &SimulationHandler{sim: svc}
}

type runSimulationReq struct {
	Events  string `json:"events"`
	MaxTime *int   `json:"max_time"`
}

func (h *SimulationHandler) Run(c *gin.Context) {
	var req runSimulationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Events == "" {
		writeError(c, http.StatusBadRequest, "missing events")
		return
	}
	run, err := h.sim.Run(c.Request.Context(), simulation.RunCommand{
		Events:  req.Events,
		MaxTime: req.MaxTime,
	})
	if err != nil {
		writeSimulationError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, run)
}

func (h *SimulationHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing run id")
		return
	}
	run, err := h.sim.Get(c.Request.Context(), id)
	if err != nil {
		writeSimulationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, run)
}
