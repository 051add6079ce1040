package handlers

import (
	"net/http"

	professionalRepo "glambook/database/repository/professional"
	providerRepo "glambook/database/repository/provider"
	"glambook/models"
	"glambook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProviderHandler exposes the provider browsing surface the booking flow
// needs: business profiles with their service catalogue, and staff lists.
type ProviderHandler struct {
	Providers     providerRepo.ProviderRepository
	Professionals professionalRepo.ProfessionalRepository
}

func NewProviderHandler(providers providerRepo.ProviderRepository, professionals professionalRepo.ProfessionalRepository) *ProviderHandler {
	return &ProviderHandler{Providers: providers, Professionals: professionals}
}

// GetProvider handles GET /api/providers/:id
func (h *ProviderHandler) GetProvider(c *gin.Context) {
	provider, err := h.Providers.GetByID(c.Param("id"))
	if err != nil {
		if err == providerRepo.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, "Provider not found", "")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again in a moment.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": provider})
}

// ListProfessionals handles GET /api/providers/:id/professionals
func (h *ProviderHandler) ListProfessionals(c *gin.Context) {
	profs, err := h.Professionals.ListByProvider(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again in a moment.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"professionals": profs})
}

// RegisterProvider handles POST /api/providers/register.
func (h *ProviderHandler) RegisterProvider(c *gin.Context) {
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if provider.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "name is required")
		return
	}

	provider.ID = uuid.New().String()
	for i := range provider.Services {
		if provider.Services[i].ID == "" {
			provider.Services[i].ID = uuid.New().String()
		}
		provider.Services[i].ProviderID = provider.ID
	}

	if err := h.Providers.Create(&provider); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again in a moment.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"provider": provider})
}

// RegisterProfessional handles POST /api/providers/:id/professionals.
func (h *ProviderHandler) RegisterProfessional(c *gin.Context) {
	var prof models.Professional
	if err := c.ShouldBindJSON(&prof); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if prof.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "name is required")
		return
	}

	providerID := c.Param("id")
	provider, err := h.Providers.GetByID(providerID)
	if err != nil {
		if err == providerRepo.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, "Provider not found", "")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again in a moment.")
		return
	}

	// A professional can only offer services the provider actually has.
	for _, sid := range prof.ServiceIDs {
		if _, ok := provider.ServiceByID(sid); !ok {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", "unknown service "+sid)
			return
		}
	}

	prof.ID = uuid.New().String()
	prof.ProviderID = providerID
	if err := h.Professionals.Create(&prof); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "Please try again in a moment.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"professional": prof})
}
