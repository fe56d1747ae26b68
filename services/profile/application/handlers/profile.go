package handlers

import (
	"net/http"
	"time"

	"github.com/cotadorplus/cotador/pkg/auth"
	"github.com/cotadorplus/cotador/pkg/errhttp"
	"github.com/cotadorplus/cotador/pkg/httpx"
	pkgvalidator "github.com/cotadorplus/cotador/pkg/validator"
	appsvcs "github.com/cotadorplus/cotador/services/profile/application/services"
	"github.com/cotadorplus/cotador/services/profile/domain/models"
)

// ProfileResponse is the JSON representation of the provider profile.
type ProfileResponse struct {
	BusinessName    string    `json:"businessName"    example:"Elétrica Silva"`
	PixKey          string    `json:"pixKey"          example:"12345678901"`
	PixKeyFormatted string    `json:"pixKeyFormatted" example:"123.456.789-01"`
	PixType         string    `json:"pixType"         example:"cpf"`
	PixTypeLabel    string    `json:"pixTypeLabel"    example:"CPF"`
	LogoURL         string    `json:"logoUrl,omitempty"`
	IsPremium       bool      `json:"isPremium"       example:"false"`
	UpdatedAt       time.Time `json:"updatedAt"       example:"2025-03-10T14:30:00Z"`
} // @name ProfileResponse

// UpdateProfileRequest is the request body for PUT /profile.
type UpdateProfileRequest struct {
	BusinessName string `json:"businessName" validate:"required,max=255"          example:"Elétrica Silva"`
	PixKey       string `json:"pixKey"       validate:"max=77"                    example:"12345678901"`
	LogoURL      string `json:"logoUrl"      validate:"omitempty,url,max=2048"`
} // @name UpdateProfileRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"profile not found"`
	Code  string `json:"code,omitempty" example:"profile_not_found"`
} // @name ProfileErrorResponse

// ProfileHandler serves /profile.
type ProfileHandler struct {
	svc *appsvcs.Services
}

func NewProfileHandler(svc *appsvcs.Services) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Get returns the caller's profile.
//
//	@Summary	Get provider profile
//	@Tags		profile
//	@Produce	json
//	@Param		X-Tenant-ID	header		string	true	"Tenant id"
//	@Success	200			{object}	ProfileResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.Profile.Get(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProfileResponse(p))
}

// Put creates or updates the caller's profile. isPremium is read-only.
//
//	@Summary	Save provider profile
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Param		X-Tenant-ID	header		string					true	"Tenant id"
//	@Param		request		body		UpdateProfileRequest	true	"Profile"
//	@Success	200			{object}	ProfileResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/profile [put]
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProfileRequest](w, r)
	if !ok {
		return
	}

	p, err := h.svc.Profile.Save(r.Context(), tenantID, req.BusinessName, req.PixKey, req.LogoURL)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProfileResponse(p))
}

func toProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		BusinessName:    p.BusinessName,
		PixKey:          p.PixKey,
		PixKeyFormatted: models.FormatPixKey(p.PixKey),
		PixType:         string(p.PixType),
		PixTypeLabel:    p.PixType.Label(),
		LogoURL:         p.LogoURL,
		IsPremium:       p.IsPremium,
		UpdatedAt:       p.UpdatedAt,
	}
}
