package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/usecase"
	"clinic-pharmacy-api/pkg/response"
	"clinic-pharmacy-api/pkg/validator"
)

type SaleHandler struct {
	saleUsecase usecase.SaleUsecase
	validator   *validator.CustomValidator
	loc         *time.Location
}

func NewSaleHandler(saleUsecase usecase.SaleUsecase, validator *validator.CustomValidator, loc *time.Location) *SaleHandler {
	return &SaleHandler{
		saleUsecase: saleUsecase,
		validator:   validator,
		loc:         loc,
	}
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := parseListQuery(r, entity.SaleSortFields, entity.NewestFirst)
	if err != nil {
		writeFilterError(w, err)
		return
	}

	q := r.URL.Query()
	filter := entity.SaleFilter{ListQuery: list}
	if filter.Date, err = optionalDay(q, "date", h.loc); err != nil {
		writeFilterError(w, err)
		return
	}
	if filter.PaymentMethod, err = optionalEnum(q, "paymentMethod", entity.PaymentMethod.IsValid); err != nil {
		writeFilterError(w, err)
		return
	}
	if filter.Status, err = optionalEnum(q, "status", entity.SaleStatus.IsValid); err != nil {
		writeFilterError(w, err)
		return
	}

	sales, meta, err := h.saleUsecase.List(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Failed to fetch sales")
		return
	}

	response.SuccessWithPagination(w, http.StatusOK, "Sales retrieved successfully", sales, meta)
}

func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid sale ID")
		return
	}

	sale, err := h.saleUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to fetch sale")
		return
	}

	response.Success(w, http.StatusOK, "Sale retrieved successfully", sale)
}

// Create handles point-of-sale checkout
// @Summary Record a sale
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSaleRequest true "Create Sale Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /sales [post]
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	sale, err := h.saleUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to record sale")
		return
	}

	response.Success(w, http.StatusCreated, "Sale recorded successfully", sale)
}
