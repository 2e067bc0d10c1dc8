package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/internal/usecase"
	"clinic-pharmacy-api/pkg/response"
	"clinic-pharmacy-api/pkg/validator"
)

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

// List handles listing medicines
// @Summary List medicines
// @Tags Medicines
// @Produce json
// @Param search query string false "Matches name, generic name or SKU"
// @Param category query string false "Category"
// @Param lowStock query bool false "Only stock at or below reorder level"
// @Param sortBy query string false "name, sku, category, stockQty, sellingPrice, expiryDate, createdAt"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /medicines [get]
func (h *MedicineHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := parseListQuery(r, entity.MedicineSortFields, entity.ByName)
	if err != nil {
		writeFilterError(w, err)
		return
	}

	q := r.URL.Query()
	filter := entity.MedicineFilter{
		ListQuery: list,
		Category:  optionalString(q, "category"),
	}
	if filter.LowStock, err = optionalBool(q, "lowStock"); err != nil {
		writeFilterError(w, err)
		return
	}

	medicines, meta, err := h.medicineUsecase.List(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Failed to fetch medicines")
		return
	}

	response.SuccessWithPagination(w, http.StatusOK, "Medicines retrieved successfully", medicines, meta)
}

func (h *MedicineHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid medicine ID")
		return
	}

	medicine, err := h.medicineUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to fetch medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine retrieved successfully", medicine)
}

func (h *MedicineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			response.Conflict(w, "Medicine with this SKU already exists")
			return
		}
		writeError(w, err, "Failed to create medicine")
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

func (h *MedicineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid medicine ID")
		return
	}

	var req dto.UpdateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			response.Conflict(w, "Medicine with this SKU already exists")
			return
		}
		writeError(w, err, "Failed to update medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated successfully", medicine)
}

func (h *MedicineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid medicine ID")
		return
	}

	if err := h.medicineUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}

// AdjustStock handles manual stock changes
// @Summary Add or subtract medicine stock
// @Tags Medicines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Medicine ID"
// @Param request body dto.StockAdjustmentRequest true "Stock Adjustment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicines/{id}/stock [post]
func (h *MedicineHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid medicine ID")
		return
	}

	var req dto.StockAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.AdjustStock(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update stock")
		return
	}

	response.Success(w, http.StatusOK, "Stock updated successfully", medicine)
}

func (h *MedicineHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid medicine ID")
		return
	}

	list, err := parseListQuery(r, entity.MovementSortFields, entity.NewestFirst)
	if err != nil {
		writeFilterError(w, err)
		return
	}

	filter := entity.MovementFilter{ListQuery: list, MedicineID: id}
	if filter.Type, err = optionalEnum(r.URL.Query(), "type", entity.MovementType.IsValid); err != nil {
		writeFilterError(w, err)
		return
	}

	movements, meta, err := h.medicineUsecase.ListMovements(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Failed to fetch stock movements")
		return
	}

	response.SuccessWithPagination(w, http.StatusOK, "Stock movements retrieved successfully", movements, meta)
}
