package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-pharmacy-api/internal/converter"
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrMedicineInUse     = errors.New("medicine is referenced by existing sales")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStockLimit        = errors.New("stock would exceed the maximum quantity")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

type MedicineUsecase interface {
	List(ctx context.Context, filter entity.MedicineFilter) ([]dto.MedicineResponse, *pagination.Meta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error)
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AdjustStock(ctx context.Context, id uuid.UUID, req *dto.StockAdjustmentRequest) (*dto.MedicineResponse, error)
	ListMovements(ctx context.Context, filter entity.MovementFilter) ([]dto.StockMovementResponse, *pagination.Meta, error)
}

type medicineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	movementRepo repository.StockMovementRepository
	cache        DashboardInvalidator
}

func NewMedicineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	movementRepo repository.StockMovementRepository,
	cache DashboardInvalidator,
) MedicineUsecase {
	return &medicineUsecase{
		db:           db,
		log:          log,
		medicineRepo: medicineRepo,
		movementRepo: movementRepo,
		cache:        cache,
	}
}

func (u *medicineUsecase) List(ctx context.Context, filter entity.MedicineFilter) ([]dto.MedicineResponse, *pagination.Meta, error) {
	medicines, total, err := u.medicineRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, nil, err
	}
	return converter.MedicinesToResponses(medicines), filter.Page.Meta(total), nil
}

func (u *medicineUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", id, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}
	return converter.MedicineToResponse(medicine), nil
}

// Create stores the medicine and, when it arrives with stock, records the
// opening quantity as a purchase movement in the same transaction.
func (u *medicineUsecase) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if req.PurchasePrice.IsNegative() || req.SellingPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	expiry, err := parseCalendarDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	medicine := &entity.Medicine{
		SKU:           req.SKU,
		Name:          req.Name,
		GenericName:   req.GenericName,
		Category:      req.Category,
		Manufacturer:  req.Manufacturer,
		Strength:      req.Strength,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		StockQty:      req.StockQty,
		ReorderLevel:  entity.DefaultReorderLevel,
		ExpiryDate:    expiry,
		BatchNumber:   req.BatchNumber,
	}
	if req.ReorderLevel != nil {
		medicine.ReorderLevel = *req.ReorderLevel
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.medicineRepo.Create(tx, medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	if medicine.StockQty > 0 {
		movement := &entity.StockMovement{
			MedicineID:    medicine.ID,
			Type:          entity.MovementPurchase,
			Quantity:      medicine.StockQty,
			PreviousStock: 0,
			NewStock:      medicine.StockQty,
			Reason:        "Opening stock",
		}
		if err := u.movementRepo.Create(tx, movement); err != nil {
			u.log.Warnf("Failed to record opening stock for medicine %s: %+v", medicine.ID, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit medicine creation: %+v", err)
		return nil, err
	}
	u.cache.InvalidateDashboard(ctx)

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	db := u.db.WithContext(ctx)

	medicine, err := u.medicineRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", id, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	if req.SKU != nil {
		medicine.SKU = *req.SKU
	}
	if req.Name != nil {
		medicine.Name = *req.Name
	}
	if req.GenericName != nil {
		medicine.GenericName = req.GenericName
	}
	if req.Category != nil {
		medicine.Category = *req.Category
	}
	if req.Manufacturer != nil {
		medicine.Manufacturer = req.Manufacturer
	}
	if req.Strength != nil {
		medicine.Strength = req.Strength
	}
	if req.Unit != nil {
		medicine.Unit = *req.Unit
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return nil, ErrNegativePrice
		}
		medicine.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		if req.SellingPrice.IsNegative() {
			return nil, ErrNegativePrice
		}
		medicine.SellingPrice = *req.SellingPrice
	}
	if req.ReorderLevel != nil {
		medicine.ReorderLevel = *req.ReorderLevel
	}
	if req.ExpiryDate != nil {
		expiry, err := parseCalendarDate(req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		medicine.ExpiryDate = expiry
	}
	if req.BatchNumber != nil {
		medicine.BatchNumber = req.BatchNumber
	}

	affected, err := u.medicineRepo.Update(db, medicine)
	if err != nil {
		u.log.Warnf("Failed to update medicine %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrMedicineNotFound
	}

	// Stock is not written by Update; read it back fresh.
	if fresh, err := u.medicineRepo.FindByID(db, id); err == nil && fresh != nil {
		medicine = fresh
	}
	u.cache.InvalidateDashboard(ctx)

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.medicineRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, repository.ErrRelatedNotFound) {
			return ErrMedicineInUse
		}
		u.log.Warnf("Failed to delete medicine %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrMedicineNotFound
	}
	u.cache.InvalidateDashboard(ctx)
	return nil
}

// AdjustStock adds or removes stock and appends the matching movement.
//
// Flow (one transaction):
// 1. Verify the medicine exists
// 2. Conditional update stock_qty = stock_qty + delta WHERE result in [0, MaxStockQty]
// 3. Zero affected rows means the stock would go negative or past the cap
// 4. Append the movement with previous and new stock
func (u *medicineUsecase) AdjustStock(ctx context.Context, id uuid.UUID, req *dto.StockAdjustmentRequest) (*dto.MedicineResponse, error) {
	delta := req.Quantity
	movementType := entity.MovementPurchase
	if req.Type == dto.StockSubtract {
		delta = -req.Quantity
		movementType = entity.MovementAdjustment
	}

	reason := defaultAdjustmentReason(req.Type, req.Quantity)
	if req.Reason != nil && *req.Reason != "" {
		reason = *req.Reason
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicine, err := u.medicineRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", id, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	affected, err := u.medicineRepo.AdjustStock(tx, id, delta)
	if err != nil {
		u.log.Warnf("Failed to adjust stock for medicine %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		if delta > 0 {
			return nil, ErrStockLimit
		}
		return nil, ErrInsufficientStock
	}

	updated, err := u.medicineRepo.FindByID(tx, id)
	if err != nil || updated == nil {
		u.log.Warnf("Failed to reload medicine %s: %+v", id, err)
		return nil, fmt.Errorf("reload medicine %s: %w", id, err)
	}

	movement := &entity.StockMovement{
		MedicineID:    id,
		Type:          movementType,
		Quantity:      delta,
		PreviousStock: updated.StockQty - delta,
		NewStock:      updated.StockQty,
		Reason:        reason,
	}
	if err := u.movementRepo.Create(tx, movement); err != nil {
		u.log.Warnf("Failed to record stock movement for medicine %s: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit stock adjustment: %+v", err)
		return nil, err
	}
	u.cache.InvalidateDashboard(ctx)

	u.log.Infof("Stock adjusted: medicine=%s, delta=%d, stock=%d->%d", id, delta, movement.PreviousStock, movement.NewStock)
	return converter.MedicineToResponse(updated), nil
}

func defaultAdjustmentReason(adjustment string, quantity int) string {
	if adjustment == dto.StockSubtract {
		return fmt.Sprintf("Stock subtracted: %d units", quantity)
	}
	return fmt.Sprintf("Stock added: %d units", quantity)
}

func (u *medicineUsecase) ListMovements(ctx context.Context, filter entity.MovementFilter) ([]dto.StockMovementResponse, *pagination.Meta, error) {
	db := u.db.WithContext(ctx)

	medicine, err := u.medicineRepo.FindByID(db, filter.MedicineID)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", filter.MedicineID, err)
		return nil, nil, err
	}
	if medicine == nil {
		return nil, nil, ErrMedicineNotFound
	}

	movements, total, err := u.movementRepo.FindByMedicine(db, filter)
	if err != nil {
		u.log.Warnf("Failed to list stock movements for medicine %s: %+v", filter.MedicineID, err)
		return nil, nil, err
	}
	return converter.StockMovementsToResponses(movements), filter.Page.Meta(total), nil
}
