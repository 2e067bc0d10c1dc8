package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"clinic-pharmacy-api/internal/converter"
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSaleNotFound         = errors.New("sale not found")
	ErrInvalidDiscount      = errors.New("discount must be between zero and the line amount")
	ErrInvoiceNumberExhaust = errors.New("could not allocate a unique invoice number")
)

const invoiceAttempts = 5

type SaleUsecase interface {
	List(ctx context.Context, filter entity.SaleFilter) ([]dto.SaleResponse, *pagination.Meta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	Create(ctx context.Context, req *dto.CreateSaleRequest) (*dto.SaleResponse, error)
}

type saleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	loc          *time.Location
	saleRepo     repository.SaleRepository
	medicineRepo repository.MedicineRepository
	movementRepo repository.StockMovementRepository
	cache        DashboardInvalidator
}

func NewSaleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	saleRepo repository.SaleRepository,
	medicineRepo repository.MedicineRepository,
	movementRepo repository.StockMovementRepository,
	cache DashboardInvalidator,
) SaleUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &saleUsecase{
		db:           db,
		log:          log,
		loc:          loc,
		saleRepo:     saleRepo,
		medicineRepo: medicineRepo,
		movementRepo: movementRepo,
		cache:        cache,
	}
}

func (u *saleUsecase) List(ctx context.Context, filter entity.SaleFilter) ([]dto.SaleResponse, *pagination.Meta, error) {
	sales, total, err := u.saleRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list sales: %+v", err)
		return nil, nil, err
	}
	return converter.SalesToResponses(sales), filter.Page.Meta(total), nil
}

func (u *saleUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := u.saleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find sale %s: %+v", id, err)
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}
	return converter.SaleToResponse(sale), nil
}

// Create records a sale and takes its items out of stock.
//
// Flow (one transaction):
// 1. Price every item from the medicine's current selling price
// 2. subtotal = sum(price*qty), totalDiscount = sum(discount), grandTotal = subtotal - totalDiscount
// 3. Insert the sale with its items under a fresh invoice number
// 4. Per item: conditional stock decrement and a sale movement
// Any item short on stock rolls back the whole sale.
func (u *saleUsecase) Create(ctx context.Context, req *dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ids := make([]uuid.UUID, 0, len(req.Items))
	seen := make(map[uuid.UUID]bool, len(req.Items))
	for _, item := range req.Items {
		if !seen[item.MedicineID] {
			seen[item.MedicineID] = true
			ids = append(ids, item.MedicineID)
		}
	}

	medicines, err := u.medicineRepo.FindByIDs(tx, ids)
	if err != nil {
		u.log.Warnf("Failed to load medicines for sale: %+v", err)
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.Medicine, len(medicines))
	for i := range medicines {
		byID[medicines[i].ID] = &medicines[i]
	}

	subtotal := decimal.Zero
	totalDiscount := decimal.Zero
	items := make([]entity.SaleItem, len(req.Items))
	for i, item := range req.Items {
		medicine, ok := byID[item.MedicineID]
		if !ok {
			return nil, ErrMedicineNotFound
		}

		gross := medicine.SellingPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if item.Discount.IsNegative() || item.Discount.GreaterThan(gross) {
			return nil, ErrInvalidDiscount
		}

		subtotal = subtotal.Add(gross)
		totalDiscount = totalDiscount.Add(item.Discount)
		items[i] = entity.SaleItem{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			UnitPrice:  medicine.SellingPrice,
			Discount:   item.Discount,
			LineTotal:  gross.Sub(item.Discount),
		}
	}

	invoiceNumber, err := u.nextInvoiceNumber(tx)
	if err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		InvoiceNumber: invoiceNumber,
		PatientID:     req.PatientID,
		CustomerName:  req.CustomerName,
		Subtotal:      subtotal,
		TotalDiscount: totalDiscount,
		GrandTotal:    subtotal.Sub(totalDiscount),
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Status:        entity.SaleStatusCompleted,
		Notes:         req.Notes,
		Items:         items,
	}
	if err := u.saleRepo.Create(tx, sale); err != nil {
		u.log.Warnf("Failed to create sale: %+v", err)
		return nil, err
	}

	for _, item := range sale.Items {
		affected, err := u.medicineRepo.AdjustStock(tx, item.MedicineID, -item.Quantity)
		if err != nil {
			u.log.Warnf("Failed to decrement stock for medicine %s: %+v", item.MedicineID, err)
			return nil, err
		}
		if affected == 0 {
			return nil, fmt.Errorf("%w for %s", ErrInsufficientStock, byID[item.MedicineID].Name)
		}

		updated, err := u.medicineRepo.FindByID(tx, item.MedicineID)
		if err != nil || updated == nil {
			u.log.Warnf("Failed to reload medicine %s: %+v", item.MedicineID, err)
			return nil, fmt.Errorf("reload medicine %s: %w", item.MedicineID, err)
		}

		saleID := sale.ID
		movement := &entity.StockMovement{
			MedicineID:    item.MedicineID,
			Type:          entity.MovementSale,
			Quantity:      -item.Quantity,
			PreviousStock: updated.StockQty + item.Quantity,
			NewStock:      updated.StockQty,
			Reason:        "Sale " + sale.InvoiceNumber,
			SaleID:        &saleID,
		}
		if err := u.movementRepo.Create(tx, movement); err != nil {
			u.log.Warnf("Failed to record sale movement for medicine %s: %+v", item.MedicineID, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit sale: %+v", err)
		return nil, err
	}
	u.cache.InvalidateDashboard(ctx)

	u.log.Infof("Sale recorded: id=%s, invoice=%s, items=%d, total=%s", sale.ID, sale.InvoiceNumber, len(sale.Items), sale.GrandTotal)

	full, err := u.saleRepo.FindByID(u.db.WithContext(ctx), sale.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload sale %s: %+v", sale.ID, err)
		return converter.SaleToResponse(sale), nil
	}
	return converter.SaleToResponse(full), nil
}

func (u *saleUsecase) nextInvoiceNumber(tx *gorm.DB) (string, error) {
	for i := 0; i < invoiceAttempts; i++ {
		candidate := generateInvoiceNumber(time.Now().In(u.loc))
		exists, err := u.saleRepo.ExistsByInvoiceNumber(tx, candidate)
		if err != nil {
			u.log.Warnf("Failed to check invoice number: %+v", err)
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrInvoiceNumberExhaust
}

// generateInvoiceNumber generates an invoice number: INV-YYYYMMDD-XXXXXX
func generateInvoiceNumber(day time.Time) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("INV-%s-%06X", day.Format("20060102"), randomBytes)
}
