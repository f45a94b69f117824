package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. GSTNo y EmailID son únicos (ErrDuplicate).
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.VendorName == "" || in.ContactPersonName == "" || in.ContactNumber == "" ||
		in.AddressLine1 == "" || in.City == "" || in.State == "" || in.PinCode == "" ||
		in.GSTNo == "" || in.EmailID == "" || in.WhatsappNo == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:                uuid.New().String(),
		VendorName:        in.VendorName,
		ContactPersonName: in.ContactPersonName,
		ContactNumber:     in.ContactNumber,
		AddressLine1:      in.AddressLine1,
		AddressLine2:      in.AddressLine2,
		AddressLine3:      in.AddressLine3,
		City:              in.City,
		State:             in.State,
		PinCode:           in.PinCode,
		GSTNo:             in.GSTNo,
		EmailID:           strings.ToLower(in.EmailID),
		WhatsappNo:        in.WhatsappNo,
		AddedOn:           now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List lista todos los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Total: len(items)}, nil
}

// Update actualiza los campos presentes en el request.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.VendorName != nil {
		supplier.VendorName = *in.VendorName
	}
	if in.ContactPersonName != nil {
		supplier.ContactPersonName = *in.ContactPersonName
	}
	if in.ContactNumber != nil {
		supplier.ContactNumber = *in.ContactNumber
	}
	if in.AddressLine1 != nil {
		supplier.AddressLine1 = *in.AddressLine1
	}
	if in.AddressLine2 != nil {
		supplier.AddressLine2 = *in.AddressLine2
	}
	if in.AddressLine3 != nil {
		supplier.AddressLine3 = *in.AddressLine3
	}
	if in.City != nil {
		supplier.City = *in.City
	}
	if in.State != nil {
		supplier.State = *in.State
	}
	if in.PinCode != nil {
		supplier.PinCode = *in.PinCode
	}
	if in.GSTNo != nil {
		supplier.GSTNo = *in.GSTNo
	}
	if in.EmailID != nil {
		supplier.EmailID = strings.ToLower(*in.EmailID)
	}
	if in.WhatsappNo != nil {
		supplier.WhatsappNo = *in.WhatsappNo
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:                s.ID,
		VendorName:        s.VendorName,
		ContactPersonName: s.ContactPersonName,
		ContactNumber:     s.ContactNumber,
		AddressLine1:      s.AddressLine1,
		AddressLine2:      s.AddressLine2,
		AddressLine3:      s.AddressLine3,
		City:              s.City,
		State:             s.State,
		PinCode:           s.PinCode,
		GSTNo:             s.GSTNo,
		EmailID:           s.EmailID,
		WhatsappNo:        s.WhatsappNo,
		AddedOn:           s.AddedOn,
	}
}
