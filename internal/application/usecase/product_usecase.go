package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/domain/entity"
	"github.com/umkone/umkone-api/internal/domain/repository"
	"github.com/umkone/umkone-api/pkg/numeric"
)

// ProductUseCase kasus penggunaan CRUD produk jadi.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase membangun kasus penggunaan.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create membuat produk baru. Harga dan stok dikoersi, input kacau jadi 0.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		Name:         in.Name,
		Unit:         in.Unit,
		SellingPrice: numeric.ParseNonNegativeOr(in.SellingPrice, decimal.Zero),
		Stock:        numeric.ParseNonNegativeOr(in.Stock, decimal.Zero),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID mengambil satu produk.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update memperbarui field yang dikirim saja.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.SellingPrice != nil {
		product.SellingPrice = numeric.ParseNonNegativeOr(*in.SellingPrice, product.SellingPrice)
	}
	if in.Stock != nil {
		product.Stock = numeric.ParseNonNegativeOr(*in.Stock, product.Stock)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List mengembalikan seluruh produk.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete menghapus produk. Baris resep yang menunjuk produk ini dibiarkan,
// engine memperlakukannya sebagai kontribusi nol.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Unit:         p.Unit,
		SellingPrice: p.SellingPrice,
		Stock:        p.Stock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
