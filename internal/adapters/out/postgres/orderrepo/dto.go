// Package orderrepo persists order aggregates with gorm. An order is one row in
// "orders" plus its line items in "order_items".
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName    string          `gorm:"type:varchar(255);not null"`
	CustomerEmail   string          `gorm:"type:varchar(320);not null;index"`
	ShippingAddress string          `gorm:"type:text;not null;default:''"`
	Total           decimal.Decimal `gorm:"type:numeric;not null"`
	Status          string          `gorm:"type:varchar(16);not null;index"`
	TransactionCode string          `gorm:"type:varchar(128);not null;default:''"`
	Date            time.Time       `gorm:"type:timestamptz;not null;index"`
	CreatedAt       time.Time       `gorm:"type:timestamptz;not null"`
	UpdatedAt       time.Time       `gorm:"type:timestamptz;not null"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item. Position keeps the order the items were entered in.
type OrderItemDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"type:int;not null"`
	ProductID string          `gorm:"type:varchar(128);not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity  int             `gorm:"type:int;not null"`
	Image     string          `gorm:"type:text;not null;default:''"`
}

// TableName overrides GORM's default "order_item_dtos".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   id,
			Position:  i,
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price().Decimal(),
			Quantity:  item.Quantity(),
			Image:     item.Image(),
		})
	}

	customer := aggregate.Customer()
	return OrderDTO{
		ID:              id,
		CustomerName:    customer.Name(),
		CustomerEmail:   customer.Email(),
		ShippingAddress: customer.ShippingAddress(),
		Total:           aggregate.Total().Decimal(),
		Status:          aggregate.Status().String(),
		TransactionCode: aggregate.TransactionCode(),
		Date:            aggregate.Date().UTC(),
		CreatedAt:       aggregate.CreatedAt().UTC(),
		UpdatedAt:       aggregate.UpdatedAt().UTC(),
		Items:           items,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. The stored status string is
// parsed strictly, so a row with an unknown status fails instead of being coerced.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomerDetails(dto.CustomerName, dto.CustomerEmail, dto.ShippingAddress)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewLineItem(itemDTO.ProductID, itemDTO.Name, price, itemDTO.Quantity, itemDTO.Image)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customer,
		items,
		total,
		status,
		dto.TransactionCode,
		dto.Date.UTC(),
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
