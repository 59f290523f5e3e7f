package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/threadline/bagging-service/internal/domain/model"
)

// orderDocument is the MongoDB representation of an order. The order API
// writes these; the bagging service only reads them.
type orderDocument struct {
	ID             string `bson:"_id"`
	Customer       string `bson:"customer"`
	Brand          string `bson:"brand"`
	ProductName    string `bson:"product_name"`
	Cord           string `bson:"cord"`
	ReelSizeMeters int    `bson:"reel_size_meters"`
	ReelCount      int    `bson:"reel_count"`
	TotalMeters    int    `bson:"total_meters,omitempty"`
	Status         string `bson:"status"`
}

func (d orderDocument) toModel() model.Order {
	return model.Order{
		ID:             d.ID,
		Customer:       d.Customer,
		Brand:          d.Brand,
		ProductName:    d.ProductName,
		Cord:           d.Cord,
		ReelSizeMeters: d.ReelSizeMeters,
		ReelCount:      d.ReelCount,
		TotalMeters:    d.TotalMeters,
		Status:         d.Status,
	}
}

// OrdersRepository provides read access to orders in MongoDB.
type OrdersRepository struct {
	db *MongoDB
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{db: db}
}

// ListByStatus returns all orders with the given status.
func (r *OrdersRepository) ListByStatus(ctx context.Context, status string) ([]model.Order, error) {
	cursor, err := r.db.Orders.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, doc.toModel())
	}
	return orders, nil
}
