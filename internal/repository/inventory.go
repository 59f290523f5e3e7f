package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/threadline/bagging-service/internal/domain/model"
)

// stockDocument is the MongoDB representation of an inventory stock record.
type stockDocument struct {
	ID             string    `bson:"_id"`
	Brand          string    `bson:"brand"`
	ProductName    string    `bson:"product_name"`
	Cord           string    `bson:"cord"`
	ReelSizeMeters int       `bson:"reel_size_meters"`
	ReelCount      int       `bson:"reel_count"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

func (d stockDocument) toModel() model.InventoryStock {
	return model.InventoryStock{
		ID:             d.ID,
		Brand:          d.Brand,
		ProductName:    d.ProductName,
		Cord:           d.Cord,
		ReelSizeMeters: d.ReelSizeMeters,
		ReelCount:      d.ReelCount,
	}
}

// InventoryRepository provides access to inventory stock in MongoDB.
type InventoryRepository struct {
	db *MongoDB
}

// NewInventoryRepository creates a new inventory repository.
func NewInventoryRepository(db *MongoDB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// List returns all stock records.
func (r *InventoryRepository) List(ctx context.Context) ([]model.InventoryStock, error) {
	cursor, err := r.db.Inventory.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []stockDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	stocks := make([]model.InventoryStock, 0, len(docs))
	for _, doc := range docs {
		stocks = append(stocks, doc.toModel())
	}
	return stocks, nil
}

// UpdateReelCounts persists the reel counts of the given stock records.
// Only the count changes: the allocator never alters a record's product
// or reel size.
func (r *InventoryRepository) UpdateReelCounts(ctx context.Context, stocks []model.InventoryStock) error {
	for _, stock := range stocks {
		_, err := r.db.Inventory.UpdateOne(
			ctx,
			bson.M{"_id": stock.ID},
			bson.M{"$set": bson.M{"reel_count": stock.ReelCount, "updated_at": time.Now()}},
		)
		if err != nil {
			return err
		}
	}
	return nil
}
