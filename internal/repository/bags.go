package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/threadline/bagging-service/internal/domain/model"
)

// bagCounterID is the counters-collection document tracking the bag
// numbering high-water mark. Kept separate from the bags collection so
// deleting the highest-numbered bag cannot cause its number to be reused.
const bagCounterID = "bag_number"

// bagItemDocument is the MongoDB representation of one bag item.
type bagItemDocument struct {
	Type           string `bson:"type"`
	OrderID        string `bson:"order_id,omitempty"`
	StockID        string `bson:"stock_id,omitempty"`
	Customer       string `bson:"customer,omitempty"`
	Label          string `bson:"label,omitempty"`
	Meters         int    `bson:"meters"`
	ReelSizeMeters int    `bson:"reel_size_meters"`
}

// bagDocument is the MongoDB representation of a bag.
type bagDocument struct {
	Number                    int               `bson:"_id"`
	BatchID                   string            `bson:"batch_id,omitempty"`
	Brand                     string            `bson:"brand"`
	ProductName               string            `bson:"product_name"`
	Cord                      string            `bson:"cord"`
	Items                     []bagItemDocument `bson:"items"`
	TotalMeters               int               `bson:"total_meters"`
	FilledFromInventoryMeters int               `bson:"filled_from_inventory_meters"`
	CreatedAt                 time.Time         `bson:"created_at"`
}

func toBagDocument(bag model.Bag) bagDocument {
	items := make([]bagItemDocument, 0, len(bag.Items))
	for _, item := range bag.Items {
		items = append(items, bagItemDocument{
			Type:           string(item.Type),
			OrderID:        item.OrderID,
			StockID:        item.StockID,
			Customer:       item.Customer,
			Label:          item.Label,
			Meters:         item.Meters,
			ReelSizeMeters: item.ReelSizeMeters,
		})
	}
	return bagDocument{
		Number:                    bag.Number,
		BatchID:                   bag.BatchID,
		Brand:                     bag.Product.Brand,
		ProductName:               bag.Product.ProductName,
		Cord:                      bag.Product.Cord,
		Items:                     items,
		TotalMeters:               bag.TotalMeters,
		FilledFromInventoryMeters: bag.FilledFromInventoryMeters,
		CreatedAt:                 time.Now(),
	}
}

func (d bagDocument) toModel() model.Bag {
	bag := model.Bag{
		Number:  d.Number,
		BatchID: d.BatchID,
		Product: model.ProductKey{
			Brand:       d.Brand,
			ProductName: d.ProductName,
			Cord:        d.Cord,
		},
		Items:                     make([]model.BagItem, 0, len(d.Items)),
		TotalMeters:               d.TotalMeters,
		FilledFromInventoryMeters: d.FilledFromInventoryMeters,
	}
	for _, item := range d.Items {
		bag.Items = append(bag.Items, model.BagItem{
			Type:           model.ItemType(item.Type),
			OrderID:        item.OrderID,
			StockID:        item.StockID,
			Customer:       item.Customer,
			Label:          item.Label,
			Meters:         item.Meters,
			ReelSizeMeters: item.ReelSizeMeters,
		})
	}
	return bag
}

// BagsRepository provides access to the persisted bag ledger in MongoDB.
type BagsRepository struct {
	db *MongoDB
}

// NewBagsRepository creates a new bags repository.
func NewBagsRepository(db *MongoDB) *BagsRepository {
	return &BagsRepository{db: db}
}

// List returns all bags ordered by bag number.
func (r *BagsRepository) List(ctx context.Context) ([]model.Bag, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cursor, err := r.db.Bags.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bagDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	bags := make([]model.Bag, 0, len(docs))
	for _, doc := range docs {
		bags = append(bags, doc.toModel())
	}
	return bags, nil
}

// InsertMany persists the bags of one packing pass.
func (r *BagsRepository) InsertMany(ctx context.Context, bags []model.Bag) error {
	if len(bags) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(bags))
	for _, bag := range bags {
		docs = append(docs, toBagDocument(bag))
	}
	_, err := r.db.Bags.InsertMany(ctx, docs)
	return err
}

// Update replaces a persisted bag's contents and totals.
func (r *BagsRepository) Update(ctx context.Context, bag model.Bag) error {
	doc := toBagDocument(bag)
	update := bson.M{"$set": bson.M{
		"items":                        doc.Items,
		"total_meters":                 doc.TotalMeters,
		"filled_from_inventory_meters": doc.FilledFromInventoryMeters,
	}}
	res, err := r.db.Bags.UpdateOne(ctx, bson.M{"_id": bag.Number}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a bag by number.
func (r *BagsRepository) Delete(ctx context.Context, number int) error {
	res, err := r.db.Bags.DeleteOne(ctx, bson.M{"_id": number})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// LastNumber returns the bag numbering high-water mark.
func (r *BagsRepository) LastNumber(ctx context.Context) (int, error) {
	var doc struct {
		Seq int `bson:"seq"`
	}
	err := r.db.Counters.FindOne(ctx, bson.M{"_id": bagCounterID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// RaiseLastNumber lifts the numbering high-water mark to at least n.
func (r *BagsRepository) RaiseLastNumber(ctx context.Context, n int) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.db.Counters.UpdateOne(
		ctx,
		bson.M{"_id": bagCounterID},
		bson.M{"$max": bson.M{"seq": n}},
		opts,
	)
	return err
}
