package repository

import (
	"context"
	"errors"
	"time"

	"checkout-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrOrderNotFound marks lookups that matched no order; callers surface it as
// 404 rather than a store failure.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the order store operations used by the service
// layer.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	// MarkPaid applies the single verification mutation: paymentId,
	// paymentStatus=completed, status=paid.
	MarkPaid(ctx context.Context, orderID, paymentID string) (*models.Order, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoOrderRepo struct {
	collection *mongo.Collection
}

func NewMongoOrderRepo(db *mongo.Database) OrderRepository {
	return &mongoOrderRepo{
		collection: db.Collection("orders"),
	}
}

func (r *mongoOrderRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *mongoOrderRepo) Create(ctx context.Context, order *models.Order) error {
	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return nil
}

func (r *mongoOrderRepo) FindAll(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepo) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Order, error) {
	updates["updated_at"] = time.Now().UTC()

	var order models.Order
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepo) MarkPaid(ctx context.Context, orderID, paymentID string) (*models.Order, error) {
	update := bson.M{"$set": bson.M{
		"payment_id":     paymentID,
		"payment_status": models.PaymentCompleted,
		"status":         models.OrderPaid,
		"updated_at":     time.Now().UTC(),
	}}

	var order models.Order
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"order_id": orderID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
