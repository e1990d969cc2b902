package ownerRepo

import (
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new owner profile document.
func (r *MongoOwnerRepo) Create(owner *models.Owner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if owner.CreatedAt.IsZero() {
		owner.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, owner); err != nil {
		return fmt.Errorf("failed to create owner: %w", err)
	}
	return nil
}

// UpdateProfile rewrites the business details of an owner profile.
func (r *MongoOwnerRepo) UpdateProfile(id string, input models.OwnerApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"business_name": input.BusinessName,
		"address":       input.Address,
		"city":          input.City,
		"phone":         input.Phone,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update owner with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("owner with id %s not found", id)
	}
	return nil
}

// UpdateStatus moves an owner application to approved or rejected.
// ApprovedAt is stamped only on approval.
func (r *MongoOwnerRepo) UpdateStatus(id string, status models.OwnerStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"status": status}
	if status == models.OwnerApproved {
		set["approved_at"] = time.Now()
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update owner with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("owner with id %s not found", id)
	}
	return nil
}
