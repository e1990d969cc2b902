package slotRepo

import (
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new slot listing.
func (r *MongoSlotRepo) Create(slot *models.ParkingSlot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("failed to create slot: %w", err)
	}
	return nil
}

// UpdateAttributes applies the owner-editable attribute set. The availability
// flag is not reachable from here.
func (r *MongoSlotRepo) UpdateAttributes(id string, update models.SlotUpdate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.City != nil {
		set["city"] = *update.City
	}
	if update.VehicleType != nil {
		set["vehicle_type"] = *update.VehicleType
	}
	if update.SlotType != nil {
		set["slot_type"] = *update.SlotType
	}
	if update.PricePerHour != nil {
		set["price_per_hour"] = *update.PricePerHour
	}
	if len(set) == 0 {
		return nil
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update slot with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("slot with id %s not found", id)
	}
	return nil
}

// SetAvailability writes the denormalized availability flag. Reserved for the
// availability coordinator.
func (r *MongoSlotRepo) SetAvailability(id string, available bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"is_available": available}})
	if err != nil {
		return fmt.Errorf("failed to set availability for slot %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("slot with id %s not found", id)
	}
	return nil
}

// Delete removes a slot listing.
func (r *MongoSlotRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete slot with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("slot with id %s not found", id)
	}
	return nil
}
