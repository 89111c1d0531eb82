package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

// BookingCache keeps each owner's full booking set warm so dashboard and
// analytics views don't refetch from Postgres on every filter change. Any
// mutation invalidates the owner's key; the next read repopulates it.
type BookingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBookingCache(client *redis.Client, ttl time.Duration) *BookingCache {
	return &BookingCache{client: client, ttl: ttl}
}

func (c *BookingCache) Get(ctx context.Context, barbershopID string) ([]models.Booking, error) {
	data, err := c.client.Get(ctx, bookingsKey(barbershopID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *BookingCache) Set(ctx context.Context, barbershopID string, bookings []models.Booking) error {
	payload, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, bookingsKey(barbershopID), payload, c.ttl).Err()
}

func (c *BookingCache) Invalidate(ctx context.Context, barbershopID string) error {
	return c.client.Del(ctx, bookingsKey(barbershopID)).Err()
}

func bookingsKey(barbershopID string) string {
	return "cache:bookings:" + barbershopID
}
