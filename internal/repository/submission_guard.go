package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lastSubmittedKeyPrefix = "user:last_submitted:"
	lastSubmittedTTL       = 5 * time.Second
)

// SubmissionGuardRepository persists the "last submitted question" per user
// in Redis with a short TTL. A resubmission of the same question inside the
// window (double-click, browser refresh replaying the POST) is ignored.
type SubmissionGuardRepository struct {
	client *redis.Client
	ctx    context.Context
}

// NewSubmissionGuardRepository creates a new submission guard repository.
func NewSubmissionGuardRepository(client *redis.Client) *SubmissionGuardRepository {
	return &SubmissionGuardRepository{
		client: client,
		ctx:    context.Background(),
	}
}

// LastSubmitted returns the last submitted question ID for the user, or
// (0, false, nil) if not set.
func (r *SubmissionGuardRepository) LastSubmitted(userID int) (questionID int, found bool, err error) {
	key := lastSubmittedKeyPrefix + strconv.Itoa(userID)
	q, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(q)
	if err != nil {
		return 0, false, nil // invalid value, treat as not set
	}
	return id, true, nil
}

// SetLastSubmitted stores the last submitted question ID for the user
// (single key with TTL).
func (r *SubmissionGuardRepository) SetLastSubmitted(userID int, questionID int) error {
	key := lastSubmittedKeyPrefix + strconv.Itoa(userID)
	return r.client.Set(r.ctx, key, strconv.Itoa(questionID), lastSubmittedTTL).Err()
}
