package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
)

const (
	itemsKeyPrefix     = "notify:items:"
	originKeyPrefix    = "notify:origin:"
	lastCheckKeyPrefix = "notify:lastcheck:"
	refreshKeyPrefix   = "notify:refresh:"
	activeUsersKey     = "notify:users"

	// Watermarks only need to survive into the next day.
	lastCheckTTL = 48 * time.Hour
)

type notificationRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TaskID    string    `json:"task_id"`
	OriginKey string    `json:"origin_key"`
	Bucket    string    `json:"bucket"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	DueDate   time.Time `json:"due_date"`
	Read      bool      `json:"read"`
	Dismissed bool      `json:"dismissed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type notificationRepository struct {
	client    *redis.Client
	retention time.Duration
}

// NewNotificationRepository builds the Redis-backed notification store.
// Notifications live in a per-user hash keyed by notification ID; a second
// per-user hash maps origin key to the active notification ID. HSET and HDEL
// are per-field atomic, which is what enforces at most one active
// notification per (user, origin key) under concurrent passes.
func NewNotificationRepository(client *redis.Client, retention time.Duration) domain.NotificationRepository {
	return &notificationRepository{
		client:    client,
		retention: retention,
	}
}

func (r *notificationRepository) ListActive(ctx context.Context, userID string) ([]*domain.Notification, error) {
	index, err := r.client.HGetAll(ctx, originKeyPrefix+userID).Result()
	if err != nil {
		return nil, err
	}

	if len(index) == 0 {
		return []*domain.Notification{}, nil
	}

	ids := make([]string, 0, len(index))
	for _, id := range index {
		ids = append(ids, id)
	}

	values, err := r.client.HMGet(ctx, itemsKeyPrefix+userID, ids...).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]*domain.Notification, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a backing record; skip the stale pointer.
			continue
		}

		notification, err := unmarshalNotification([]byte(raw))
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

func (r *notificationRepository) ListAll(ctx context.Context, userID string) ([]*domain.Notification, error) {
	values, err := r.client.HGetAll(ctx, itemsKeyPrefix+userID).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]*domain.Notification, 0, len(values))
	for _, raw := range values {
		notification, err := unmarshalNotification([]byte(raw))
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	sort.Slice(notifications, func(i, j int) bool {
		if notifications[i].Dismissed != notifications[j].Dismissed {
			return !notifications[i].Dismissed
		}
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return notifications, nil
}

func (r *notificationRepository) FindByOrigin(ctx context.Context, userID string, key domain.OriginKey) (*domain.Notification, error) {
	id, err := r.client.HGet(ctx, originKeyPrefix+userID, key.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}

	return r.getByID(ctx, userID, id)
}

func (r *notificationRepository) UpsertActive(ctx context.Context, notification *domain.Notification) error {
	if notification == nil {
		return ErrInvalidNotificationData
	}

	data, err := json.Marshal(toRecord(notification))
	if err != nil {
		return ErrInvalidNotificationData
	}

	itemsKey := itemsKeyPrefix + notification.UserID
	originKey := originKeyPrefix + notification.UserID

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, itemsKey, notification.ID, data)
	pipe.HSet(ctx, originKey, notification.Origin.String(), notification.ID)
	pipe.Expire(ctx, itemsKey, r.retention)
	pipe.Expire(ctx, originKey, r.retention)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *notificationRepository) DismissByOrigin(ctx context.Context, userID string, keys []domain.OriginKey) (int, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	itemsKey := itemsKeyPrefix + userID
	originKey := originKeyPrefix + userID

	dismissed := make(map[string][]byte, len(keys))
	fields := make([]string, 0, len(keys))

	for _, key := range keys {
		id, err := r.client.HGet(ctx, originKey, key.String()).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // already gone
			}
			return 0, err
		}

		notification, err := r.getByID(ctx, userID, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotificationNotFound) {
				continue
			}
			return 0, err
		}

		notification.Dismissed = true
		notification.UpdatedAt = time.Now().UTC()

		data, err := json.Marshal(toRecord(notification))
		if err != nil {
			return 0, ErrInvalidNotificationData
		}

		dismissed[notification.ID] = data
		fields = append(fields, key.String())
	}

	if len(dismissed) == 0 {
		return 0, nil
	}

	pipe := r.client.TxPipeline()
	for id, data := range dismissed {
		pipe.HSet(ctx, itemsKey, id, data)
	}
	pipe.HDel(ctx, originKey, fields...)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return len(dismissed), nil
}

func (r *notificationRepository) Dismiss(ctx context.Context, userID, notificationID string) error {
	notification, err := r.getByID(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	notification.Dismissed = true
	notification.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(toRecord(notification))
	if err != nil {
		return ErrInvalidNotificationData
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, itemsKeyPrefix+userID, notificationID, data)

	// Only drop the index entry if it still points at this notification; the
	// origin may have been re-occupied by a newer one.
	activeID, err := r.client.HGet(ctx, originKeyPrefix+userID, notification.Origin.String()).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if activeID == notificationID {
		pipe.HDel(ctx, originKeyPrefix+userID, notification.Origin.String())
	}

	_, err = pipe.Exec(ctx)
	return err
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID, notificationID string) error {
	notification, err := r.getByID(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	if notification.Read {
		return nil
	}

	notification.Read = true
	notification.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(toRecord(notification))
	if err != nil {
		return ErrInvalidNotificationData
	}

	return r.client.HSet(ctx, itemsKeyPrefix+userID, notificationID, data).Err()
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	notifications, err := r.ListAll(ctx, userID)
	if err != nil {
		return 0, err
	}

	pipe := r.client.TxPipeline()
	marked := 0

	for _, notification := range notifications {
		if notification.Read {
			continue
		}

		notification.Read = true
		notification.UpdatedAt = time.Now().UTC()

		data, err := json.Marshal(toRecord(notification))
		if err != nil {
			return 0, ErrInvalidNotificationData
		}

		pipe.HSet(ctx, itemsKeyPrefix+userID, notification.ID, data)
		marked++
	}

	if marked == 0 {
		return 0, nil
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return marked, nil
}

func (r *notificationRepository) DeleteAll(ctx context.Context, userID string) (int, error) {
	count, err := r.client.HLen(ctx, itemsKeyPrefix+userID).Result()
	if err != nil {
		return 0, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, itemsKeyPrefix+userID)
	pipe.Del(ctx, originKeyPrefix+userID)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return int(count), nil
}

func (r *notificationRepository) getByID(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	raw, err := r.client.HGet(ctx, itemsKeyPrefix+userID, notificationID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}

	return unmarshalNotification(raw)
}

func toRecord(n *domain.Notification) notificationRecord {
	return notificationRecord{
		ID:        n.ID,
		UserID:    n.UserID,
		TaskID:    n.TaskID,
		OriginKey: n.Origin.String(),
		Bucket:    n.Bucket.String(),
		Title:     n.Title,
		Message:   n.Message,
		DueDate:   n.DueDate,
		Read:      n.Read,
		Dismissed: n.Dismissed,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func unmarshalNotification(raw []byte) (*domain.Notification, error) {
	var record notificationRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, ErrInvalidNotificationData
	}

	origin, err := domain.ParseOriginKey(record.OriginKey)
	if err != nil {
		return nil, ErrInvalidNotificationData
	}

	return &domain.Notification{
		ID:        record.ID,
		UserID:    record.UserID,
		TaskID:    record.TaskID,
		Origin:    origin,
		Bucket:    domain.Bucket(record.Bucket),
		Title:     record.Title,
		Message:   record.Message,
		DueDate:   record.DueDate,
		Read:      record.Read,
		Dismissed: record.Dismissed,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}
