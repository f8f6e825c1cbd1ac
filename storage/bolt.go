package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aweist/leaguecal/models"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketPages      = "pages"
	bucketSchedules  = "schedules"
	bucketNotified   = "notified"
	bucketRecipients = "recipients"
)

type BoltStorage struct {
	db *bolt.DB
}

func NewBoltStorage(dbPath string) (*BoltStorage, error) {
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketPages, bucketSchedules, bucketNotified, bucketRecipients} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("creating %s bucket: %w", name, err)
			}
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStorage{db: db}, nil
}

func (s *BoltStorage) Close() error {
	return s.db.Close()
}

func (s *BoltStorage) SavePage(page models.CachedPage) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPages))

		data, err := json.Marshal(page)
		if err != nil {
			return fmt.Errorf("marshaling page: %w", err)
		}

		return b.Put([]byte(page.URL), data)
	})
}

func (s *BoltStorage) GetPage(url string) (*models.CachedPage, error) {
	var page models.CachedPage

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPages))
		data := b.Get([]byte(url))

		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &page)
	})

	if err != nil {
		return nil, err
	}

	if page.URL == "" {
		return nil, nil
	}

	return &page, nil
}

func (s *BoltStorage) SaveSchedule(team string, entries []models.ScheduleEntry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSchedules))

		data, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling schedule: %w", err)
		}

		return b.Put([]byte(team), data)
	})
}

func (s *BoltStorage) GetSchedule(team string) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSchedules))
		data := b.Get([]byte(team))

		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &entries)
	})

	return entries, err
}

func (s *BoltStorage) IsEntryNotified(entryID string) (bool, error) {
	var exists bool

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketNotified))
		data := b.Get([]byte(entryID))
		exists = data != nil
		return nil
	})

	return exists, err
}

func (s *BoltStorage) MarkEntryNotified(team string, entry models.ScheduleEntry) error {
	notified := models.NotifiedEntry{
		EntryID:    entry.ID,
		NotifiedAt: time.Now(),
		Team:       team,
		Start:      entry.Start,
		Opponents:  entry.Teams,
		Location:   entry.Location,
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketNotified))

		data, err := json.Marshal(notified)
		if err != nil {
			return fmt.Errorf("marshaling notified entry: %w", err)
		}

		return b.Put([]byte(entry.ID), data)
	})
}

func (s *BoltStorage) GetAllNotifiedEntries() ([]models.NotifiedEntry, error) {
	var entries []models.NotifiedEntry

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketNotified))

		return b.ForEach(func(k, v []byte) error {
			var entry models.NotifiedEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			entries = append(entries, entry)
			return nil
		})
	})

	return entries, err
}

func (s *BoltStorage) DeleteNotifiedEntry(entryID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketNotified))
		return b.Delete([]byte(entryID))
	})
}

func (s *BoltStorage) CleanupOldNotifications(before time.Time) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketNotified))

		var keysToDelete [][]byte

		err := b.ForEach(func(k, v []byte) error {
			var entry models.NotifiedEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}

			if entry.Start.Before(before) {
				keysToDelete = append(keysToDelete, k)
			}

			return nil
		})

		if err != nil {
			return err
		}

		for _, key := range keysToDelete {
			if err := b.Delete(key); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *BoltStorage) AddEmailRecipient(recipient models.EmailRecipient) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecipients))

		data, err := json.Marshal(recipient)
		if err != nil {
			return fmt.Errorf("marshaling recipient: %w", err)
		}

		return b.Put([]byte(recipient.ID), data)
	})
}

func (s *BoltStorage) GetAllEmailRecipients() ([]models.EmailRecipient, error) {
	var recipients []models.EmailRecipient

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecipients))

		return b.ForEach(func(k, v []byte) error {
			var recipient models.EmailRecipient
			if err := json.Unmarshal(v, &recipient); err != nil {
				return err
			}
			recipients = append(recipients, recipient)
			return nil
		})
	})

	return recipients, err
}

func (s *BoltStorage) GetActiveEmailRecipients() ([]models.EmailRecipient, error) {
	all, err := s.GetAllEmailRecipients()
	if err != nil {
		return nil, err
	}

	var active []models.EmailRecipient
	for _, r := range all {
		if r.IsActive {
			active = append(active, r)
		}
	}

	return active, nil
}

func (s *BoltStorage) DeleteEmailRecipient(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecipients))
		return b.Delete([]byte(id))
	})
}
