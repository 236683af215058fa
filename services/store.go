package services

import (
	"encoding/json"
	"fmt"

	"github.com/KeshavGarg1234/inventra/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tree paths, one document row each.
const (
	PathItems         = "items"
	PathBills         = "bills"
	PathUsers         = "users"
	PathNotifications = "notifications"
	PathSecure        = "secure"
)

// Secure settings defaults, seeded on first load.
const (
	DefaultDeletePasskey = "801711"
	DefaultAuthPasskey   = "801711"
	DefaultContactEmail  = "contact@example.com"
)

// Notifier receives the set of stale tree paths after every save, so
// read-side subscribers can re-fetch and re-render.
type Notifier interface {
	PathsStale(paths []string)
}

// Store owns the persisted inventory tree. Every action reads the full
// tree, mutates it in memory and writes the touched subtrees back.
// Last writer wins on the whole tree; there is no locking.
type Store struct {
	DB       *gorm.DB
	Notifier Notifier
}

// NewStore creates a new Store. The notifier may be nil.
func NewStore(db *gorm.DB, notifier Notifier) *Store {
	return &Store{DB: db, Notifier: notifier}
}

// Load reads the full tree. Sparse collections are normalized into dense
// ordered lists (null holes dropped), and missing secure settings are
// filled with the fixed defaults and persisted before returning.
func (s *Store) Load() (*models.InventoryTree, error) {
	var docs []models.Document
	if err := s.DB.Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("loading tree documents: %w", err)
	}

	tree := &models.InventoryTree{
		Items:         []models.Item{},
		Bills:         []models.Bill{},
		Users:         []models.User{},
		Notifications: []models.Notification{},
	}

	for _, doc := range docs {
		var err error
		switch doc.Path {
		case PathItems:
			tree.Items, err = decodeList[models.Item](doc.Data)
		case PathBills:
			tree.Bills, err = decodeList[models.Bill](doc.Data)
		case PathUsers:
			tree.Users, err = decodeList[models.User](doc.Data)
		case PathNotifications:
			tree.Notifications, err = decodeList[models.Notification](doc.Data)
		case PathSecure:
			err = json.Unmarshal(doc.Data, &tree.Secure)
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", doc.Path, err)
		}
	}

	// Items may have been stored with holes in their unit lists too.
	for i := range tree.Items {
		if tree.Items[i].SubItems == nil {
			tree.Items[i].SubItems = []models.SubItem{}
		}
	}

	if seedSecureDefaults(&tree.Secure) {
		if err := s.Save(tree, PathSecure); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// Save persists the named subtrees of the tree (all of them when no
// paths are given), then reports the written paths as stale. A save
// either fully completes or fails before any path is written.
func (s *Store) Save(tree *models.InventoryTree, paths ...string) error {
	if len(paths) == 0 {
		paths = []string{PathItems, PathBills, PathUsers, PathNotifications, PathSecure}
	}

	docs := make([]models.Document, 0, len(paths))
	for _, path := range paths {
		data, err := encodePath(tree, path)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
		docs = append(docs, models.Document{Path: path, Data: data})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range docs {
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "path"}},
				DoUpdates: clause.AssignmentColumns([]string{"data"}),
			}).Create(&docs[i])
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("saving tree documents: %w", err)
	}

	if s.Notifier != nil {
		s.Notifier.PathsStale(paths)
	}
	return nil
}

// encodePath marshals one subtree. Nil unit lists become empty lists so
// the stored shape stays dense; absent optional fields are omitted (the
// store cannot represent "present but undefined").
func encodePath(tree *models.InventoryTree, path string) ([]byte, error) {
	switch path {
	case PathItems:
		items := tree.Items
		if items == nil {
			items = []models.Item{}
		}
		for i := range items {
			if items[i].SubItems == nil {
				items[i].SubItems = []models.SubItem{}
			}
		}
		return json.Marshal(items)
	case PathBills:
		if tree.Bills == nil {
			tree.Bills = []models.Bill{}
		}
		return json.Marshal(tree.Bills)
	case PathUsers:
		if tree.Users == nil {
			tree.Users = []models.User{}
		}
		return json.Marshal(tree.Users)
	case PathNotifications:
		if tree.Notifications == nil {
			tree.Notifications = []models.Notification{}
		}
		return json.Marshal(tree.Notifications)
	case PathSecure:
		return json.Marshal(tree.Secure)
	}
	return nil, fmt.Errorf("unknown tree path %q", path)
}

// decodeList unmarshals a stored collection, dropping null holes left by
// sparse indexed writes.
func decodeList[T any](data []byte) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for _, entry := range raw {
		if string(entry) == "null" {
			continue
		}
		var v T
		if err := json.Unmarshal(entry, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// seedSecureDefaults fills missing secure settings and reports whether
// anything changed.
func seedSecureDefaults(secure *models.Secure) bool {
	changed := false
	if secure.DeletePasskey == "" {
		secure.DeletePasskey = DefaultDeletePasskey
		changed = true
	}
	if secure.AuthPasskey == "" {
		secure.AuthPasskey = DefaultAuthPasskey
		changed = true
	}
	if secure.ContactEmail == "" {
		secure.ContactEmail = DefaultContactEmail
		changed = true
	}
	return changed
}
