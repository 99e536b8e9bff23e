// Package catalog loads the item and case catalog from a JSON seed file and
// serves it through a read-through cache.
package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/logger"
	"github.com/kabachok/lootcase/internal/repository"
	"github.com/kabachok/lootcase/internal/validation"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// Sentinel errors for the catalog loader
var (
	ErrInvalidConfig = errors.New("invalid catalog configuration")
	ErrDuplicateName = errors.New("duplicate name")
)

// Config is the JSON seed for items and cases
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []ItemDef `json:"items"`
	Cases []CaseDef `json:"cases"`
}

// ItemDef describes one item. Items are identified by name across syncs.
type ItemDef struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
	Price       int64  `json:"price"`
}

// CaseDef describes one case; Items holds item names
type CaseDef struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Price       int64    `json:"price"`
	IsActive    *bool    `json:"is_active,omitempty"`
	Items       []string `json:"items"`
}

// Active defaults to true when the seed omits is_active
func (d CaseDef) Active() bool {
	return d.IsActive == nil || *d.IsActive
}

// Loader handles loading, validating and syncing the catalog seed
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.CatalogWriter) (*SyncResult, error)
}

// SyncResult summarizes a sync
type SyncResult struct {
	ItemsSynced int
	CasesSynced int
	EmptyCases  int
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader backed by the embedded catalog schema
func NewLoader() Loader {
	schemas, err := fs.Sub(schemaFiles, "schemas")
	if err != nil {
		// embed paths are fixed at build time
		panic(err)
	}
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(schemas),
	}
}

// Load reads a seed file, validates it against the schema and parses it
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, CatalogSchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	logger.Info(LogMsgCatalogLoaded, "path", path, "items", len(config.Items), "cases", len(config.Cases))
	return &config, nil
}

// Validate checks the rules the schema cannot express: unique names and
// case membership referring to defined items
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	itemNames := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := validateItemDef(i, &config.Items[i], itemNames); err != nil {
			return err
		}
	}

	caseNames := make(map[string]bool, len(config.Cases))
	for i := range config.Cases {
		if err := validateCaseDef(i, &config.Cases[i], caseNames, itemNames); err != nil {
			return err
		}
	}
	return nil
}

func validateItemDef(index int, def *ItemDef, seen map[string]bool) error {
	if def.Name == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}
	if seen[def.Name] {
		return fmt.Errorf(ErrFmtDuplicateItemName, ErrDuplicateName, def.Name)
	}
	seen[def.Name] = true

	if _, err := domain.ParseRarity(def.Rarity); err != nil {
		return fmt.Errorf(ErrFmtItemBadRarity, ErrInvalidConfig, def.Name, def.Rarity)
	}
	if def.Price < 0 {
		return fmt.Errorf(ErrFmtItemNegativePrice, ErrInvalidConfig, def.Name)
	}
	return nil
}

func validateCaseDef(index int, def *CaseDef, seen, itemNames map[string]bool) error {
	if def.Name == "" {
		return fmt.Errorf(ErrFmtCaseAtIndexEmpty, ErrInvalidConfig, index)
	}
	if seen[def.Name] {
		return fmt.Errorf(ErrFmtDuplicateCaseName, ErrDuplicateName, def.Name)
	}
	seen[def.Name] = true

	if def.Price < 0 {
		return fmt.Errorf(ErrFmtCaseNegativePrice, ErrInvalidConfig, def.Name)
	}

	members := make(map[string]bool, len(def.Items))
	for _, name := range def.Items {
		if !itemNames[name] {
			return fmt.Errorf(ErrFmtCaseUnknownItem, ErrInvalidConfig, def.Name, name)
		}
		if members[name] {
			return fmt.Errorf(ErrFmtCaseDuplicateEntry, ErrInvalidConfig, def.Name, name)
		}
		members[name] = true
	}
	return nil
}

// SyncToDatabase upserts every item and case by name and replaces each case's
// membership. Running it twice with the same config changes nothing.
func (l *catalogLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.CatalogWriter) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{}

	idsByName := make(map[string]int64, len(config.Items))
	for _, def := range config.Items {
		rarity, err := domain.ParseRarity(def.Rarity)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertItemFailed, def.Name, err)
		}

		id, err := repo.UpsertItem(ctx, domain.Item{
			Name:        def.Name,
			Emoji:       def.Emoji,
			Description: def.Description,
			Rarity:      rarity,
			SellPrice:   def.Price,
		})
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertItemFailed, def.Name, err)
		}
		idsByName[def.Name] = id
		result.ItemsSynced++
		log.Debug(LogMsgSyncedItem, "name", def.Name, "id", id)
	}

	for _, def := range config.Cases {
		caseID, err := repo.UpsertCase(ctx, domain.Case{
			Name:        def.Name,
			Description: def.Description,
			ImageURL:    def.ImageURL,
			Price:       def.Price,
			IsActive:    def.Active(),
		})
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertCaseFailed, def.Name, err)
		}

		itemIDs := make([]int64, 0, len(def.Items))
		for _, name := range def.Items {
			itemIDs = append(itemIDs, idsByName[name])
		}
		if err := repo.SetCaseItems(ctx, caseID, itemIDs); err != nil {
			return nil, fmt.Errorf(ErrMsgSetCaseItemsFailed, def.Name, err)
		}

		result.CasesSynced++
		switch {
		case len(itemIDs) == 0:
			result.EmptyCases++
			log.Warn(LogMsgEmptyCaseSeed, "case", def.Name)
		case !def.Active():
			log.Info(LogMsgInactiveSeed, "case", def.Name)
		}
		log.Debug(LogMsgSyncedCase, "name", def.Name, "id", caseID, "items", len(itemIDs))
	}

	log.Info(LogMsgSyncCompleted,
		"items", result.ItemsSynced,
		"cases", result.CasesSynced,
		"empty_cases", result.EmptyCases)

	return result, nil
}
