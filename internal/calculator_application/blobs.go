package calculatorapplication

import (
	"fmt"

	db "github.com/ERRORIK404/Keypad_Calculator/database"
	"github.com/ERRORIK404/Keypad_Calculator/pkg/blobstore"
	conf "github.com/ERRORIK404/Keypad_Calculator/pkg/config"
	"github.com/ERRORIK404/Keypad_Calculator/pkg/history"
)

// OpenBlobs opens the blob store selected by CALC_STORE. The returned
// function releases it.
func OpenBlobs(cfg *conf.Config) (history.BlobStore, func() error, error) {
	switch cfg.Store {
	case conf.StoreMemory:
		return blobstore.NewMemory(), func() error { return nil }, nil
	case conf.StoreSQLite:
		store, err := db.InitDB(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
