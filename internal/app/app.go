package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/atvirokodosprendimai/recruitdash/internal/adapters/httpapi"
	sqliteadapter "github.com/atvirokodosprendimai/recruitdash/internal/adapters/sqlite"
	"github.com/atvirokodosprendimai/recruitdash/internal/adapters/sqlite/gormsqlite"
	"github.com/atvirokodosprendimai/recruitdash/internal/core/usecase"
	"github.com/atvirokodosprendimai/recruitdash/internal/snapshot"
	"github.com/atvirokodosprendimai/recruitdash/migrations"
)

type Config struct {
	Addr   string
	DBPath string
}

// openMigrated opens the audit database and brings the schema up to
// date on the write connection.
func openMigrated(ctx context.Context, dbPath string) (*gormsqlite.DB, error) {
	db, err := gormsqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open audit sqlite: %w", err)
	}

	writeSQLDB, err := db.WriteSQLDB()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("resolve writer sql db: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := migrations.Up(ctx, writeSQLDB); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func NewServer(ctx context.Context, cfg Config) (*http.Server, io.Closer, error) {
	db, err := openMigrated(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	characterRepo := sqliteadapter.NewCharacterRepository(db.R)
	contactRepo := sqliteadapter.NewContactRepository(db.R)
	mailRepo := sqliteadapter.NewMailRepository(db.R)
	contractRepo := sqliteadapter.NewContractRepository(db.R)
	walletRepo := sqliteadapter.NewWalletRepository(db.R)

	characterService := usecase.NewCharacterService(characterRepo)
	eventService := usecase.NewEventService(contactRepo, mailRepo, contractRepo, walletRepo)

	handler := httpapi.NewHandler(characterService, eventService)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return server, db, nil
}

// ImportSnapshot validates a snapshot file and loads it into the audit
// database through the single write connection.
func ImportSnapshot(ctx context.Context, dbPath, snapshotPath string) error {
	snap, err := snapshot.LoadFile(snapshotPath)
	if err != nil {
		return err
	}

	db, err := openMigrated(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	importer := sqliteadapter.NewImporter(db.W)
	if err := importer.Import(ctx, snap); err != nil {
		return fmt.Errorf("import snapshot: %w", err)
	}
	return nil
}
