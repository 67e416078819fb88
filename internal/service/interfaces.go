package service

import (
	"context"
	"io"

	"github.com/tradedeck-app/tradedeck/internal/vault"
	"github.com/tradedeck-app/tradedeck/models"
)

// VaultService is the orchestration layer between the UI, the encrypted
// vault lifecycle, and the blob store. All calls must come from a single
// goroutine or be externally serialised, matching the vault's contract;
// SaveNow and RotatePassphrase additionally serialise against each other
// internally so the autosave job can never overlap a rotation.
type VaultService interface {
	// CreateVault initialises a brand-new vault sealed under passphrase
	// and durably writes the first blob. Refuses to overwrite an existing
	// vault (ErrVaultExists) — destroying a vault is an explicit user
	// decision handled outside this service. Rejects passphrases below
	// the configured zxcvbn strength score with ErrWeakPassphrase.
	CreateVault(ctx context.Context, passphrase string, rec models.Record) error

	// Open loads the stored blob and unlocks it with passphrase.
	// Returns store.ErrNoVault if no vault exists on this device,
	// vault.ErrBadFormat if the blob is unreadable, and
	// vault.ErrAuthentication on a wrong passphrase.
	Open(ctx context.Context, passphrase string) (models.Record, error)

	// SaveNow seals rec under the session key with a fresh nonce and
	// durably writes the resulting blob. This is the handler behind the
	// debounced autosave trigger. Valid only while unlocked.
	SaveNow(ctx context.Context, rec models.Record) error

	// RotatePassphrase re-keys the vault under newPassphrase and writes
	// the new blob. The store retains the pre-rotation blob until the new
	// one is durably written, so an interrupted rotation never strands
	// the user without a working passphrase.
	RotatePassphrase(ctx context.Context, newPassphrase string, rec models.Record) error

	// CurrentBlob returns the stored encoded blob as-is, for off-device
	// backup of the ciphertext. No key material is touched.
	CurrentBlob(ctx context.Context) (string, error)

	// RestoreBlob installs an externally obtained encoded blob (e.g. a
	// cloud backup) as this device's vault. Refuses to overwrite an
	// existing vault (ErrVaultExists). The blob stays sealed; the caller
	// unlocks it with Open afterwards.
	RestoreBlob(ctx context.Context, blob string) error

	// Lock drops the session key. Callable at any time.
	Lock()

	// State reports the vault lifecycle state.
	State() vault.State
}

// AutosaveJob is the debounced persist scheduler. UI code calls Trigger
// after every record mutation; the job coalesces bursts and issues a
// single SaveNow per quiet period, serialising saves on one goroutine.
type AutosaveJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped first. The debounce interval defaults to 5 seconds if
	// zero or negative.
	Start(ctx context.Context)

	// Trigger schedules a save of rec after the debounce interval,
	// replacing any not-yet-saved record from earlier triggers. Must be
	// called from the single UI goroutine.
	Trigger(rec models.Record)

	// Stop flushes any pending save and blocks until the goroutine has
	// fully exited. Safe to call when the job is not running.
	Stop()
}

// PortfolioService computes valuations and manages price alerts over the
// plaintext record. It never touches cryptographic material.
type PortfolioService interface {
	// Valuation prices every position in rec against quotes and returns
	// per-position and total figures. Positions without a quote are
	// valued at their cost basis.
	Valuation(rec models.Record, quotes map[string]models.Quote) PortfolioValuation

	// NewAlert appends a new alert for ticker to rec and returns it.
	NewAlert(rec *models.Record, ticker string, threshold string, direction models.AlertDirection) (models.Alert, error)

	// CheckAlerts marks alerts in rec whose thresholds are crossed by
	// quotes and returns the newly fired ones.
	CheckAlerts(rec *models.Record, quotes map[string]models.Quote) []models.Alert
}

// ImpExpService moves portfolio positions in and out of the flat CSV
// interchange format. Plaintext only: import/export happens while the
// vault is unlocked and the result is sealed on the next save.
type ImpExpService interface {
	// ImportPositions parses CSV rows (header: ticker,quantity,avg_price)
	// into positions.
	ImportPositions(r io.Reader) ([]models.Position, error)

	// ExportPositions writes positions as CSV in the same format.
	ExportPositions(w io.Writer, positions []models.Position) error
}
