package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dareenhdeya/iaProj/internal/api"
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/config"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/log"
	"github.com/dareenhdeya/iaProj/internal/notify"
	"github.com/dareenhdeya/iaProj/internal/search"
	"github.com/dareenhdeya/iaProj/internal/store"
	"github.com/dareenhdeya/iaProj/internal/tui"
	"github.com/dareenhdeya/iaProj/internal/validate"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("libadmin %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.Setup(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting libadmin", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	// Snapshot cache, namespaced per server
	snapshots, err := store.NewSnapshotStore(config.GetCachePath(), cfg.Server.URL)
	if err != nil {
		logger.Error("failed to open snapshot cache, running without", "error", err)
		snapshots, _ = store.NewSnapshotStore("", "")
	}
	defer snapshots.Close()

	client := api.NewClient(cfg.Server.URL, logger)
	notifier := notify.NewChannel()

	deps := tui.Deps{
		Client:   client,
		Notifier: notifier,
		Logger:   logger,
		AdminID:  cfg.Server.AdminID,

		Books:      newBooksSynchronizer(client, snapshots, notifier, logger),
		Librarians: newLibrariansSynchronizer(client, snapshots, notifier, logger),
		Pending:    newPendingSynchronizer(client, snapshots, notifier, logger),
		Users:      newUsersSynchronizer(client, snapshots, notifier, logger),
		Borrowed:   newBorrowedSynchronizer(client, snapshots, notifier, logger),
		Returned:   newReturnedSynchronizer(client, snapshots, notifier, logger),
		Index:      search.NewBookIndex(logger),
	}

	// Render the last known snapshots immediately; the initial load replaces
	// them once the server answers.
	deps.Books.Prime()
	deps.Librarians.Prime()
	deps.Pending.Prime()
	deps.Users.Prime()
	deps.Borrowed.Prime()
	deps.Returned.Prime()
	deps.Index.Reindex(deps.Books.Snapshot())

	model := tui.NewModel(deps)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

func newBooksSynchronizer(client *api.Client, snapshots *store.SnapshotStore, notifier *notify.Channel, logger *slog.Logger) *collection.Synchronizer[domain.Book] {
	return collection.New(collection.Config[domain.Book]{
		Name:   "books",
		Fetch:  client.ListBooks,
		Create: client.AddBook,
		Update: client.UpdateBook,
		Delete: client.RemoveBook,
		Validate: func(b domain.Book) validate.Errors {
			return validate.Book(b)
		},
		// Availability is never edited by hand; it is derived from quantity
		// right before the draft goes on the wire.
		Normalize: func(b *domain.Book) {
			b.AvailabilityStatus = b.Quantity > 0
		},
		Cache: snapshots.Books(),
		Messages: collection.Messages{
			Created:      "Book added successfully",
			CreateFailed: "Failed to add book",
			Updated:      "Book updated successfully",
			UpdateFailed: "Failed to update book",
			Deleted:      "Book removed successfully",
			DeleteFailed: "Failed to remove book",
		},
	}, notifier, logger)
}

func newLibrariansSynchronizer(client *api.Client, snapshots *store.SnapshotStore, notifier *notify.Channel, logger *slog.Logger) *collection.Synchronizer[domain.Librarian] {
	return collection.New(collection.Config[domain.Librarian]{
		Name: "librarians",
		// The roster endpoint also returns unapproved accounts; the main
		// list shows approved staff only.
		Fetch: func(ctx context.Context) ([]domain.Librarian, error) {
			libs, err := client.ListLibrarians(ctx)
			if err != nil {
				return nil, err
			}
			return domain.ApprovedLibrarians(libs), nil
		},
		Update: func(ctx context.Context, id int, draft domain.Librarian) error {
			return client.UpdateLibrarian(ctx, id, domain.LibrarianUpdate{
				FullName: draft.Name,
				Email:    draft.Email,
			})
		},
		Delete: client.RemoveLibrarian,
		Validate: func(l domain.Librarian) validate.Errors {
			return validate.LibrarianUpdate(domain.LibrarianUpdate{
				FullName: l.Name,
				Email:    l.Email,
			})
		},
		Cache: snapshots.Librarians(),
		Messages: collection.Messages{
			Updated:      "Librarian updated successfully",
			UpdateFailed: "Failed to update librarian",
			Deleted:      "Librarian removed successfully",
			DeleteFailed: "Failed to remove librarian",
		},
	}, notifier, logger)
}

func newPendingSynchronizer(client *api.Client, snapshots *store.SnapshotStore, notifier *notify.Channel, logger *slog.Logger) *collection.Synchronizer[domain.Librarian] {
	return collection.New(collection.Config[domain.Librarian]{
		Name:  "pending librarians",
		Fetch: client.ListPendingLibrarians,
		Cache: snapshots.PendingLibrarians(),
	}, notifier, logger)
}

func newUsersSynchronizer(client *api.Client, snapshots *store.SnapshotStore, notifier *notify.Channel, logger *slog.Logger) *collection.Synchronizer[domain.User] {
	return collection.New(collection.Config[domain.User]{
		Name:  "users",
		Fetch: client.ListUsers,
		Cache: snapshots.Users(),
	}, notifier, logger)
}

func newBorrowedSynchronizer(client *api.Client, snapshots *store.SnapshotStore, notifier *notify.Channel, logger *slog.Logger) *collection.Synchronizer[domain.BorrowRecord] {
	return collection.New(collection.Config[domain.BorrowRecord]{
		Name:  "borrowed books",
		Fetch: client.ListBorrowedBooks,
		Cache: snapshots.BorrowedBooks(),
	}, notifier, logger)
}

func newReturnedSynchronizer(client *api.Client, snapshots *store.SnapshotStore, notifier *notify.Channel, logger *slog.Logger) *collection.Synchronizer[domain.BorrowRecord] {
	return collection.New(collection.Config[domain.BorrowRecord]{
		Name:  "returned books",
		Fetch: client.ListReturnedBooks,
		Cache: snapshots.ReturnedBooks(),
	}, notifier, logger)
}

// runSetupFlow handles the initial setup when not configured
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("not configured: set server.url and server.admin_id in the config file")
	}

	fmt.Println()
	fmt.Println("Welcome to libadmin!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	// Loop until we get a reachable server URL
	var serverURL string
	for {
		fmt.Print("Enter your library server URL (e.g., http://localhost:5209): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		serverURL = strings.TrimSpace(input)

		if serverURL == "" {
			fmt.Println("Server URL cannot be empty. Please try again.")
			continue
		}

		fmt.Println("Checking server...")
		if err := probeServer(serverURL, logger); err != nil {
			fmt.Printf("✗ Could not reach the server: %v\n", err)
			fmt.Println("Please check the URL and try again.")
			fmt.Println()
			continue
		}
		fmt.Println("✓ Server is reachable.")
		break
	}

	// Prompt for the admin account id
	var adminID int
	for {
		fmt.Print("Enter your admin account id: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		adminID, err = strconv.Atoi(strings.TrimSpace(input))
		if err != nil || adminID <= 0 {
			fmt.Println("Admin id must be a positive number. Please try again.")
			continue
		}
		break
	}

	cfg.Server.URL = serverURL
	cfg.Server.AdminID = adminID

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run libadmin again to start the application.")

	return nil
}

// probeServer checks that the admin API answers at the given URL.
func probeServer(serverURL string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := api.NewClient(serverURL, logger)
	_, err := client.ListBooks(ctx)
	return err
}
